package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess checks for exit code 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure checks for any non-zero exit code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected the command to fail\nstdout:\n%s", result.Stdout)
}

// AssertExitCode checks for a specific exit code
func AssertExitCode(tb testing.TB, result CommandResult, want int) {
	tb.Helper()
	assert.Equal(tb, want, result.ExitCode, "unexpected exit code\nstdout:\n%s\nstderr:\n%s",
		result.Stdout, result.Stderr)
}

// AssertStdoutContains checks stdout for a substring
func AssertStdoutContains(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, want)
}

// AssertStdoutNotContains checks stdout lacks a substring
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unwanted string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unwanted)
}

// AssertStderrContains checks stderr for a substring
func AssertStderrContains(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, want)
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON:\n%s", result.Stdout)
}
