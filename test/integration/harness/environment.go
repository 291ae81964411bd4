package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own INBOXSIM_HOME.
type TestEnvironment struct {
	Home string
	tb   testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp INBOXSIM_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home: tb.TempDir(),
		tb:   tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out INBOXSIM_* variables and points INBOXSIM_HOME at the temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "INBOXSIM_") {
			continue
		}
		env = append(env, kv)
	}

	return append(env,
		"INBOXSIM_HOME="+e.Home,
		"INBOXSIM_DEBUG=",
	)
}

// DBPath returns the path to the run registry.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "runs.db")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes settings.json with the given content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
