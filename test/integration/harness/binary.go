package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestVersion is stamped into the binary built for the suite
const TestVersion = "integration"

const commandTimeout = 30 * time.Second

var binaryPath string

// CommandResult holds the outcome of one CLI invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd into a temp directory. Call it once from TestMain.
func BuildBinary() (string, error) {
	if binaryPath != "" {
		return binaryPath, nil
	}

	root, err := moduleRoot()
	if err != nil {
		return "", fmt.Errorf("failed to locate module root: %w", err)
	}

	dir, err := os.MkdirTemp("", "inboxsim-integration-*")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "inboxsim")

	build := exec.Command("go", "build",
		"-ldflags", "-X main.Version="+TestVersion,
		"-o", path, "./cmd")
	build.Dir = root
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("go build failed: %w", err)
	}

	binaryPath = path
	return binaryPath, nil
}

// CleanupBinary removes the compiled binary. Call it from TestMain after m.Run.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove test binary: %v\n", err)
	}
	binaryPath = ""
}

// RunCommand runs the binary with args inside env and waits for it to exit
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Dir = env.Home
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Errorf("inboxsim %s timed out after %v", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Errorf("inboxsim %s could not run: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}
