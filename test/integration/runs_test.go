package integration_test

import (
	"os"
	"testing"

	"github.com/renato0307/inboxsim/test/integration/harness"
)

func TestRunsList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
		wantDB   bool
	}{
		{
			name: "empty registry",
			args: []string{"runs", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No runs recorded")
			},
		},
		{
			name: "registry is created on first use",
			args: []string{"runs", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No runs recorded")
			},
			wantDB: true,
		},
		{
			name: "default subcommand",
			args: []string{"runs"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No runs recorded")
			},
		},
		{
			name: "json format",
			args: []string{"runs", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var runs []map[string]any
				harness.AssertValidJSON(t, result, &runs)
				if len(runs) != 0 {
					t.Errorf("Expected no runs, got %d", len(runs))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
			if tt.wantDB {
				if _, err := os.Stat(env.DBPath()); err != nil {
					t.Errorf("Expected run registry at %s: %v", env.DBPath(), err)
				}
			}
		})
	}
}

func TestRunsView_UnknownRun(t *testing.T) {
	for _, sub := range []string{"view", "events"} {
		t.Run(sub, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, "runs", sub, "01HZZZZZZZZZZZZZZZZZZZZZZZ")

			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, "run not found")
		})
	}
}
