package integration_test

import (
	"testing"

	"github.com/renato0307/inboxsim/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "tracker_address")
				harness.AssertStdoutContains(t, result, "localhost:8088")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				format, ok := output["format"].(map[string]any)
				if !ok {
					t.Fatalf("Expected 'format' object in JSON output, got %v", output["format"])
				}
				for _, key := range []string{"debug", "input_capture", "keys", "save_location", "ssh_port"} {
					if _, ok := format[key]; !ok {
						t.Errorf("Expected %q in settings example", key)
					}
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
		})
	}
}

func TestSettingsKeys(t *testing.T) {
	tests := []struct {
		name         string
		settings     string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "report")
				harness.AssertStdoutContains(t, result, "report phishing")
				harness.AssertStdoutContains(t, result, "shift+tab")
			},
		},
		{
			name:         "list shows custom key",
			settings:     `{"keys": {"report": ["R"]}}`,
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var keys map[string]map[string]any
				harness.AssertValidJSON(t, result, &keys)
				custom, ok := keys["report"]["custom"].([]any)
				if !ok || len(custom) != 1 || custom[0] != "R" {
					t.Errorf("Expected report custom to be [R], got %v", keys["report"]["custom"])
				}
			},
		},
		{
			name:         "validate accepts valid overrides",
			settings:     `{"keys": {"report": ["R"], "star": ["S"]}}`,
			args:         []string{"settings", "keys", "validate"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Key bindings OK")
			},
		},
		{
			name:         "validate rejects unknown names",
			settings:     `{"keys": {"archive": ["a"]}}`,
			args:         []string{"settings", "keys", "validate"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid key bindings")
				harness.AssertStderrContains(t, result, "archive")
			},
		},
		{
			name:         "validate rejects conflicts",
			settings:     `{"keys": {"report": ["x"], "star": ["x"]}}`,
			args:         []string{"settings", "keys", "validate"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "key 'x' is assigned to both")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.settings != "" {
				env.WriteSettings(tt.settings)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			tt.validate(t, result)
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "keys", "set", "report", "!,R")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set 'report' to: !, R")

	result = harness.RunCommand(t, env, "settings", "keys", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "!,R")

	result = harness.RunCommand(t, env, "settings", "keys", "set", "star", "R")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "conflict")

	result = harness.RunCommand(t, env, "settings", "keys", "set", "archive", "a")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown key 'archive'")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "inboxsim "+harness.TestVersion)
}
