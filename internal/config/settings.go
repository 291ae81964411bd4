package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Defaults applied when neither flags, env vars nor settings.json say otherwise
const (
	DefaultMaxLogFiles    = 1000
	DefaultSSHHost        = "localhost"
	DefaultSSHPort        = 23235
	DefaultTrackerAddress = "localhost:8088"
)

// Settings represents the structure of $INBOXSIM_HOME/settings.json
type Settings struct {
	AuthorizedKeys string            `json:"authorized_keys,omitempty"`
	Debug          *bool             `json:"debug,omitempty"`
	InputCapture   *bool             `json:"input_capture,omitempty"`
	Keys           KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles    *int              `json:"max_log_files,omitempty"`
	SaveLocation   string            `json:"save_location,omitempty"`
	SoundEnabled   *bool             `json:"sound_enabled,omitempty"`
	SSHHost        string            `json:"ssh_host,omitempty"`
	SSHPort        *int              `json:"ssh_port,omitempty"`
	TrackerAddress string            `json:"tracker_address,omitempty"`
	TrackerEnabled *bool             `json:"tracker_enabled,omitempty"`
}

// KeyBindingsConfig maps key binding names to the keys that trigger them
type KeyBindingsConfig map[string][]string

// Validate checks binding names against validNames and rejects a key bound to two actions
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	valid := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		valid[name] = true
	}

	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		if !valid[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}
	return nil
}

// BoolOr returns the pointed-to value or the fallback
func BoolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// IntOr returns the pointed-to value or the fallback
func IntOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// LoadSettings loads settings from $INBOXSIM_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SaveLocation != "" {
		settings.SaveLocation = ExpandPath(settings.SaveLocation)
	}
	if settings.AuthorizedKeys != "" {
		settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	}

	return &settings, nil
}

// SaveSettings saves settings to $INBOXSIM_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
