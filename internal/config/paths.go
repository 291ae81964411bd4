package config

import (
	"os"
	"path/filepath"
)

// GetHome returns $INBOXSIM_HOME or ~/.inboxsim
func GetHome() string {
	home := os.Getenv("INBOXSIM_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".inboxsim"
		}
		return filepath.Join(homeDir, ".inboxsim")
	}
	return ExpandPath(home)
}

// GetDBPath returns $INBOXSIM_HOME/runs.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "runs.db")
}

// GetSettingsPath returns $INBOXSIM_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $INBOXSIM_HOME/ssh, where the kiosk host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// resolvePath expands ~ and anchors relative paths at base
func resolvePath(base, path string) string {
	if path == "" {
		return ""
	}
	path = ExpandPath(path)
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}
