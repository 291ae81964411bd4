package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Run a study with one participant (default)" default:"withargs"`
	Validate  ValidateCmd  `cmd:"validate" help:"Check a study file and its email corpus"`
	Preview   PreviewCmd   `cmd:"preview" help:"Show the inbox a session would start with"`
	Runs      RunsCmd      `cmd:"runs" help:"Inspect recorded runs (list, view, events)"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the study over SSH, one run per connection"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play the notification sound" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("INBOXSIM_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("INBOXSIM_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Kiosk sessions and play-sound children append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("INBOXSIM_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("INBOXSIM_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("INBOXSIM_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The registry logs through GORM, so it is opened after logging is ready
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyBindings returns the validated key overrides from settings.json
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(validKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// saveLocation resolves the save location override: flag, then settings.json
func (c *CLI) saveLocation(flag string) string {
	if flag != "" {
		return flag
	}
	if c.settings != nil {
		return c.settings.SaveLocation
	}
	return ""
}
