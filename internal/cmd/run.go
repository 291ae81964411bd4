package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/inboxsim/internal/adapters/sound"
	"github.com/renato0307/inboxsim/internal/application"
	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
)

// RunCmd runs a study in the current terminal
type RunCmd struct {
	Study string `arg:"" help:"Study file (YAML)" type:"path"`

	Dev            bool   `help:"Enable development mode (shows version info in dialogs)"`
	InputCapture   bool   `help:"Record terminal key and mouse events to <participant>/<launch>_input.csv" env:"INBOXSIM_INPUT_CAPTURE"`
	Participant    string `help:"Participant id (asked for when omitted)" short:"p"`
	Save           string `help:"Directory for event logs (overrides the study's saveLocation)" type:"path"`
	Sound          bool   `help:"Play the notification sound for incoming email and alerts" default:"true" negatable:""`
	Tracker        bool   `help:"Stream mouse, keyboard and gaze records from the tracker" env:"INBOXSIM_TRACKER"`
	TrackerAddress string `help:"Tracker address (host:port)" default:"${tracker_address}" env:"INBOXSIM_TRACKER_ADDRESS"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	participant := strings.TrimSpace(r.Participant)
	if participant == "" {
		participant, err = askParticipant()
		if err != nil {
			return err
		}
	}

	opts := application.RunOptions{
		DevMode:      r.Dev,
		InputCapture: r.InputCapture,
		Keys:         keys,
		Participant:  participant,
		SaveLocation: cli.saveLocation(r.Save),
		SoundEnabled: r.Sound,
		SoundPlayer:  sound.NewPlayer(),
		StudyPath:    r.Study,
	}
	if r.Tracker {
		opts.TrackerAddress = r.TrackerAddress
	}

	ctx := context.Background()
	run, err := cli.Container.Launcher.Prepare(ctx, opts)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting TUI program", "run_id", run.ID())
	status, err := run.Execute(ctx,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return err
	}

	logging.Logger.Info("TUI program exited", "status", status)
	fmt.Printf("Run %s %s. Events written to %s\n", run.ID(), status, run.LogPath())
	return nil
}

// applySettings fills flags left at their defaults from settings.json, unless an env var is set
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if !r.InputCapture {
		if _, hasEnv := os.LookupEnv("INBOXSIM_INPUT_CAPTURE"); !hasEnv {
			r.InputCapture = config.BoolOr(settings.InputCapture, false)
		}
	}
	if r.Sound {
		r.Sound = config.BoolOr(settings.SoundEnabled, true)
	}
	if !r.Tracker {
		if _, hasEnv := os.LookupEnv("INBOXSIM_TRACKER"); !hasEnv {
			r.Tracker = config.BoolOr(settings.TrackerEnabled, false)
		}
	}
	if r.TrackerAddress == config.DefaultTrackerAddress {
		if _, hasEnv := os.LookupEnv("INBOXSIM_TRACKER_ADDRESS"); !hasEnv && settings.TrackerAddress != "" {
			r.TrackerAddress = settings.TrackerAddress
		}
	}
}

// askParticipant prompts for the participant id before the run starts
func askParticipant() (string, error) {
	var participant string
	err := huh.NewInput().
		Title("Participant ID").
		Description("Used to name the event log. Leave empty for " + domain.DefaultParticipant + ".").
		Value(&participant).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("run cancelled")
		}
		return "", fmt.Errorf("failed to read participant id: %w", err)
	}
	return strings.TrimSpace(participant), nil
}
