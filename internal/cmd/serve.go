package cmd

import (
	"context"
	"os"

	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/server"
)

// ServeCmd serves the study over SSH; the SSH user name is the participant id
type ServeCmd struct {
	Study string `arg:"" help:"Study file (YAML)" type:"path"`

	AuthorizedKeys string `help:"authorized_keys file (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"${ssh_host}" env:"INBOXSIM_SSH_HOST"`
	InputCapture   bool   `help:"Record terminal key and mouse events of each connection" env:"INBOXSIM_INPUT_CAPTURE"`
	Port           int    `help:"Port to listen on" default:"${ssh_port}" env:"INBOXSIM_SSH_PORT"`
	Save           string `help:"Directory for event logs (overrides the study's saveLocation)" type:"path"`
	Sound          bool   `help:"Ring the terminal bell for incoming email and alerts" default:"true" negatable:""`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	// Fail before listening rather than on the first connection
	if _, _, err := cli.Container.StudyService.Load(s.Study, cli.saveLocation(s.Save)); err != nil {
		return err
	}

	srv, err := server.NewServer(cli.Container.Launcher, server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		InputCapture:       s.InputCapture,
		Keys:               keys,
		Port:               s.Port,
		SaveLocation:       cli.saveLocation(s.Save),
		SoundEnabled:       s.Sound,
		StudyPath:          s.Study,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Serving study over SSH", "study", s.Study, "address", srv.Address())
	return srv.Start(context.Background())
}

func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if s.AuthorizedKeys == "" {
		s.AuthorizedKeys = settings.AuthorizedKeys
	}
	if s.Host == config.DefaultSSHHost {
		if _, hasEnv := os.LookupEnv("INBOXSIM_SSH_HOST"); !hasEnv && settings.SSHHost != "" {
			s.Host = settings.SSHHost
		}
	}
	if s.Port == config.DefaultSSHPort {
		if _, hasEnv := os.LookupEnv("INBOXSIM_SSH_PORT"); !hasEnv {
			s.Port = config.IntOr(settings.SSHPort, config.DefaultSSHPort)
		}
	}
	if !s.InputCapture {
		if _, hasEnv := os.LookupEnv("INBOXSIM_INPUT_CAPTURE"); !hasEnv {
			s.InputCapture = config.BoolOr(settings.InputCapture, false)
		}
	}
	if s.Sound {
		s.Sound = config.BoolOr(settings.SoundEnabled, true)
	}
}
