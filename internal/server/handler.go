package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/renato0307/inboxsim/internal/adapters/sound"
	"github.com/renato0307/inboxsim/internal/application"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ui"
)

// sessionModel wraps ui.Model to close the run when the participant leaves
type sessionModel struct {
	*ui.Model
	closeOnce    sync.Once
	connectionID string
	run          *application.Run
	startTime    time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}

	if _, quit := msg.(tea.QuitMsg); quit || s.Model.Status() != domain.RunStatusRunning {
		s.close()
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

func (s *sessionModel) close() {
	s.closeOnce.Do(func() {
		status := s.run.Close(context.Background())
		logging.Logger.Info("SSH session ended",
			"connection_id", s.connectionID,
			"run_id", s.run.ID(),
			"status", status,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler starts a run for each SSH session. The SSH user name is the participant.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connectionID := uuid.NewString()

	logging.Logger.Info("New SSH session",
		"connection_id", connectionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	run, err := s.launcher.Prepare(sess.Context(), application.RunOptions{
		InputCapture: s.opts.InputCapture,
		Keys:         s.opts.Keys,
		Participant:  sess.User(),
		SaveLocation: s.opts.SaveLocation,
		SoundEnabled: s.opts.SoundEnabled,
		SoundPlayer:  sound.NewBellPlayer(sess),
		StudyPath:    s.opts.StudyPath,
	})
	if err != nil {
		logging.Logger.Error("Failed to prepare run for SSH session",
			"error", err,
			"connection_id", connectionID)
		return errorModel{err}, nil
	}

	model := &sessionModel{
		Model:        run.Model(),
		connectionID: connectionID,
		run:          run,
		startTime:    time.Now(),
	}

	// Dropped connections abort the run
	go func() {
		<-sess.Context().Done()
		model.close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\nPress any key to disconnect.\n", e.err)
}
