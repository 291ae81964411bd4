package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// RunService records run progress in the registry and reads it back.
// Recording is best effort: the event log is the study's record, the registry only indexes it.
type RunService struct {
	events ports.EventLogReader
	repo   ports.RunRepository
}

// NewRunService creates a new RunService. A nil repo disables recording.
func NewRunService(repo ports.RunRepository, events ports.EventLogReader) *RunService {
	return &RunService{
		events: events,
		repo:   repo,
	}
}

// NewRunID returns a sortable run identifier
func NewRunID() string {
	return ulid.Make().String()
}

// Begin registers a new run and returns its id
func (s *RunService) Begin(ctx context.Context, run domain.Run) string {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	run.Status = domain.RunStatusRunning

	if s == nil || s.repo == nil {
		return run.ID
	}
	if err := s.repo.Create(ctx, run); err != nil {
		logging.Logger.Warn("Failed to register run", "run_id", run.ID, "error", err)
		return run.ID
	}

	logging.Logger.Info("Run registered", "run_id", run.ID, "participant", run.Participant)
	return run.ID
}

// SessionStarted records the start of the session at position
func (s *RunService) SessionStarted(ctx context.Context, runID string, position int, name string, at time.Time) {
	if s == nil || s.repo == nil {
		return
	}
	err := s.repo.StartSession(ctx, runID, domain.RunSession{Name: name, Position: position, StartedAt: at})
	if err != nil {
		logging.Logger.Warn("Failed to record session start", "run_id", runID, "session", name, "error", err)
	}
}

// SessionFinished records the end of the session at position with the inbox counts at that moment
func (s *RunService) SessionFinished(ctx context.Context, runID string, position int, at time.Time, visible, unread int) {
	if s == nil || s.repo == nil {
		return
	}
	if err := s.repo.FinishSession(ctx, runID, position, at, visible, unread); err != nil {
		logging.Logger.Warn("Failed to record session finish", "run_id", runID, "position", position, "error", err)
	}
}

// Finished marks the run as over
func (s *RunService) Finished(ctx context.Context, runID string, status domain.RunStatus, at time.Time) {
	if s == nil || s.repo == nil {
		return
	}
	if err := s.repo.Finish(ctx, runID, status, at); err != nil {
		logging.Logger.Warn("Failed to record run finish", "run_id", runID, "status", status, "error", err)
	}
}

// List returns the most recent runs, newest first
func (s *RunService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx, limit)
}

// Get returns one run with its sessions
func (s *RunService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}
	return s.repo.Get(ctx, id)
}

// Events reads the event log of a run
func (s *RunService) Events(ctx context.Context, id string) (*domain.Run, []domain.LogEvent, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	events, err := s.events.ReadEvents(run.LogPath)
	if err != nil {
		return run, nil, fmt.Errorf("failed to read events of run %s: %w", id, err)
	}
	return run, events, nil
}
