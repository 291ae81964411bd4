package ports

import (
	"context"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
)

// RunReader reads recorded runs
type RunReader interface {
	Get(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context, limit int) ([]domain.Run, error)
}

// RunWriter records run progress
type RunWriter interface {
	Create(ctx context.Context, run domain.Run) error
	Finish(ctx context.Context, id string, status domain.RunStatus, at time.Time) error
	FinishSession(ctx context.Context, id string, position int, at time.Time, visible, unread int) error
	StartSession(ctx context.Context, id string, session domain.RunSession) error
}

// RunRepository is the composite interface
type RunRepository interface {
	RunReader
	RunWriter
	Close() error
}
