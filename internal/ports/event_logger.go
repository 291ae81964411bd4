package ports

import "github.com/renato0307/inboxsim/internal/domain"

// EventLogger appends participant events to the study log.
// Append must not return before the row is durable.
type EventLogger interface {
	Append(event domain.LogEvent) error
	Close() error
	Path() string
}

// TaskDataWriter stores the output of a session's primary task
type TaskDataWriter interface {
	WritePrimaryTaskData(session string, rows [][]string) error
}

// EventLogReader reads a finished event log back
type EventLogReader interface {
	ReadEvents(path string) ([]domain.LogEvent, error)
}
