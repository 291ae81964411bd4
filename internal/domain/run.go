package domain

import "time"

// RunStatus represents the lifecycle of one participant run
type RunStatus string

const (
	RunStatusAborted  RunStatus = "aborted"
	RunStatusFinished RunStatus = "finished"
	RunStatusRunning  RunStatus = "running"
)

// Run is one participant working through a study, as recorded in the run registry
type Run struct {
	FinishedAt  *time.Time
	ID          string
	LogPath     string
	Participant string
	Sessions    []RunSession
	StartedAt   time.Time
	Status      RunStatus
	StudyPath   string
}

// RunSession is one session within a run.
// Visible and Unread are captured when the session finishes.
type RunSession struct {
	FinishedAt *time.Time
	Name       string
	Position   int
	StartedAt  time.Time
	Unread     int
	Visible    int
}
