package ui

import "time"

// countdownTickMsg fires once per second while a session runs.
// gen ties the tick to the session that scheduled it; ticks from an earlier session are dropped.
type countdownTickMsg struct {
	gen int
}

// incomingTickMsg fires every incoming interval while the queue has emails
type incomingTickMsg struct {
	gen int
}

// toastExpiredMsg hides the toast with the same id
type toastExpiredMsg struct {
	id int
}

// TelemetryUnavailableMsg reports that the tracker could not be reached.
// Sent by the program owner from the telemetry service callback.
type TelemetryUnavailableMsg struct {
	Err error
}

// FatalErrorMsg stops the run with a blocking error notice
type FatalErrorMsg struct {
	Err error
}

const (
	countdownInterval = time.Second
	toastDuration     = 4 * time.Second
)
