package domain

import "errors"

var (
	ErrEmailNotFound        = errors.New("email not found")
	ErrEmptyForward         = errors.New("forward recipient is empty")
	ErrEmptyReply           = errors.New("reply text is empty")
	ErrInvalidConfig        = errors.New("invalid study configuration")
	ErrLogWrite             = errors.New("failed to write event log")
	ErrNoSelection          = errors.New("no email selected")
	ErrRunNotFound          = errors.New("run not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrTelemetryUnavailable = errors.New("telemetry tracker unavailable")
)
