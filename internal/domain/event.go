package domain

import (
	"fmt"
	"time"
)

// DefaultParticipant is used when the operator leaves the participant id blank
const DefaultParticipant = "no_user_name"

// Log actions recorded in the per-run event log
const (
	ActionAttachmentOpened     = "open attachment"
	ActionEmailDeleted         = "email deleted"
	ActionEmailOpened          = "email opened"
	ActionEmailReported        = "email reported"
	ActionEmailStar            = "email star"
	ActionEmailUnstar          = "email unstar"
	ActionForwardClicked       = "forward button clicked"
	ActionIncomingEmail        = "incoming email"
	ActionLinkClicked          = "link clicked"
	ActionMarkedUnread         = "email marked as unread"
	ActionReply                = "reply"
	ActionReplyAllClicked      = "reply to all button clicked"
	ActionReplyClicked         = "reply button clicked"
	ActionTelemetryUnavailable = "telemetry unavailable"
	ActionURLHovered           = "url hovered"
	ActionURLUnhovered         = "url unhovered"
)

// ActionStart is logged when a session begins
func ActionStart(session string) string {
	return "start " + session
}

// ActionFinish is logged when a session's countdown reaches zero
func ActionFinish(session string) string {
	return "finish " + session
}

// ActionForwardTo is logged when a forward is sent
func ActionForwardTo(recipient string) string {
	return "forward to " + recipient
}

// AttachmentDetail describes an opened attachment for the log
func AttachmentDetail(a Attachment) string {
	if a.Phishing {
		return fmt.Sprintf("phishing attachment: %s", a.Name)
	}
	return fmt.Sprintf("legit attachment: %s", a.Name)
}

// LogEvent is one append-only row of the event log
type LogEvent struct {
	Action      string
	Detail      string
	EmailID     string // Empty for session-level events
	Participant string
	Session     string
	Subject     string
	Time        time.Time
	Timestamp   float64 // Milliseconds since the Unix epoch, monotonic within a run
}

// ResponseKind is the flavour of reply the participant started
type ResponseKind string

const (
	ResponseForward  ResponseKind = "forward"
	ResponseReply    ResponseKind = "reply"
	ResponseReplyAll ResponseKind = "reply_to_all"
)

// ClickedAction returns the log action for opening the response window
func (k ResponseKind) ClickedAction() string {
	switch k {
	case ResponseReplyAll:
		return ActionReplyAllClicked
	case ResponseForward:
		return ActionForwardClicked
	default:
		return ActionReplyClicked
	}
}

// Sound events played by the notification service
const (
	SoundAlert    = "alert"    // Countdown reached a configured minute mark
	SoundFinish   = "finish"   // Session time is up
	SoundIncoming = "incoming" // A new email arrived
)
