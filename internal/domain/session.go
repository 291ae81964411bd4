package domain

// SessionState is the mutable state of the active session.
// It is created when a session begins and discarded when it ends.
type SessionState struct {
	Config         SessionConfig
	HoveredURL     string // Empty when no link is hovered
	Inbox          *Inbox
	IncomingActive bool
	Index          int // Position in the study's session list
	Pending        []Email
	Remaining      int // Countdown seconds
	Running        bool
}

// NewSessionState creates a running session state
func NewSessionState(cfg SessionConfig, index int, inbox *Inbox, pending []Email) *SessionState {
	if inbox == nil {
		inbox = NewInbox(nil)
	}
	return &SessionState{
		Config:         cfg,
		Inbox:          inbox,
		IncomingActive: cfg.HasIncoming() && len(pending) > 0,
		Index:          index,
		Pending:        pending,
		Remaining:      int(cfg.Duration.Seconds()),
		Running:        true,
	}
}

// PopIncoming removes and returns the front of the incoming queue
func (s *SessionState) PopIncoming() (Email, bool) {
	if len(s.Pending) == 0 {
		return Email{}, false
	}
	next := s.Pending[0]
	s.Pending = s.Pending[1:]
	return next, true
}
