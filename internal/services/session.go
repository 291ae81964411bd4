package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// SessionOptions configures a SessionService
type SessionOptions struct {
	Now         func() time.Time // Defaults to time.Now
	Participant string
	Rand        *rand.Rand // Defaults to a randomly seeded generator
	RunID       string
}

// CountdownResult is what one countdown tick means for the presentation layer
type CountdownResult struct {
	Alert      bool    // A configured minute mark was reached
	EndMessage *string // Set when the session finished and defines a closing message
	Finished   bool
	Remaining  int
}

// IncomingResult is what one incoming-email tick means for the presentation layer
type IncomingResult struct {
	Delivered bool
	Email     domain.Email
	StopTimer bool // Injection is over: the queue is empty or the session is finishing
}

// SessionService drives one participant run through the study's sessions.
// It owns the session state and is not safe for concurrent use.
type SessionService struct {
	corpus      *domain.Corpus
	launch      time.Time
	logger      ports.EventLogger
	now         func() time.Time
	participant string
	rng         *rand.Rand
	runID       string
	runs        *RunService
	state       *domain.SessionState
	study       *domain.StudyConfig
}

// NewSessionService creates a new SessionService. runs may be nil.
func NewSessionService(
	study *domain.StudyConfig,
	corpus *domain.Corpus,
	logger ports.EventLogger,
	runs *RunService,
	opts SessionOptions,
) *SessionService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	participant := strings.TrimSpace(opts.Participant)
	if participant == "" {
		participant = domain.DefaultParticipant
	}

	return &SessionService{
		corpus:      corpus,
		launch:      now(),
		logger:      logger,
		now:         now,
		participant: participant,
		rng:         rng,
		runID:       opts.RunID,
		runs:        runs,
		study:       study,
	}
}

// Study returns the loaded study
func (s *SessionService) Study() *domain.StudyConfig {
	return s.study
}

// State returns the active session's state, nil before the first session starts
func (s *SessionService) State() *domain.SessionState {
	return s.state
}

// Participant returns the participant id written to the log
func (s *SessionService) Participant() string {
	return s.participant
}

// Start begins the first session
func (s *SessionService) Start(ctx context.Context) error {
	return s.StartSession(ctx, 0)
}

// StartSession builds and begins the session at index
func (s *SessionService) StartSession(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.study.Sessions) {
		return fmt.Errorf("%w: index %d", domain.ErrSessionNotFound, index)
	}

	cfg := s.study.Sessions[index]
	now := s.now()
	s.state = BeginSession(cfg, index, s.corpus, s.rng, now)

	if err := s.logSession(domain.ActionStart(cfg.Name)); err != nil {
		return err
	}
	s.runs.SessionStarted(ctx, s.runID, index, cfg.Name, now)

	logging.Logger.Info("Session started", "session", cfg.Name, "index", index, "remaining", s.state.Remaining)
	return nil
}

// TickCountdown advances the countdown by one second
func (s *SessionService) TickCountdown(ctx context.Context) (CountdownResult, error) {
	if s.state == nil || !s.state.Running {
		return CountdownResult{}, nil
	}

	s.state.Remaining--
	result := CountdownResult{Remaining: s.state.Remaining}

	if s.state.Remaining > 0 {
		result.Alert = s.state.Remaining%60 == 0 && s.state.Config.IsAlertMinute(s.state.Remaining/60)
		return result, nil
	}

	s.state.Remaining = 0
	s.state.Running = false
	s.state.IncomingActive = false
	result.Remaining = 0
	result.Finished = true
	result.EndMessage = s.state.Config.EndMessage

	if err := s.logSession(domain.ActionFinish(s.state.Config.Name)); err != nil {
		return result, err
	}
	s.runs.SessionFinished(ctx, s.runID, s.state.Index, s.now(), s.state.Inbox.Len(), s.state.Inbox.UnreadCount())

	logging.Logger.Info("Session finished", "session", s.state.Config.Name)
	return result, nil
}

// TickIncoming delivers the next queued email to the top of the inbox
func (s *SessionService) TickIncoming(ctx context.Context) (IncomingResult, error) {
	if s.state == nil || !s.state.IncomingActive {
		return IncomingResult{StopTimer: true}, nil
	}

	var result IncomingResult
	email, ok := s.state.PopIncoming()
	if ok {
		entry := domain.NewEntry(email)
		entry.DisplayTime = s.now().Format(timeLabelLayout)
		if s.state.Inbox.InsertFront(entry) {
			result.Delivered = true
			result.Email = email
			if err := s.logEmail(email, domain.ActionIncomingEmail, ""); err != nil {
				return result, err
			}
		} else {
			logging.Logger.Warn("Incoming email already in inbox, skipped", "email_id", email.ID)
		}
	}

	if len(s.state.Pending) == 0 {
		s.state.IncomingActive = false
		result.StopTimer = true
	}
	return result, nil
}

// RequestFinish ends the session early: incoming delivery stops and the next countdown tick finishes it
func (s *SessionService) RequestFinish() {
	if s.state == nil || !s.state.Running {
		return
	}
	s.state.IncomingActive = false
	s.state.Remaining = 1
	logging.Logger.Info("Participant asked to finish session", "session", s.state.Config.Name)
}

// NextSession moves to the next configured session. done is true after the last one.
func (s *SessionService) NextSession(ctx context.Context) (done bool, err error) {
	current := 0
	if s.state != nil {
		current = s.state.Index
	}
	next, done := AdvanceSession(current, s.study.Sessions)
	if done {
		return true, nil
	}
	return false, s.StartSession(ctx, next)
}

// Finish closes the run in the registry
func (s *SessionService) Finish(ctx context.Context, status domain.RunStatus) {
	s.runs.Finished(ctx, s.runID, status, s.now())
}

// Open selects an email and marks it read
func (s *SessionService) Open(id int) error {
	if err := s.requireState(); err != nil {
		return err
	}
	if err := s.state.Inbox.Select(id); err != nil {
		return err
	}
	if err := s.state.Inbox.MarkRead(id); err != nil {
		return err
	}
	s.state.HoveredURL = ""
	return s.logCurrent(domain.ActionEmailOpened, "")
}

// ToggleStar flips the star of the selected email and returns the new state
func (s *SessionService) ToggleStar() (bool, error) {
	current, err := s.current()
	if err != nil {
		return false, err
	}
	starred, err := s.state.Inbox.ToggleStar(current.Email.ID)
	if err != nil {
		return false, err
	}
	action := domain.ActionEmailUnstar
	if starred {
		action = domain.ActionEmailStar
	}
	return starred, s.logCurrent(action, "")
}

// Delete removes the selected email
func (s *SessionService) Delete() error {
	return s.removeCurrent(domain.ActionEmailDeleted)
}

// Report flags the selected email as phishing and removes it
func (s *SessionService) Report() error {
	return s.removeCurrent(domain.ActionEmailReported)
}

// MarkUnread marks the selected email as unread
func (s *SessionService) MarkUnread() error {
	current, err := s.current()
	if err != nil {
		return err
	}
	if err := s.state.Inbox.MarkUnread(current.Email.ID); err != nil {
		return err
	}
	return s.logCurrent(domain.ActionMarkedUnread, "")
}

// BeginResponse records that the participant opened a reply, reply-all or forward window
func (s *SessionService) BeginResponse(kind domain.ResponseKind) error {
	if _, err := s.current(); err != nil {
		return err
	}
	return s.logCurrent(kind.ClickedAction(), "")
}

// SendReply records a sent reply (or reply-all) with its text
func (s *SessionService) SendReply(text string) error {
	if _, err := s.current(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyReply
	}
	return s.logCurrent(domain.ActionReply, text)
}

// SendForward records a forward to recipient with its text
func (s *SessionService) SendForward(recipient, text string) error {
	if _, err := s.current(); err != nil {
		return err
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return domain.ErrEmptyForward
	}
	return s.logCurrent(domain.ActionForwardTo(recipient), text)
}

// HoverLink records the pointer entering a link. Re-hovering the same link is not logged again.
func (s *SessionService) HoverLink(url string) error {
	if err := s.requireState(); err != nil {
		return err
	}
	if url == "" {
		return s.UnhoverLink()
	}
	if url == s.state.HoveredURL {
		return nil
	}
	s.state.HoveredURL = url
	return s.logCurrent(domain.ActionURLHovered, url)
}

// UnhoverLink records the pointer leaving the hovered link, if any
func (s *SessionService) UnhoverLink() error {
	if err := s.requireState(); err != nil {
		return err
	}
	if s.state.HoveredURL == "" {
		return nil
	}
	s.state.HoveredURL = ""
	return s.logCurrent(domain.ActionURLUnhovered, "")
}

// ClickLink records a followed link
func (s *SessionService) ClickLink(url string) error {
	if _, err := s.current(); err != nil {
		return err
	}
	return s.logCurrent(domain.ActionLinkClicked, url)
}

// OpenAttachment records opening one of the selected email's attachments
func (s *SessionService) OpenAttachment(name string) (domain.Attachment, error) {
	current, err := s.current()
	if err != nil {
		return domain.Attachment{}, err
	}
	for _, a := range current.Email.Attachments {
		if a.Name == name {
			return a, s.logCurrent(domain.ActionAttachmentOpened, domain.AttachmentDetail(a))
		}
	}
	return domain.Attachment{}, fmt.Errorf("attachment %q not found on email %d", name, current.Email.ID)
}

// CategoryStyle returns the presentation rules for the selected email's category
func (s *SessionService) CategoryStyle() (domain.CategoryStyle, bool) {
	current, err := s.current()
	if err != nil {
		return domain.CategoryStyle{}, false
	}
	return s.state.Config.StyleFor(current.Email.Category)
}

// SavePrimaryTask stores the active session's primary task output, when the logger supports it
func (s *SessionService) SavePrimaryTask(rows [][]string) error {
	if s.state == nil || len(rows) == 0 {
		return nil
	}
	writer, ok := s.logger.(ports.TaskDataWriter)
	if !ok {
		return nil
	}
	return writer.WritePrimaryTaskData(s.state.Config.Name, rows)
}

// LogTelemetryUnavailable records that the tracker could not be reached
func (s *SessionService) LogTelemetryUnavailable(cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return s.append("", "", domain.ActionTelemetryUnavailable, detail)
}

func (s *SessionService) removeCurrent(action string) error {
	current, err := s.current()
	if err != nil {
		return err
	}
	if err := s.logCurrent(action, ""); err != nil {
		return err
	}
	if err := s.state.Inbox.Remove(current.Email.ID); err != nil {
		return err
	}
	// The reselected email is displayed, so it counts as read
	if next, ok := s.state.Inbox.Current(); ok {
		return s.state.Inbox.MarkRead(next.Email.ID)
	}
	return nil
}

func (s *SessionService) requireState() error {
	if s.state == nil {
		return fmt.Errorf("%w: no active session", domain.ErrSessionNotFound)
	}
	return nil
}

func (s *SessionService) current() (domain.Entry, error) {
	if err := s.requireState(); err != nil {
		return domain.Entry{}, err
	}
	entry, ok := s.state.Inbox.Current()
	if !ok {
		return domain.Entry{}, domain.ErrNoSelection
	}
	return entry, nil
}

func (s *SessionService) logCurrent(action, detail string) error {
	current, err := s.current()
	if err != nil {
		return err
	}
	return s.logEmail(current.Email, action, detail)
}

func (s *SessionService) logEmail(email domain.Email, action, detail string) error {
	return s.append(strconv.Itoa(email.ID), email.Title, action, detail)
}

func (s *SessionService) logSession(action string) error {
	return s.append("", "", action, "")
}

func (s *SessionService) append(emailID, subject, action, detail string) error {
	now := s.now()
	session := ""
	if s.state != nil {
		session = s.state.Config.Name
	}

	event := domain.LogEvent{
		Action:      action,
		Detail:      detail,
		EmailID:     emailID,
		Participant: s.participant,
		Session:     session,
		Subject:     subject,
		Time:        now,
		Timestamp:   s.timestamp(now),
	}

	if err := s.logger.Append(event); err != nil {
		logging.Logger.Error("Failed to append event", "action", action, "error", err)
		if errors.Is(err, domain.ErrLogWrite) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrLogWrite, err)
	}
	return nil
}

// timestamp is epoch milliseconds anchored at launch and advanced by the monotonic clock
func (s *SessionService) timestamp(now time.Time) float64 {
	return float64(s.launch.UnixMicro())/1000 + float64(now.Sub(s.launch).Microseconds())/1000
}
