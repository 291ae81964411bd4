package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/adapters/eventlog"
	"github.com/renato0307/inboxsim/internal/domain"
	portsmocks "github.com/renato0307/inboxsim/internal/ports/mocks"
)

var sessionNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type recorded struct {
	events []domain.LogEvent
}

func (r *recorded) actions() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

func (r *recorded) count(action string) int {
	n := 0
	for _, e := range r.events {
		if e.Action == action {
			n++
		}
	}
	return n
}

func recordingLogger(t *testing.T) (*portsmocks.MockEventLogger, *recorded) {
	t.Helper()
	rec := &recorded{}
	logger := portsmocks.NewMockEventLogger(t)
	logger.EXPECT().Append(mock.Anything).RunAndReturn(func(e domain.LogEvent) error {
		rec.events = append(rec.events, e)
		return nil
	}).Maybe()
	return logger, rec
}

func studyWith(sessions ...domain.SessionConfig) *domain.StudyConfig {
	return &domain.StudyConfig{
		EmailListLocation: "emails.csv",
		SaveLocation:      "out",
		Sessions:          sessions,
	}
}

func plainSession(name string, duration time.Duration) domain.SessionConfig {
	return domain.SessionConfig{
		Buttons:  domain.AllButtons(),
		Duration: duration,
		Inbox:    domain.InboxRule{Range: domain.IDRange{Start: 1, Finish: 5}},
		Name:     name,
	}
}

func newTestSessionService(t *testing.T, study *domain.StudyConfig) (*SessionService, *recorded) {
	t.Helper()
	logger, rec := recordingLogger(t)
	corpus := testCorpus(t, 1, 2, 3, 4, 5, 21, 22, 23)
	service := NewSessionService(study, corpus, logger, nil, SessionOptions{
		Now:         func() time.Time { return sessionNow },
		Participant: "p01",
		Rand:        newRand(),
	})
	return service, rec
}

func TestSessionService_StartLogsSessionStart(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("training", time.Minute)))

	require.NoError(t, service.Start(context.Background()))

	require.Len(t, rec.events, 1)
	event := rec.events[0]
	assert.Equal(t, "start training", event.Action)
	assert.Equal(t, "training", event.Session)
	assert.Equal(t, "p01", event.Participant)
	assert.Empty(t, event.EmailID)
	assert.Equal(t, float64(sessionNow.UnixMilli()), event.Timestamp)
	assert.Equal(t, 5, service.State().Inbox.Len())
}

func TestSessionService_StartSessionOutOfRange(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("a", time.Minute)))

	err := service.StartSession(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Empty(t, rec.events)
}

func TestSessionService_DefaultParticipant(t *testing.T) {
	logger, _ := recordingLogger(t)
	service := NewSessionService(studyWith(plainSession("a", time.Minute)), testCorpus(t, 1), logger, nil, SessionOptions{})
	assert.Equal(t, domain.DefaultParticipant, service.Participant())
}

func TestSessionService_CountdownFinishesOnce(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", 125*time.Second)))
	ctx := context.Background()
	require.NoError(t, service.Start(ctx))

	var last CountdownResult
	finishedTicks := 0
	for range 125 {
		result, err := service.TickCountdown(ctx)
		require.NoError(t, err)
		if result.Finished {
			finishedTicks++
		}
		last = result
	}

	assert.True(t, last.Finished)
	assert.Equal(t, 0, last.Remaining)
	assert.Equal(t, 1, finishedTicks)
	assert.False(t, service.State().Running)
	assert.Equal(t, 1, rec.count("finish main"))

	// Ticks after the end do nothing
	result, err := service.TickCountdown(ctx)
	require.NoError(t, err)
	assert.False(t, result.Finished)
	assert.Equal(t, 1, rec.count("finish main"))
}

func TestSessionService_CountdownAlerts(t *testing.T) {
	cfg := plainSession("main", 125*time.Second)
	cfg.AlertMinutes = []int{1, 0}
	service, _ := newTestSessionService(t, studyWith(cfg))
	ctx := context.Background()
	require.NoError(t, service.Start(ctx))

	var alertsAt []int
	for range 125 {
		result, err := service.TickCountdown(ctx)
		require.NoError(t, err)
		if result.Alert {
			alertsAt = append(alertsAt, result.Remaining)
		}
	}

	assert.Equal(t, []int{60}, alertsAt)
}

func TestSessionService_EndMessage(t *testing.T) {
	cfg := plainSession("main", time.Second)
	msg := "Thank you"
	cfg.EndMessage = &msg
	service, _ := newTestSessionService(t, studyWith(cfg))
	require.NoError(t, service.Start(context.Background()))

	result, err := service.TickCountdown(context.Background())
	require.NoError(t, err)
	require.True(t, result.Finished)
	require.NotNil(t, result.EndMessage)
	assert.Equal(t, "Thank you", *result.EndMessage)
}

func TestSessionService_IncomingQueueDrains(t *testing.T) {
	cfg := plainSession("main", time.Minute)
	interval := 10 * time.Second
	cfg.Incoming = &domain.IDRange{Start: 21, Finish: 23}
	cfg.IncomingInterval = &interval
	service, rec := newTestSessionService(t, studyWith(cfg))
	ctx := context.Background()
	require.NoError(t, service.Start(ctx))

	stops := 0
	for i := range 3 {
		result, err := service.TickIncoming(ctx)
		require.NoError(t, err)
		assert.True(t, result.Delivered)
		assert.Equal(t, 21+i, result.Email.ID)
		if result.StopTimer {
			stops++
			assert.Equal(t, 2, i, "stop signalled before the queue emptied")
		}
	}

	assert.Equal(t, 1, stops)
	assert.Empty(t, service.State().Pending)
	assert.False(t, service.State().IncomingActive)
	assert.Equal(t, 3, rec.count(domain.ActionIncomingEmail))

	top := service.State().Inbox.Entries()[0]
	assert.Equal(t, 23, top.Email.ID)
	assert.Equal(t, "12:00", top.DisplayTime)

	result, err := service.TickIncoming(ctx)
	require.NoError(t, err)
	assert.False(t, result.Delivered)
	assert.True(t, result.StopTimer)
}

func TestSessionService_RequestFinish(t *testing.T) {
	cfg := plainSession("main", time.Hour)
	interval := 10 * time.Second
	cfg.Incoming = &domain.IDRange{Start: 21, Finish: 23}
	cfg.IncomingInterval = &interval
	service, rec := newTestSessionService(t, studyWith(cfg))
	ctx := context.Background()
	require.NoError(t, service.Start(ctx))

	service.RequestFinish()
	assert.False(t, service.State().IncomingActive)

	incoming, err := service.TickIncoming(ctx)
	require.NoError(t, err)
	assert.False(t, incoming.Delivered)
	assert.True(t, incoming.StopTimer, "timer keeps rescheduling after finish was requested")
	assert.Len(t, service.State().Pending, 3)

	result, err := service.TickCountdown(ctx)
	require.NoError(t, err)
	assert.True(t, result.Finished)
	assert.Equal(t, 1, rec.count("finish main"))
}

func TestSessionService_NextSession(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(
		plainSession("first", time.Minute),
		plainSession("second", time.Minute),
	))
	ctx := context.Background()
	require.NoError(t, service.Start(ctx))

	done, err := service.NextSession(ctx)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, "second", service.State().Config.Name)

	done, err = service.NextSession(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	assert.Equal(t, []string{"start first", "start second"}, rec.actions())
}

func TestSessionService_ParticipantActions(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))
	rec.events = nil

	require.NoError(t, service.Open(2))
	entry, ok := service.State().Inbox.Current()
	require.True(t, ok)
	assert.True(t, entry.Read)

	starred, err := service.ToggleStar()
	require.NoError(t, err)
	assert.True(t, starred)
	starred, err = service.ToggleStar()
	require.NoError(t, err)
	assert.False(t, starred)

	require.NoError(t, service.MarkUnread())
	require.NoError(t, service.BeginResponse(domain.ResponseReplyAll))
	require.NoError(t, service.SendReply("Thanks, will do"))
	require.NoError(t, service.BeginResponse(domain.ResponseForward))
	require.NoError(t, service.SendForward(" it@example.com ", "Is this real?"))
	require.NoError(t, service.ClickLink("http://phish.example.com"))
	require.NoError(t, service.Report())

	assert.Equal(t, []string{
		domain.ActionEmailOpened,
		domain.ActionEmailStar,
		domain.ActionEmailUnstar,
		domain.ActionMarkedUnread,
		domain.ActionReplyAllClicked,
		domain.ActionReply,
		domain.ActionForwardClicked,
		"forward to it@example.com",
		domain.ActionLinkClicked,
		domain.ActionEmailReported,
	}, rec.actions())

	for _, e := range rec.events {
		assert.Equal(t, "2", e.EmailID)
		assert.Equal(t, "Subject 2", e.Subject)
	}
	assert.Equal(t, "Thanks, will do", rec.events[5].Detail)
	assert.Equal(t, "Is this real?", rec.events[7].Detail)
	assert.Equal(t, "http://phish.example.com", rec.events[8].Detail)

	assert.False(t, service.State().Inbox.Contains(2))
	assert.Equal(t, 4, service.State().Inbox.Len())
}

func TestSessionService_DeleteReselects(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))

	require.NoError(t, service.Open(1))
	require.NoError(t, service.Open(3))
	require.NoError(t, service.Delete())

	current, ok := service.State().Inbox.Current()
	require.True(t, ok)
	assert.Equal(t, 1, current.Email.ID)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, domain.ActionEmailDeleted, last.Action)
	assert.Equal(t, "3", last.EmailID)
}

func TestSessionService_DeleteMarksReselectedRead(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))

	require.NoError(t, service.Open(1))
	opened := rec.count(domain.ActionEmailOpened)
	require.NoError(t, service.Delete())

	current, ok := service.State().Inbox.Current()
	require.True(t, ok)
	assert.Equal(t, 2, current.Email.ID)
	assert.True(t, current.Read)
	assert.Equal(t, 3, service.State().Inbox.UnreadCount())
	assert.Equal(t, opened, rec.count(domain.ActionEmailOpened), "reselection is not an open")

	require.NoError(t, service.Report())
	current, ok = service.State().Inbox.Current()
	require.True(t, ok)
	assert.Equal(t, 3, current.Email.ID)
	assert.True(t, current.Read)
	assert.Equal(t, 2, service.State().Inbox.UnreadCount())
}

func TestSessionService_EmptyResponsesAreRejected(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))
	require.NoError(t, service.Open(1))
	before := len(rec.events)

	assert.ErrorIs(t, service.SendReply("   "), domain.ErrEmptyReply)
	assert.ErrorIs(t, service.SendForward("", "text"), domain.ErrEmptyForward)
	assert.Len(t, rec.events, before)
}

func TestSessionService_ActionsNeedSelection(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))
	before := len(rec.events)

	_, err := service.ToggleStar()
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	assert.ErrorIs(t, service.Delete(), domain.ErrNoSelection)
	assert.ErrorIs(t, service.Report(), domain.ErrNoSelection)
	assert.ErrorIs(t, service.Open(99), domain.ErrEmailNotFound)
	assert.Len(t, rec.events, before)
}

func TestSessionService_HoverIsDeduplicated(t *testing.T) {
	service, rec := newTestSessionService(t, studyWith(plainSession("main", time.Minute)))
	require.NoError(t, service.Start(context.Background()))
	require.NoError(t, service.Open(1))
	rec.events = nil

	require.NoError(t, service.HoverLink("http://a"))
	require.NoError(t, service.HoverLink("http://a"))
	require.NoError(t, service.HoverLink("http://b"))
	require.NoError(t, service.UnhoverLink())
	require.NoError(t, service.UnhoverLink())

	assert.Equal(t, []string{
		domain.ActionURLHovered,
		domain.ActionURLHovered,
		domain.ActionURLUnhovered,
	}, rec.actions())
	assert.Equal(t, "http://b", rec.events[1].Detail)
}

func TestSessionService_OpenAttachment(t *testing.T) {
	logger, rec := recordingLogger(t)
	corpus, err := domain.NewCorpus([]domain.Email{
		{ID: 1, Title: "Invoice", Attachments: []domain.Attachment{{Name: "invoice.pdf", Phishing: true}}},
	})
	require.NoError(t, err)
	cfg := plainSession("main", time.Minute)
	cfg.Inbox.Range = domain.IDRange{Start: 1, Finish: 1}

	service := NewSessionService(studyWith(cfg), corpus, logger, nil, SessionOptions{Rand: newRand()})
	require.NoError(t, service.Start(context.Background()))
	require.NoError(t, service.Open(1))

	attachment, err := service.OpenAttachment("invoice.pdf")
	require.NoError(t, err)
	assert.True(t, attachment.Phishing)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, domain.ActionAttachmentOpened, last.Action)
	assert.Equal(t, "phishing attachment: invoice.pdf", last.Detail)

	_, err = service.OpenAttachment("missing.doc")
	assert.Error(t, err)
}

func TestSessionService_CategoryStyle(t *testing.T) {
	cfg := plainSession("main", time.Minute)
	cfg.Styles = map[string]domain.CategoryStyle{"work": {Header: "color: red"}}
	service, _ := newTestSessionService(t, studyWith(cfg))
	require.NoError(t, service.Start(context.Background()))

	_, ok := service.CategoryStyle()
	assert.False(t, ok, "no selection yet")

	require.NoError(t, service.Open(1))
	style, ok := service.CategoryStyle()
	require.True(t, ok)
	assert.Equal(t, "color: red", style.Header)
}

func TestSessionService_LogFailureIsFatal(t *testing.T) {
	logger := portsmocks.NewMockEventLogger(t)
	logger.EXPECT().Append(mock.Anything).Return(errors.New("disk full"))

	service := NewSessionService(studyWith(plainSession("main", time.Minute)), testCorpus(t, 1), logger, nil, SessionOptions{Rand: newRand()})

	err := service.Start(context.Background())
	require.ErrorIs(t, err, domain.ErrLogWrite)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSessionService_RecordsRunProgress(t *testing.T) {
	repo := portsmocks.NewMockRunRepository(t)
	repo.EXPECT().StartSession(mock.Anything, "run-1", mock.MatchedBy(func(s domain.RunSession) bool {
		return s.Name == "main" && s.Position == 0
	})).Return(nil).Once()
	repo.EXPECT().FinishSession(mock.Anything, "run-1", 0, sessionNow, 5, 5).Return(nil).Once()
	repo.EXPECT().Finish(mock.Anything, "run-1", domain.RunStatusFinished, sessionNow).Return(nil).Once()

	logger, _ := recordingLogger(t)
	service := NewSessionService(
		studyWith(plainSession("main", time.Second)),
		testCorpus(t, 1, 2, 3, 4, 5),
		logger,
		NewRunService(repo, nil),
		SessionOptions{Now: func() time.Time { return sessionNow }, Rand: newRand(), RunID: "run-1"},
	)
	ctx := context.Background()

	require.NoError(t, service.Start(ctx))
	result, err := service.TickCountdown(ctx)
	require.NoError(t, err)
	require.True(t, result.Finished)
	service.Finish(ctx, domain.RunStatusFinished)
}

func TestSessionService_RegistryFailureIsNotFatal(t *testing.T) {
	repo := portsmocks.NewMockRunRepository(t)
	repo.EXPECT().StartSession(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	logger, rec := recordingLogger(t)
	service := NewSessionService(studyWith(plainSession("main", time.Minute)), testCorpus(t, 1), logger,
		NewRunService(repo, nil), SessionOptions{Rand: newRand(), RunID: "run-1"})

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 1, rec.count("start main"))
}

func TestSessionService_LogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	logger, err := eventlog.NewCSVLogger(dir, "p01", sessionNow)
	require.NoError(t, err)

	clock := sessionNow
	service := NewSessionService(
		studyWith(plainSession("main", 2*time.Second)),
		testCorpus(t, 1, 2, 3),
		logger,
		nil,
		SessionOptions{
			Now: func() time.Time {
				clock = clock.Add(250 * time.Millisecond)
				return clock
			},
			Participant: "p01",
			Rand:        newRand(),
		},
	)
	ctx := context.Background()

	require.NoError(t, service.Start(ctx))
	require.NoError(t, service.Open(2))
	require.NoError(t, service.HoverLink("http://example.com/a"))
	require.NoError(t, service.BeginResponse(domain.ResponseReply))
	require.NoError(t, service.SendReply("hello, \"team\""))
	require.NoError(t, service.Delete())
	for range 2 {
		_, err := service.TickCountdown(ctx)
		require.NoError(t, err)
	}
	require.NoError(t, logger.Close())

	events, err := eventlog.ReadEvents(logger.Path())
	require.NoError(t, err)

	type row struct{ action, detail, id, session string }
	var got []row
	for _, e := range events {
		got = append(got, row{e.Action, e.Detail, e.EmailID, e.Session})
	}
	assert.Equal(t, []row{
		{"start main", "", "", "main"},
		{domain.ActionEmailOpened, "", "2", "main"},
		{domain.ActionURLHovered, "http://example.com/a", "2", "main"},
		{domain.ActionReplyClicked, "", "2", "main"},
		{domain.ActionReply, "hello, \"team\"", "2", "main"},
		{domain.ActionEmailDeleted, "", "2", "main"},
		{"finish main", "", "", "main"},
	}, got)

	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Timestamp, events[i-1].Timestamp)
	}
}
