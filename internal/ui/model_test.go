package ui

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
	portsmocks "github.com/renato0307/inboxsim/internal/ports/mocks"
	"github.com/renato0307/inboxsim/internal/services"
)

type fakeRenderer struct{}

func (fakeRenderer) Render(email domain.Email) (domain.Body, error) {
	return domain.Body{
		Links: []domain.Link{{Text: "verify account", URL: "http://bank.example.co/login"}},
		Text:  "Hello from " + email.Name + " verify account [1]",
	}, nil
}

func (fakeRenderer) RenderFile(path string) (domain.Body, error) {
	return domain.Body{Text: "Fill in the table"}, nil
}

type modelFixture struct {
	actions []string
	failOn  string
	model   *Model
}

func newModelFixture(t *testing.T, sessions ...domain.SessionConfig) *modelFixture {
	t.Helper()
	f := &modelFixture{}

	logger := portsmocks.NewMockEventLogger(t)
	logger.EXPECT().Append(mock.Anything).RunAndReturn(func(e domain.LogEvent) error {
		if f.failOn != "" && e.Action == f.failOn {
			return errors.New("disk full")
		}
		f.actions = append(f.actions, e.Action)
		return nil
	}).Maybe()

	corpus, err := domain.NewCorpus([]domain.Email{
		{ID: 1, Name: "Alice", Title: "Lunch", To: "me", Category: "work"},
		{ID: 2, Name: "Bank", Title: "Verify", To: "me, bob@example.com", Category: "work",
			Attachments: []domain.Attachment{{Name: "invoice.pdf", Phishing: true}}},
		{ID: 3, Name: "Carol", Title: "Minutes", To: "me", Category: "work"},
	})
	require.NoError(t, err)

	study := &domain.StudyConfig{EmailListLocation: "emails.csv", SaveLocation: "out", Sessions: sessions}
	sessionService := services.NewSessionService(study, corpus, logger, nil, services.SessionOptions{
		Now:         func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) },
		Participant: "p01",
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})

	f.model = NewModel(context.Background(), sessionService, services.NewNotificationService(nil, false), nil, fakeRenderer{}, ModelOptions{})
	f.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return f
}

func testSession(name string, seconds int) domain.SessionConfig {
	return domain.SessionConfig{
		Buttons:       domain.AllButtons(),
		Duration:      time.Duration(seconds) * time.Second,
		Inbox:         domain.InboxRule{Range: domain.IDRange{Start: 1, Finish: 3}},
		Name:          name,
		ShowCountdown: true,
	}
}

func (f *modelFixture) press(keys string) tea.Cmd {
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *modelFixture) tick() tea.Cmd {
	_, cmd := f.model.Update(countdownTickMsg{gen: f.model.countdownGen})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitStartsFirstSession(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))

	require.NotNil(t, f.model.Init())

	assert.Equal(t, stateInbox, f.model.state)
	assert.Equal(t, []string{"start training"}, f.actions)
	assert.Len(t, f.model.inboxList.Items(), 3)
}

func TestModel_WelcomeWaitsForEnter(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	welcome := "Welcome to the study"
	f.model.sessionService.Study().WelcomeText = &welcome

	assert.Nil(t, f.model.Init())
	assert.Equal(t, stateWelcome, f.model.state)
	assert.Contains(t, f.model.View(), "Welcome to the study")
	assert.Empty(t, f.actions)

	f.press("enter")
	assert.Equal(t, stateInbox, f.model.state)
	assert.Equal(t, []string{"start training"}, f.actions)
}

func TestModel_OpenShowsEmail(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.press("enter")

	entry, ok := f.model.pane.Entry()
	require.True(t, ok)
	first := f.model.sessionService.State().Inbox.Entries()[0]
	assert.Equal(t, first.Email.ID, entry.Email.ID)
	assert.Equal(t, domain.ActionEmailOpened, f.actions[len(f.actions)-1])
	assert.Contains(t, f.model.View(), "Hello from "+first.Email.Name)
}

func TestModel_EmailActionsNeedAnOpenEmail(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.press("d")
	f.press("s")

	assert.Equal(t, []string{"start training"}, f.actions)
	assert.Equal(t, 3, f.model.sessionService.State().Inbox.Len())
}

func TestModel_DeleteAndReport(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.press("enter")
	f.press("d")
	assert.Equal(t, 2, f.model.sessionService.State().Inbox.Len())
	assert.Equal(t, domain.ActionEmailDeleted, f.actions[len(f.actions)-1])

	f.press("enter")
	f.press("!")
	assert.Equal(t, 1, f.model.sessionService.State().Inbox.Len())
	assert.Equal(t, domain.ActionEmailReported, f.actions[len(f.actions)-1])
	require.Equal(t, stateNotice, f.model.state)
	assert.Contains(t, f.model.notice.text, reportedMessage)

	f.press("enter")
	assert.Equal(t, stateInbox, f.model.state)
}

func TestModel_HiddenButtonsIgnored(t *testing.T) {
	session := testSession("training", 10)
	session.Buttons = domain.Buttons{}
	f := newModelFixture(t, session)
	f.model.Init()

	f.press("enter")
	f.press("d")
	f.press("!")
	f.press("s")
	f.press("u")

	assert.Equal(t, []string{"start training", domain.ActionEmailOpened}, f.actions)
}

func TestModel_LinkFocusLogsHover(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()
	f.press("enter")

	f.press("tab")
	f.press("tab")
	f.press("l")
	f.press("esc")

	assert.Equal(t, []string{
		"start training",
		domain.ActionEmailOpened,
		domain.ActionURLHovered,
		domain.ActionLinkClicked,
		domain.ActionURLUnhovered,
	}, f.actions)
}

func TestModel_StaleTicksIgnored(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.model.Update(countdownTickMsg{gen: f.model.countdownGen - 1})
	f.model.Update(incomingTickMsg{gen: f.model.incomingGen - 1})

	assert.Equal(t, 10, f.model.sessionService.State().Remaining)
}

func TestModel_SessionEndAdvancesAndFinishes(t *testing.T) {
	end := "Thanks, take a short break"
	first := testSession("first", 2)
	first.EndMessage = &end
	f := newModelFixture(t, first, testSession("second", 1))
	f.model.Init()

	require.NotNil(t, f.tick())
	assert.Nil(t, f.tick())
	require.Equal(t, stateNotice, f.model.state)
	assert.Equal(t, end, f.model.notice.text)

	f.press("enter")
	assert.Equal(t, stateInbox, f.model.state)
	assert.Equal(t, "second", f.model.sessionService.State().Config.Name)

	f.tick()
	require.Equal(t, stateNotice, f.model.state)
	assert.Equal(t, defaultEndMessage, f.model.notice.text)

	assert.True(t, isQuit(f.press("enter")))
	assert.Equal(t, domain.RunStatusFinished, f.model.Status())
	assert.Equal(t, []string{"start first", "finish first", "start second", "finish second"}, f.actions)
}

func TestModel_NextSessionFinishesOnNextTick(t *testing.T) {
	f := newModelFixture(t, testSession("first", 600), testSession("second", 600))
	f.model.Init()

	f.press("N")
	f.tick()

	assert.Equal(t, stateNotice, f.model.state)
	assert.Contains(t, f.actions, "finish first")
}

func TestModel_LogFailureIsFatal(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()
	f.failOn = domain.ActionEmailDeleted

	f.press("enter")
	f.press("d")

	require.Equal(t, stateNotice, f.model.state)
	assert.True(t, f.model.notice.fatal)
	assert.Contains(t, f.model.notice.text, "disk full")

	assert.True(t, isQuit(f.press("enter")))
	assert.Equal(t, domain.RunStatusAborted, f.model.Status())
}

func TestModel_ForceQuitAborts(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	assert.True(t, isQuit(f.press("ctrl+c")))
	assert.Equal(t, domain.RunStatusAborted, f.model.Status())
}

func TestModel_TelemetryUnavailable(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.model.Update(TelemetryUnavailableMsg{Err: errors.New("connection refused")})

	assert.True(t, f.model.telemetryOff)
	assert.Contains(t, f.actions, domain.ActionTelemetryUnavailable)
	assert.Contains(t, f.model.View(), "tracker offline")
}

type inputSink struct {
	rows [][]string
}

func (s *inputSink) Append(stream string, row []string) error {
	if stream == services.InputStream {
		s.rows = append(s.rows, row)
	}
	return nil
}

func (s *inputSink) Close() error { return nil }

func TestModel_InputCaptureRecordsMouse(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	sink := &inputSink{}
	f.model.telemetryService = services.NewTelemetryService(nil, nil, sink, nil)
	f.model.inputCapture = true
	f.model.Init()

	f.model.Update(tea.MouseMsg{X: 12, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.model.Update(tea.MouseMsg{X: 3, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	require.Len(t, sink.rows, 2)
	assert.Equal(t, []string{"mouse", "press", "left", "12", "4"}, sink.rows[0][1:])
	assert.Equal(t, []string{"mouse", "press", "wheel down", "3", "9"}, sink.rows[1][1:])
}

func TestModel_InputCaptureOff(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	sink := &inputSink{}
	f.model.telemetryService = services.NewTelemetryService(nil, nil, sink, nil)
	f.model.Init()

	f.model.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Empty(t, sink.rows)
}

func TestModel_IncomingKeepsCursorOnOpenEmail(t *testing.T) {
	session := testSession("main", 60)
	interval := 10 * time.Second
	session.Inbox = domain.InboxRule{Range: domain.IDRange{Start: 1, Finish: 2}}
	session.Incoming = &domain.IDRange{Start: 3, Finish: 3}
	session.IncomingInterval = &interval
	f := newModelFixture(t, session)
	f.model.Init()

	f.press("enter")
	opened, ok := f.model.pane.Entry()
	require.True(t, ok)

	f.model.Update(incomingTickMsg{gen: f.model.incomingGen})

	entries := f.model.sessionService.State().Inbox.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].Email.ID)

	highlighted, ok := f.model.inboxList.SelectedItem().(EmailItem)
	require.True(t, ok)
	assert.Equal(t, opened.Email.ID, highlighted.Entry.Email.ID)

	f.press("d")
	assert.Equal(t, domain.ActionEmailDeleted, f.actions[len(f.actions)-1])
	assert.False(t, f.model.sessionService.State().Inbox.Contains(opened.Email.ID))
	assert.True(t, f.model.sessionService.State().Inbox.Contains(3))
}

func TestModel_DeleteShowsNextEmailAsRead(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.press("enter")
	f.press("d")

	shown, ok := f.model.pane.Entry()
	require.True(t, ok)
	assert.True(t, shown.Read)
	assert.Equal(t, 1, f.model.sessionService.State().Inbox.UnreadCount())
}

func TestModel_ToastExpires(t *testing.T) {
	f := newModelFixture(t, testSession("training", 10))
	f.model.Init()

	f.model.showToast("first")
	f.model.showToast("second")

	f.model.Update(toastExpiredMsg{id: f.model.toastID - 1})
	assert.Equal(t, "second", f.model.toast)

	f.model.Update(toastExpiredMsg{id: f.model.toastID})
	assert.Empty(t, f.model.toast)
}

func TestTaskRows(t *testing.T) {
	rows := taskRows("a | b|c\n\n  \nd")
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, rows)
	assert.Nil(t, taskRows(""))
}

func TestFormatErrorForDisplay(t *testing.T) {
	assert.Empty(t, formatErrorForDisplay(nil, 40))
	assert.Equal(t, "Error: disk full", formatErrorForDisplay(errors.New("disk full"), 40))

	long := formatErrorForDisplay(errors.New("one two three four five six seven eight nine ten eleven twelve"), 12)
	assert.LessOrEqual(t, len(strings.Split(long, "\n")), maxErrorLines)
	assert.Contains(t, long, truncationMark)
}
