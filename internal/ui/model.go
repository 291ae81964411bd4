package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
	"github.com/renato0307/inboxsim/internal/services"
	"github.com/renato0307/inboxsim/internal/theme"
)

type uiState int

const (
	stateWelcome uiState = iota
	stateInbox
	stateAttachments
	stateHelp
	stateNotice
	stateResponding
	stateTask
)

const (
	defaultEndMessage  = "This session is over. Press enter to continue."
	reportedMessage    = "You have reported the selected email"
	attachmentErrorFmt = "Could not open file: %s. Something unexpected happened during the execution. \nError code: 506"
	attachmentOpenFmt  = "%s was opened."
)

// ModelOptions holds presentation settings for a run
type ModelOptions struct {
	DevMode      bool                     // Shows version info in dialog headers
	InputCapture bool                     // Records terminal key and mouse events as telemetry
	Keys         config.KeyBindingsConfig // Key overrides by binding name
}

// Model is the participant-facing email client
type Model struct {
	attachmentForm      *Dialog
	countdownGen        int // Incremented to invalidate scheduled countdown ticks
	ctx                 context.Context
	devMode             bool
	height              int
	helpScreen          *Dialog
	inboxList           list.Model
	incomingGen         int // Incremented to invalidate scheduled incoming ticks
	inputCapture        bool
	keyOverrides        config.KeyBindingsConfig
	keys                KeyMap
	notice              *Notice
	noticeAction        func() tea.Cmd // Runs when the notice closes, nil returns to the inbox
	notificationService *services.NotificationService
	pane                *ReadingPane
	renderer            ports.BodyRenderer
	responseForm        *Dialog
	sessionService      *services.SessionService
	state               uiState
	status              domain.RunStatus
	taskForm            *Dialog
	taskNotes           string // Primary task notes of the active session
	telemetryOff        bool
	telemetryService    *services.TelemetryService
	toast               string
	toastID             int
	width               int
}

// NewModel creates the email client. telemetryService may be nil.
func NewModel(
	ctx context.Context,
	sessionService *services.SessionService,
	notificationService *services.NotificationService,
	telemetryService *services.TelemetryService,
	renderer ports.BodyRenderer,
	opts ModelOptions,
) *Model {
	return &Model{
		ctx:                 ctx,
		devMode:             opts.DevMode,
		inboxList:           newInboxList(true),
		inputCapture:        opts.InputCapture,
		keyOverrides:        opts.Keys,
		keys:                NewKeyMap(opts.Keys),
		notificationService: notificationService,
		pane:                NewReadingPane(),
		renderer:            renderer,
		sessionService:      sessionService,
		state:               stateWelcome,
		status:              domain.RunStatusRunning,
		telemetryService:    telemetryService,
	}
}

// Status reports how the run ended; RunStatusRunning while the program is still going
func (m *Model) Status() domain.RunStatus {
	return m.status
}

func (m *Model) Init() tea.Cmd {
	if m.sessionService.Study().WelcomeText != nil {
		return nil
	}
	return m.startFirstSession()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.captureInput(msg)

	// Run-level messages are handled the same way whatever is on screen
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, m.forwardToActive(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, m.quit(domain.RunStatusAborted)
		}

	case countdownTickMsg:
		if msg.gen != m.countdownGen {
			return m, nil
		}
		return m, m.handleCountdown()

	case incomingTickMsg:
		if msg.gen != m.incomingGen {
			return m, nil
		}
		return m, m.handleIncoming()

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case TelemetryUnavailableMsg:
		m.telemetryOff = true
		if err := m.sessionService.LogTelemetryUnavailable(msg.Err); err != nil {
			return m, m.showFatal(err)
		}
		return m, nil

	case FatalErrorMsg:
		return m, m.showFatal(msg.Err)
	}

	switch m.state {
	case stateWelcome:
		return m.updateWelcome(msg)
	case stateInbox:
		return m.updateInbox(msg)
	case stateAttachments:
		return m.updateAttachments(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateNotice:
		return m.updateNotice(msg)
	case stateResponding:
		return m.updateResponding(msg)
	case stateTask:
		return m.updateTask(msg)
	}
	return m, nil
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return m, m.startFirstSession()
	}
	return m, nil
}

func (m *Model) updateInbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Application.NextSession):
		m.sessionService.RequestFinish()
		return m, nil

	case key.Matches(keyMsg, m.keys.Application.PrimaryTask):
		return m, m.openTask()

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.inboxList.CursorUp()
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.inboxList.CursorDown()
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Open):
		item, ok := m.inboxList.SelectedItem().(EmailItem)
		if !ok {
			return m, nil
		}
		if err := m.sessionService.Open(item.Entry.Email.ID); err != nil {
			return m, m.handleActionError(err)
		}
		m.refreshInbox()
		m.showCurrent()
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.ScrollUp):
		m.pane.viewport.SetYOffset(m.pane.viewport.YOffset - m.pane.viewport.Height/2)
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.ScrollDown):
		m.pane.viewport.SetYOffset(m.pane.viewport.YOffset + m.pane.viewport.Height/2)
		return m, nil
	}

	// Everything below acts on the opened email
	entry, opened := m.pane.Entry()
	if !opened {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Email.Reply):
		return m, m.openResponse(entry.Email, domain.ResponseReply)

	case key.Matches(keyMsg, m.keys.Email.ReplyAll):
		if !entry.Email.HasOtherRecipients() {
			return m, nil
		}
		return m, m.openResponse(entry.Email, domain.ResponseReplyAll)

	case key.Matches(keyMsg, m.keys.Email.Forward):
		return m, m.openResponse(entry.Email, domain.ResponseForward)

	case key.Matches(keyMsg, m.keys.Email.Star):
		if _, err := m.sessionService.ToggleStar(); err != nil {
			return m, m.handleActionError(err)
		}
		m.refreshInbox()
		m.showCurrent()
		return m, nil

	case key.Matches(keyMsg, m.keys.Email.Unread):
		if err := m.sessionService.MarkUnread(); err != nil {
			return m, m.handleActionError(err)
		}
		m.refreshInbox()
		return m, nil

	case key.Matches(keyMsg, m.keys.Email.Delete):
		if err := m.sessionService.Delete(); err != nil {
			return m, m.handleActionError(err)
		}
		m.refreshInbox()
		m.showCurrent()
		return m, nil

	case key.Matches(keyMsg, m.keys.Email.Report):
		if err := m.sessionService.Report(); err != nil {
			return m, m.handleActionError(err)
		}
		m.refreshInbox()
		m.showCurrent()
		m.showNotice(reportedMessage, nil)
		return m, nil

	case key.Matches(keyMsg, m.keys.Email.Attachments):
		if len(entry.Email.Attachments) == 0 {
			return m, nil
		}
		m.attachmentForm = NewDialog("Attachments", NewAttachmentForm(entry.Email.Attachments), m.devMode)
		m.state = stateAttachments
		return m, m.attachmentForm.Init()

	case key.Matches(keyMsg, m.keys.Links.Next):
		if url, ok := m.pane.NextLink(); ok {
			return m, m.handleActionError(m.sessionService.HoverLink(url))
		}

	case key.Matches(keyMsg, m.keys.Links.Prev):
		if url, ok := m.pane.PrevLink(); ok {
			return m, m.handleActionError(m.sessionService.HoverLink(url))
		}

	case key.Matches(keyMsg, m.keys.Links.Release):
		if m.pane.ReleaseLink() {
			return m, m.handleActionError(m.sessionService.UnhoverLink())
		}

	case key.Matches(keyMsg, m.keys.Links.Follow):
		link, ok := m.pane.FocusedLink()
		if !ok {
			return m, nil
		}
		if err := m.sessionService.ClickLink(link.URL); err != nil {
			return m, m.handleActionError(err)
		}
		return m, m.showToast("Opening " + link.URL)
	}

	return m, nil
}

func (m *Model) updateAttachments(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.attachmentForm.Update(msg)
	m.attachmentForm = updated.(*Dialog)

	form, ok := m.attachmentForm.Content().(*AttachmentForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.attachmentForm = nil
	m.state = stateInbox
	name, chosen := form.Choice()
	if !chosen {
		return m, nil
	}

	attachment, err := m.sessionService.OpenAttachment(name)
	if err != nil {
		return m, m.handleActionError(err)
	}
	if attachment.Phishing {
		m.showNotice(fmt.Sprintf(attachmentErrorFmt, attachment.Name), nil)
	} else {
		m.showNotice(fmt.Sprintf(attachmentOpenFmt, attachment.Name), nil)
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if help, ok := m.helpScreen.Content().(*HelpScreen); ok && help.Completed {
		m.helpScreen = nil
		m.state = stateInbox
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateNotice(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.notice.Update(msg)
	if !m.notice.Completed {
		return m, nil
	}

	action := m.noticeAction
	m.notice = nil
	m.noticeAction = nil
	m.state = stateInbox
	if action != nil {
		return m, action()
	}
	return m, nil
}

func (m *Model) updateResponding(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.responseForm.Update(msg)
	m.responseForm = updated.(*Dialog)

	form, ok := m.responseForm.Content().(*ResponseForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.responseForm = nil
	m.state = stateInbox
	result := form.Result()
	if result.Error != nil {
		return m, m.handleActionError(result.Error)
	}
	if result.Cancelled {
		return m, nil
	}
	if result.Kind == domain.ResponseForward {
		return m, m.showToast("Email forwarded")
	}
	return m, m.showToast("Reply sent")
}

func (m *Model) updateTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.taskForm.Update(msg)
	m.taskForm = updated.(*Dialog)

	if form, ok := m.taskForm.Content().(*TaskForm); ok && form.Completed {
		m.taskForm = nil
		m.state = stateInbox
		return m, nil
	}
	return m, cmd
}

func (m *Model) openResponse(email domain.Email, kind domain.ResponseKind) tea.Cmd {
	if err := m.sessionService.BeginResponse(kind); err != nil {
		return m.handleActionError(err)
	}
	title := "Reply"
	switch kind {
	case domain.ResponseReplyAll:
		title = "Reply All"
	case domain.ResponseForward:
		title = "Forward"
	}
	m.responseForm = NewDialog(title, NewResponseForm(m.sessionService, email, kind), m.devMode)
	m.state = stateResponding
	return m.responseForm.Init()
}

func (m *Model) openTask() tea.Cmd {
	state := m.sessionService.State()
	if state == nil || state.Config.PrimaryTask == nil {
		return nil
	}

	body, err := m.renderer.RenderFile(*state.Config.PrimaryTask)
	if err != nil {
		logging.Logger.Warn("Failed to render primary task", "path", *state.Config.PrimaryTask, "error", err)
		return m.showToast("The task could not be loaded")
	}

	m.taskForm = NewDialog("Primary Task", NewTaskForm(body.Text, &m.taskNotes), m.devMode)
	m.state = stateTask
	return m.taskForm.Init()
}

func (m *Model) startFirstSession() tea.Cmd {
	if err := m.sessionService.Start(m.ctx); err != nil {
		return m.showFatal(err)
	}
	return m.beginSession()
}

// beginSession resets the screen for the session the service just started and schedules its timers
func (m *Model) beginSession() tea.Cmd {
	state := m.sessionService.State()
	m.countdownGen++
	m.incomingGen++
	m.taskNotes = ""
	m.toast = ""

	// Rebuilt so buttons hidden by one session come back in the next
	m.keys = NewKeyMap(m.keyOverrides)
	m.keys.ApplyButtons(state.Config.Buttons)
	m.inboxList.SetDelegate(EmailDelegate{showStar: state.Config.Buttons.Star})
	m.pane.Clear()
	m.refreshInbox()
	m.inboxList.Select(0)
	m.state = stateInbox

	cmds := []tea.Cmd{countdownTick(m.countdownGen)}
	if state.IncomingActive {
		cmds = append(cmds, incomingTick(m.incomingGen, *state.Config.IncomingInterval))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleCountdown() tea.Cmd {
	result, err := m.sessionService.TickCountdown(m.ctx)
	if err != nil {
		return m.showFatal(err)
	}
	if result.Alert {
		m.notificationService.PlaySoundForEvent(domain.SoundAlert)
	}
	if !result.Finished {
		return countdownTick(m.countdownGen)
	}

	m.notificationService.PlaySoundForEvent(domain.SoundFinish)
	m.endSession(result.EndMessage)
	return nil
}

func (m *Model) handleIncoming() tea.Cmd {
	result, err := m.sessionService.TickIncoming(m.ctx)
	if err != nil {
		return m.showFatal(err)
	}

	var cmds []tea.Cmd
	if result.Delivered {
		m.notificationService.PlaySoundForEvent(domain.SoundIncoming)
		m.refreshInbox()
		m.followSelection()
		cmds = append(cmds, m.showToast("New email from "+result.Email.Name))
	}
	if !result.StopTimer {
		if state := m.sessionService.State(); state != nil && state.Config.IncomingInterval != nil {
			cmds = append(cmds, incomingTick(m.incomingGen, *state.Config.IncomingInterval))
		}
	}
	return tea.Batch(cmds...)
}

// endSession stops the session's timers, stores the task notes and announces the end
func (m *Model) endSession(endMessage *string) {
	m.countdownGen++
	m.incomingGen++
	m.attachmentForm = nil
	m.helpScreen = nil
	m.responseForm = nil
	m.taskForm = nil

	if err := m.sessionService.SavePrimaryTask(taskRows(m.taskNotes)); err != nil {
		logging.Logger.Error("Failed to save primary task data", "error", err)
	}

	text := defaultEndMessage
	if endMessage != nil {
		text = *endMessage
	}
	m.showNotice(text, m.advanceSession)
}

func (m *Model) advanceSession() tea.Cmd {
	done, err := m.sessionService.NextSession(m.ctx)
	if err != nil {
		return m.showFatal(err)
	}
	if done {
		return m.quit(domain.RunStatusFinished)
	}
	return m.beginSession()
}

func (m *Model) quit(status domain.RunStatus) tea.Cmd {
	m.countdownGen++
	m.incomingGen++
	m.status = status
	m.sessionService.Finish(m.ctx, status)
	logging.Logger.Info("Run ended", "status", status)
	return tea.Quit
}

// handleActionError turns a participant action failure into feedback. Log failures end the run.
func (m *Model) handleActionError(err error) tea.Cmd {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrLogWrite):
		return m.showFatal(err)
	case errors.Is(err, domain.ErrNoSelection):
		return m.showToast("Select an email first")
	default:
		logging.Logger.Warn("Participant action failed", "error", err)
		return m.showToast(err.Error())
	}
}

func (m *Model) showFatal(err error) tea.Cmd {
	logging.Logger.Error("Fatal error, stopping run", "error", err)
	m.countdownGen++
	m.incomingGen++
	m.notice = NewFatalNotice(formatErrorForDisplay(err, 56))
	m.noticeAction = func() tea.Cmd {
		return m.quit(domain.RunStatusAborted)
	}
	m.state = stateNotice
	return nil
}

func (m *Model) showNotice(text string, action func() tea.Cmd) {
	m.notice = NewNotice(text)
	m.noticeAction = action
	m.state = stateNotice
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// refreshInbox reloads the list from the inbox, keeping the cursor in range
func (m *Model) refreshInbox() {
	state := m.sessionService.State()
	if state == nil {
		return
	}
	cursor := m.inboxList.Index()
	m.inboxList.SetItems(emailItems(state.Inbox))
	if n := len(m.inboxList.Items()); cursor >= n && n > 0 {
		m.inboxList.Select(n - 1)
	}
}

// followSelection moves the cursor onto the selected email after rows shift
func (m *Model) followSelection() {
	state := m.sessionService.State()
	if state == nil {
		return
	}
	if idx := state.Inbox.CurrentIndex(); idx >= 0 {
		m.inboxList.Select(idx)
	} else if cursor := m.inboxList.Index(); cursor < len(m.inboxList.Items())-1 {
		m.inboxList.Select(cursor + 1)
	}
}

// showCurrent displays the inbox selection in the reading pane
func (m *Model) showCurrent() {
	state := m.sessionService.State()
	if state == nil {
		m.pane.Clear()
		return
	}
	entry, ok := state.Inbox.Current()
	if !ok {
		m.pane.Clear()
		return
	}

	body, err := m.renderer.Render(entry.Email)
	if err != nil {
		logging.Logger.Warn("Failed to render email body", "email_id", entry.Email.ID, "error", err)
	}

	styles := defaultCategoryStyles()
	if rules, ok := m.sessionService.CategoryStyle(); ok {
		styles = newCategoryStyles(rules)
	}
	m.pane.Show(entry, body, styles)
	m.followSelection()
}

func (m *Model) captureInput(msg tea.Msg) {
	if !m.inputCapture || m.telemetryService == nil {
		return
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.telemetryService.RecordInput("keyboard", "press", msg.String(), 0, 0)
	case tea.MouseMsg:
		m.telemetryService.RecordInput("mouse", mouseActionName(msg.Action), mouseButtonName(msg.Button), msg.X, msg.Y)
	}
}

var mouseActionNames = map[tea.MouseAction]string{
	tea.MouseActionPress:   "press",
	tea.MouseActionRelease: "release",
	tea.MouseActionMotion:  "motion",
}

var mouseButtonNames = map[tea.MouseButton]string{
	tea.MouseButtonNone:       "none",
	tea.MouseButtonLeft:       "left",
	tea.MouseButtonMiddle:     "middle",
	tea.MouseButtonRight:      "right",
	tea.MouseButtonWheelUp:    "wheel up",
	tea.MouseButtonWheelDown:  "wheel down",
	tea.MouseButtonWheelLeft:  "wheel left",
	tea.MouseButtonWheelRight: "wheel right",
	tea.MouseButtonBackward:   "backward",
	tea.MouseButtonForward:    "forward",
}

func mouseActionName(a tea.MouseAction) string {
	if name, ok := mouseActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action %d", int(a))
}

func mouseButtonName(b tea.MouseButton) string {
	if name, ok := mouseButtonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("button %d", int(b))
}

func (m *Model) resize() {
	bodyHeight := max(m.height-2, 3)
	listWidth := max(m.width*2/5, 20)
	m.inboxList.SetSize(listWidth, bodyHeight)
	m.pane.SetSize(max(m.width-listWidth, 20), bodyHeight)
}

func (m *Model) forwardToActive(msg tea.Msg) tea.Cmd {
	var active *Dialog
	switch m.state {
	case stateAttachments:
		active = m.attachmentForm
	case stateHelp:
		active = m.helpScreen
	case stateResponding:
		active = m.responseForm
	case stateTask:
		active = m.taskForm
	case stateNotice:
		m.notice.Update(msg)
	}
	if active == nil {
		return nil
	}
	_, cmd := active.Update(msg)
	return cmd
}

func countdownTick(gen int) tea.Cmd {
	return tea.Tick(countdownInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{gen: gen}
	})
}

func incomingTick(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return incomingTickMsg{gen: gen}
	})
}

func (m *Model) View() string {
	switch m.state {
	case stateWelcome:
		return m.renderWelcome()
	case stateAttachments:
		return m.attachmentForm.View()
	case stateHelp:
		return m.helpScreen.View()
	case stateResponding:
		return m.responseForm.View()
	case stateTask:
		return m.taskForm.View()
	case stateNotice:
		return compositeOverlay(m.renderInbox(), m.notice.View(), m.width, m.height)
	}

	view := m.renderInbox()
	if m.toast != "" {
		view = bottomOverlay(view, theme.ToastStyle.Render(m.toast), m.width, m.height)
	}
	return view
}

func (m *Model) renderWelcome() string {
	text := ""
	if welcome := m.sessionService.Study().WelcomeText; welcome != nil {
		text = *welcome
	}
	content := lipgloss.NewStyle().Width(min(max(m.width-8, 20), 70)).Render(text) +
		"\n\n" + theme.HelpStyle.Render("Press enter to begin")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.ModalStyle.Render(content))
}

func (m *Model) renderInbox() string {
	state := m.sessionService.State()
	if state == nil {
		return ""
	}

	header := theme.AppNameStyle.Render(versionInfo.Tagline) + "  " +
		theme.UnreadCountStyle.Render(fmt.Sprintf("Inbox (%d)", state.Inbox.UnreadCount()))
	if state.Config.ShowCountdown {
		countdown := fmt.Sprintf("%02d:%02d", state.Remaining/60, state.Remaining%60)
		if state.Remaining < 60 {
			header += "  " + theme.CountdownWarningStyle.Render(countdown)
		} else {
			header += "  " + theme.CountdownStyle.Render(countdown)
		}
	}
	if m.telemetryOff {
		header += "  " + theme.TelemetryOffStyle.Render("● tracker offline")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.inboxList.View(), m.pane.View())
	return header + "\n" + body + "\n" + m.renderShortHelp()
}

func (m *Model) renderShortHelp() string {
	var line string
	for i, b := range m.keys.ShortHelp() {
		if i > 0 {
			line += "  "
		}
		line += theme.HelpShortcutStyle.Render(b.Help().Key) + " " + theme.HelpLabelStyle.Render(b.Help().Desc)
	}
	return theme.StatusBarStyle.Render(line)
}
