package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/services"
)

// Messages shown for incomplete responses
const (
	emptyForwardMessage = "Please select where you want to forward the email"
	emptyReplyMessage   = "Please write something in the text field"
)

// ResponseFormResult contains the result of a reply or forward
type ResponseFormResult struct {
	Cancelled bool
	Error     error
	Kind      domain.ResponseKind
	Text      string
	To        string
}

// ResponseForm is a Bubble Tea component for composing a reply, reply-all or forward
type ResponseForm struct {
	Completed      bool
	form           *huh.Form
	result         ResponseFormResult
	sessionService *services.SessionService
}

// NewResponseForm creates a compose form for the selected email
func NewResponseForm(sessionService *services.SessionService, email domain.Email, kind domain.ResponseKind) *ResponseForm {
	rf := &ResponseForm{
		result:         ResponseFormResult{Kind: kind},
		sessionService: sessionService,
	}

	var fields []huh.Field
	switch kind {
	case domain.ResponseForward:
		fields = append(fields,
			huh.NewNote().Title("Forward: "+email.Title),
			huh.NewInput().
				Title("To").
				Value(&rf.result.To).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New(emptyForwardMessage)
					}
					return nil
				}),
		)
	default:
		description := "To: " + email.Name
		if kind == domain.ResponseReplyAll {
			if cc := email.ReplyAllRecipients(); len(cc) > 0 {
				description += "\nCc: " + strings.Join(cc, ", ")
			}
		}
		fields = append(fields, huh.NewNote().Title("Re: "+email.Title).Description(description))
	}

	text := huh.NewText().
		Title("Message").
		Value(&rf.result.Text).
		CharLimit(5000)
	if kind != domain.ResponseForward {
		text = text.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(emptyReplyMessage)
			}
			return nil
		})
	}
	fields = append(fields, text)

	rf.form = huh.NewForm(huh.NewGroup(fields...))
	return rf
}

func (rf *ResponseForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *ResponseForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Closing the window discards the draft without logging
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		rf.result.Cancelled = true
		rf.Completed = true
		return rf, nil
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	switch rf.form.State {
	case huh.StateCompleted:
		rf.Completed = true
		if err := rf.send(); err != nil {
			logging.Logger.Error("Failed to record response", "kind", rf.result.Kind, "error", err)
			rf.result.Error = err
		}
		return rf, nil
	case huh.StateAborted:
		rf.result.Cancelled = true
		rf.Completed = true
		return rf, nil
	}

	return rf, cmd
}

func (rf *ResponseForm) View() string {
	if rf.form != nil {
		return rf.form.View()
	}
	return ""
}

// Result returns the form result
func (rf *ResponseForm) Result() ResponseFormResult {
	return rf.result
}

func (rf *ResponseForm) send() error {
	if rf.result.Kind == domain.ResponseForward {
		return rf.sessionService.SendForward(rf.result.To, rf.result.Text)
	}
	return rf.sessionService.SendReply(rf.result.Text)
}
