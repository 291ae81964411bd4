package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/inboxsim/internal/domain"
)

// AttachmentForm lets the participant pick one of the open email's attachments
type AttachmentForm struct {
	Completed bool
	cancelled bool
	choice    string
	form      *huh.Form
}

// NewAttachmentForm creates a picker over the attachments
func NewAttachmentForm(attachments []domain.Attachment) *AttachmentForm {
	af := &AttachmentForm{}
	options := make([]huh.Option[string], 0, len(attachments))
	for _, a := range attachments {
		options = append(options, huh.NewOption(a.Name, a.Name))
	}

	af.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Attachments").
				Options(options...).
				Value(&af.choice),
		),
	)
	return af
}

func (af *AttachmentForm) Init() tea.Cmd {
	return af.form.Init()
}

func (af *AttachmentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		af.cancelled = true
		af.Completed = true
		return af, nil
	}

	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	switch af.form.State {
	case huh.StateCompleted:
		af.Completed = true
		return af, nil
	case huh.StateAborted:
		af.cancelled = true
		af.Completed = true
		return af, nil
	}
	return af, cmd
}

func (af *AttachmentForm) View() string {
	return af.form.View()
}

// Choice returns the picked attachment name; ok is false when the picker was closed
func (af *AttachmentForm) Choice() (string, bool) {
	return af.choice, !af.cancelled && af.choice != ""
}
