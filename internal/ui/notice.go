package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/inboxsim/internal/theme"
)

// Notice is a blocking message box closed with enter or esc
type Notice struct {
	Completed bool
	fatal     bool
	text      string
	width     int
}

var noticeClose = key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "OK"))

// NewNotice creates an informational notice
func NewNotice(text string) *Notice {
	return &Notice{text: text, width: 60}
}

// NewFatalNotice creates a notice for an error that ends the run
func NewFatalNotice(text string) *Notice {
	return &Notice{fatal: true, text: text, width: 60}
}

func (n *Notice) Init() tea.Cmd {
	return nil
}

func (n *Notice) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = min(60, max(msg.Width-8, 20))
	case tea.KeyMsg:
		if key.Matches(msg, noticeClose) {
			n.Completed = true
		}
	}
	return n, nil
}

func (n *Notice) View() string {
	text := lipgloss.NewStyle().Width(n.width).Render(n.text)
	if n.fatal {
		text = theme.ErrorTextStyle.Width(n.width).Render(n.text)
	}
	footer := theme.HelpStyle.Render("Press enter to continue")
	return theme.ModalStyle.Render(text + "\n" + footer)
}
