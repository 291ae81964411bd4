package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/inboxsim/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding, skipping disabled ones
func renderBinding(binding key.Binding) string {
	if !binding.Enabled() {
		return ""
	}
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Inbox") + "\n"
	content += renderBinding(keys.Navigation.Up)
	content += renderBinding(keys.Navigation.Down)
	content += renderBinding(keys.Navigation.Open)
	content += renderBinding(keys.Navigation.ScrollUp)
	content += renderBinding(keys.Navigation.ScrollDown)

	content += "\n" + theme.HelpGroupStyle.Render("Email") + "\n"
	content += renderBinding(keys.Email.Reply)
	content += renderBinding(keys.Email.ReplyAll)
	content += renderBinding(keys.Email.Forward)
	content += renderBinding(keys.Email.Star)
	content += renderBinding(keys.Email.Unread)
	content += renderBinding(keys.Email.Delete)
	content += renderBinding(keys.Email.Report)
	content += renderBinding(keys.Email.Attachments)

	content += "\n" + theme.HelpGroupStyle.Render("Links") + "\n"
	content += renderBinding(keys.Links.Next)
	content += renderBinding(keys.Links.Prev)
	content += renderBinding(keys.Links.Follow)
	content += renderBinding(keys.Links.Release)

	content += "\n" + theme.HelpGroupStyle.Render("Session") + "\n"
	content += renderBinding(keys.Application.PrimaryTask)
	content += renderBinding(keys.Application.NextSession)
	content += renderBinding(keys.Application.Help)

	content += "\n" + theme.HelpGroupStyle.Render("Indicators") + "\n"
	content += renderShortcut("★", "starred")
	content += renderShortcut("bold", "unread")
	content += renderShortcut("📎", "has attachments")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" || key.Matches(msg, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
