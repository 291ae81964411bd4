package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/theme"
)

// ReadingPane shows the opened email. Links are focused one at a time with the keyboard;
// the focused link counts as hovered and its address is shown in the URL bar.
type ReadingPane struct {
	body      domain.Body
	entry     *domain.Entry
	height    int
	linkIndex int // Focused link, -1 when none
	styles    categoryStyles
	viewport  viewport.Model
	width     int
}

// NewReadingPane creates an empty reading pane
func NewReadingPane() *ReadingPane {
	return &ReadingPane{
		linkIndex: -1,
		styles:    defaultCategoryStyles(),
		viewport:  viewport.New(0, 0),
	}
}

// SetSize resizes the pane; the URL bar takes one line
func (p *ReadingPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-2, 1)
	p.viewport.Height = max(height-3, 1)
	p.refresh()
}

// Show displays an email, resetting scroll and link focus
func (p *ReadingPane) Show(entry domain.Entry, body domain.Body, styles categoryStyles) {
	p.entry = &entry
	p.body = body
	p.styles = styles
	p.linkIndex = -1
	p.refresh()
	p.viewport.GotoTop()
}

// Clear empties the pane
func (p *ReadingPane) Clear() {
	p.entry = nil
	p.body = domain.Body{}
	p.linkIndex = -1
	p.viewport.SetContent("")
}

// Entry returns the shown email, if any
func (p *ReadingPane) Entry() (domain.Entry, bool) {
	if p.entry == nil {
		return domain.Entry{}, false
	}
	return *p.entry, true
}

// NextLink focuses the next link, wrapping around, and returns its address
func (p *ReadingPane) NextLink() (string, bool) {
	return p.moveLink(1)
}

// PrevLink focuses the previous link, wrapping around, and returns its address
func (p *ReadingPane) PrevLink() (string, bool) {
	return p.moveLink(-1)
}

// ReleaseLink drops link focus. It reports whether a link was focused.
func (p *ReadingPane) ReleaseLink() bool {
	if p.linkIndex < 0 {
		return false
	}
	p.linkIndex = -1
	p.refresh()
	return true
}

// FocusedLink returns the focused link, if any
func (p *ReadingPane) FocusedLink() (domain.Link, bool) {
	if p.linkIndex < 0 || p.linkIndex >= len(p.body.Links) {
		return domain.Link{}, false
	}
	return p.body.Links[p.linkIndex], true
}

func (p *ReadingPane) moveLink(step int) (string, bool) {
	n := len(p.body.Links)
	if p.entry == nil || n == 0 {
		return "", false
	}
	if p.linkIndex < 0 {
		if step > 0 {
			p.linkIndex = 0
		} else {
			p.linkIndex = n - 1
		}
	} else {
		p.linkIndex = (p.linkIndex + step + n) % n
	}
	p.refresh()
	return p.body.Links[p.linkIndex].URL, true
}

// Update scrolls the body
func (p *ReadingPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *ReadingPane) refresh() {
	if p.entry == nil {
		return
	}
	offset := p.viewport.YOffset
	p.viewport.SetContent(p.render())
	p.viewport.SetYOffset(offset)
}

func (p *ReadingPane) render() string {
	width := max(p.viewport.Width, 10)
	email := p.entry.Email
	var b strings.Builder

	subject := p.styles.header.Inherit(theme.SubjectStyle).Render(email.Title)
	if p.styles.headerIcon != "" {
		subject = p.styles.headerIcon + " " + subject
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(subject) + "\n")

	sender := p.styles.sender.Inherit(theme.SenderStyle).Render(email.Name)
	if email.From != "" {
		sender += " " + theme.RecipientStyle.Render("<"+email.From+">")
	}
	b.WriteString(p.styles.senderIcon + " " + sender + "\n")
	if len(email.Recipients()) > 0 {
		b.WriteString(theme.RecipientStyle.Render("To: "+strings.Join(email.Recipients(), ", ")) + "\n")
	}
	if p.entry.DisplayTime != "" && p.entry.DisplayTime != domain.TimestampUnset {
		b.WriteString(theme.RowTimeStyle.Render(p.entry.DisplayTime) + "\n")
	}

	if len(email.Attachments) > 0 {
		names := make([]string, len(email.Attachments))
		for i, a := range email.Attachments {
			names[i] = a.Name
		}
		b.WriteString(theme.AttachmentStyle.Render("📎 "+strings.Join(names, "  ")) + "\n")
	}

	b.WriteString(strings.Repeat("─", width) + "\n\n")
	b.WriteString(p.styles.body.Width(width).Render(p.body.Text))

	if len(p.body.Links) > 0 {
		b.WriteString("\n\n")
		for i, link := range p.body.Links {
			label := link.Text
			if label == "" {
				label = link.URL
			}
			line := fmt.Sprintf("[%d] %s", i+1, label)
			if i == p.linkIndex {
				b.WriteString(theme.HoveredLinkStyle.Render(line) + "\n")
			} else {
				b.WriteString(theme.LinkStyle.Render(line) + "\n")
			}
		}
	}
	return b.String()
}

// View renders the body with the URL bar underneath
func (p *ReadingPane) View() string {
	var content string
	if p.entry == nil {
		content = lipgloss.Place(p.viewport.Width, p.viewport.Height, lipgloss.Center, lipgloss.Center,
			theme.HelpStyle.Render("Select an email to read it"))
	} else {
		content = p.viewport.View()
	}

	url := ""
	if link, ok := p.FocusedLink(); ok {
		url = link.URL
	}
	bar := theme.URLBarStyle.Width(max(p.width-2, 1)).Render(truncate(url, max(p.width-4, 1)))

	return theme.PaneBorderStyle.Width(max(p.width-2, 1)).Render(content) + "\n" + bar
}
