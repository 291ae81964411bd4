package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/theme"
)

// EmailItem implements list.Item for one inbox entry
type EmailItem struct {
	Entry  domain.Entry
	Opened bool // The entry is the one shown in the reading pane
}

// FilterValue implements list.Item
func (i EmailItem) FilterValue() string {
	return i.Entry.Email.Name + " " + i.Entry.Email.Title
}

// EmailDelegate renders inbox rows: sender and time on the first line, subject on the second
type EmailDelegate struct {
	showStar bool
}

// Height implements list.ItemDelegate
func (d EmailDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d EmailDelegate) Spacing() int {
	return 1
}

// Update implements list.ItemDelegate
func (d EmailDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d EmailDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(EmailItem)
	if !ok {
		return
	}

	width := max(m.Width()-2, 10)
	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	textStyle := theme.RowReadStyle
	if !item.Entry.Read {
		textStyle = theme.RowUnreadStyle
	}

	marker := " "
	if d.showStar && item.Entry.Starred {
		marker = theme.StarStyle.Render("★")
	}

	timeLabel := ""
	if item.Entry.DisplayTime != domain.TimestampUnset {
		timeLabel = item.Entry.DisplayTime
	}
	if len(item.Entry.Email.Attachments) > 0 {
		timeLabel = "📎 " + timeLabel
	}
	timeLabel = theme.RowTimeStyle.Render(timeLabel)

	senderWidth := max(width-lipgloss.Width(timeLabel)-4, 1)
	sender := textStyle.Render(truncate(item.Entry.Email.Name, senderWidth))
	gap := max(width-4-lipgloss.Width(sender)-lipgloss.Width(timeLabel), 1)
	line1 := fmt.Sprintf("%s %s %s%s%s", cursor, marker, sender, strings.Repeat(" ", gap), timeLabel)
	line2 := "    " + textStyle.Render(truncate(item.Entry.Email.Title, width-4))

	if item.Opened {
		line1 = theme.RowSelectedStyle.Render(padRight(line1, width))
		line2 = theme.RowSelectedStyle.Render(padRight(line2, width))
	}

	fmt.Fprint(w, line1+"\n"+line2)
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// newInboxList creates the email list without the built-in chrome the model renders itself
func newInboxList(showStar bool) list.Model {
	l := list.New(nil, EmailDelegate{showStar: showStar}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// emailItems converts inbox entries to list items, flagging the opened one
func emailItems(inbox *domain.Inbox) []list.Item {
	current, hasCurrent := inbox.Current()
	entries := inbox.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = EmailItem{
			Entry:  e,
			Opened: hasCurrent && e.Email.ID == current.Email.ID,
		}
	}
	return items
}
