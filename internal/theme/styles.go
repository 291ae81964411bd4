package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Inbox list styles
var (
	RowReadStyle = lipgloss.NewStyle().
			Foreground(ColorRead)

	RowSelectedStyle = lipgloss.NewStyle().
				Background(ColorSelected)

	RowTimeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	RowUnreadStyle = lipgloss.NewStyle().
			Foreground(ColorUnread).
			Bold(true)

	StarStyle = lipgloss.NewStyle().
			Foreground(ColorStarred)
)

// Status bar styles
var (
	CountdownStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	CountdownWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)

	TelemetryOffStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	UnreadCountStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// Reading pane styles
var (
	AttachmentStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HoveredLinkStyle = lipgloss.NewStyle().
				Foreground(ColorLink).
				Underline(true).
				Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink)

	PaneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorMuted).
			PaddingLeft(1)

	RecipientStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SenderStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubjectStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	URLBarStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Background(ColorSelected).
			Padding(0, 1)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Modal styles
var (
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorToast).
			Padding(0, 1)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)
