package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "33"  // Blue - mail client name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
	ColorSelected  Color = "237" // Dark gray - selected row background
)

// Email state colors
const (
	ColorRead    Color = "250" // Default text
	ColorStarred Color = "214" // Orange
	ColorUnread  Color = "255" // White - bold rows
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorLink      Color = "39"  // Blue
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "226" // Yellow
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorToast     Color = "24"  // Dark blue toast background
)
