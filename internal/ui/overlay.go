package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dim style for background when a modal is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// compositeOverlay renders an overlay centered on top of a dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	for i, line := range bgLines {
		bgLines[i] = padRight(dimStyle.Render(ansi.Strip(line)), width)
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	leftPad := dimStyle.Render(strings.Repeat(" ", startX))
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := dimStyle.Render(strings.Repeat(" ", max(width-startX-lipgloss.Width(line), 0)))
		bgLines[y] = leftPad + line + rightPad
	}

	return strings.Join(bgLines, "\n")
}

// bottomOverlay replaces the last lines of the background with overlay, leaving the rest untouched
func bottomOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	startY := max(len(bgLines)-len(overlayLines), 0)
	for i, line := range overlayLines {
		if startY+i < len(bgLines) {
			bgLines[startY+i] = padRight(line, width)
		}
	}
	return strings.Join(bgLines, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
