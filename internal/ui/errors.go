package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 4
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth for a notice.
// Messages longer than maxErrorLines are cut and end with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	maxWidth = max(maxWidth, 10)

	words := strings.Fields(errorPrefix + err.Error())
	if len(words) == 1 {
		return errorPrefix + "unknown error"
	}

	var lines []string
	var line strings.Builder
	truncated := false
	for _, word := range words {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if !truncated && line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		if keep := maxWidth - len(truncationMark); len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}
	return strings.Join(lines, "\n")
}
