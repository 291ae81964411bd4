package domain

import (
	"regexp"
	"strings"
)

// invalidParticipantChars matches anything that should not reach a directory name
var invalidParticipantChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// consecutiveUnderscores matches two or more consecutive underscores
var consecutiveUnderscores = regexp.MustCompile(`_{2,}`)

// SanitizeParticipant turns a participant id into a safe directory name.
// Participant ids come from a CLI flag or an SSH user name and name the log directory,
// so path separators and leading dots are never kept. An empty result falls back to DefaultParticipant.
func SanitizeParticipant(name string) string {
	name = strings.TrimSpace(name)
	name = invalidParticipantChars.ReplaceAllString(name, "_")
	name = consecutiveUnderscores.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	name = strings.TrimRight(name, "_")
	if name == "" {
		return DefaultParticipant
	}
	return name
}
