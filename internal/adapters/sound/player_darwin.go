//go:build darwin

package sound

import "github.com/renato0307/inboxsim/internal/domain"

// playForEvent plays sounds on macOS using afplay
func playForEvent(eventType string) bool {
	var soundFiles []string

	switch eventType {
	case domain.SoundIncoming:
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case domain.SoundFinish:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Funk.aiff"}
	}

	for _, f := range soundFiles {
		if start("afplay", f) {
			return true
		}
	}
	return false
}
