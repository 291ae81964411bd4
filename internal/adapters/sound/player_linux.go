//go:build linux

package sound

import "github.com/renato0307/inboxsim/internal/domain"

type linuxSound struct {
	cmd  string
	args []string
}

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) bool {
	var sounds []linuxSound

	switch eventType {
	case domain.SoundIncoming:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message-new-instant.oga"}},
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	case domain.SoundFinish:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	default:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, s := range sounds {
		if run(s.cmd, s.args...) {
			return true
		}
	}
	return false
}
