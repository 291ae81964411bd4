//go:build windows

package sound

import "github.com/renato0307/inboxsim/internal/domain"

// playForEvent plays sounds on Windows using PowerShell
func playForEvent(eventType string) bool {
	var script string

	switch eventType {
	case domain.SoundIncoming:
		script = "[System.Media.SystemSounds]::Asterisk.Play()"
	case domain.SoundFinish:
		script = "[System.Media.SystemSounds]::Hand.Play()"
	default:
		script = "[System.Media.SystemSounds]::Exclamation.Play()"
	}

	return start("powershell", "-NoProfile", "-Command", script)
}
