package services

import (
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// NotificationService plays the audible cues of a session
type NotificationService struct {
	enabled     bool
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(soundPlayer ports.SoundPlayer, enabled bool) *NotificationService {
	return &NotificationService{
		enabled:     enabled,
		soundPlayer: soundPlayer,
	}
}

// ShouldPlaySound determines if a sound should be played for the event type
func (s *NotificationService) ShouldPlaySound(eventType string) bool {
	if !s.enabled || s.soundPlayer == nil {
		return false
	}
	switch eventType {
	case domain.SoundAlert, domain.SoundFinish, domain.SoundIncoming:
		return true
	default:
		return false
	}
}

// PlaySoundForEvent plays a sound for a specific event type.
// Failures are logged and swallowed: a missing sound never interrupts a session.
func (s *NotificationService) PlaySoundForEvent(eventType string) {
	if !s.ShouldPlaySound(eventType) {
		return
	}
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	if err := s.soundPlayer.PlaySoundForEvent(eventType); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", eventType, "error", err)
	}
}

// PlaySound plays the default notification sound
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	return s.soundPlayer.PlaySound()
}
