package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
	portsmocks "github.com/renato0307/inboxsim/internal/ports/mocks"
)

func TestShouldPlaySound(t *testing.T) {
	tests := []struct {
		eventType string
		expected  bool
	}{
		{domain.SoundAlert, true},
		{domain.SoundFinish, true},
		{domain.SoundIncoming, true},
		{"", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), true)
			assert.Equal(t, tt.expected, service.ShouldPlaySound(tt.eventType))
		})
	}
}

func TestShouldPlaySound_Disabled(t *testing.T) {
	service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), false)
	assert.False(t, service.ShouldPlaySound(domain.SoundIncoming))
}

func TestPlaySoundForEvent_DelegatesToPlayer(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent(domain.SoundFinish).Return(nil).Once()

	NewNotificationService(player, true).PlaySoundForEvent(domain.SoundFinish)
}

func TestPlaySoundForEvent_SwallowsPlayerErrors(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent(domain.SoundAlert).Return(errors.New("no audio device")).Once()

	assert.NotPanics(t, func() {
		NewNotificationService(player, true).PlaySoundForEvent(domain.SoundAlert)
	})
}

func TestPlaySoundForEvent_SkipsUnknownEvents(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)

	NewNotificationService(player, true).PlaySoundForEvent("something-else")
	player.AssertNotCalled(t, "PlaySoundForEvent", "something-else")
}

func TestPlaySound(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySound().Return(nil).Once()

	require.NoError(t, NewNotificationService(player, true).PlaySound())
}
