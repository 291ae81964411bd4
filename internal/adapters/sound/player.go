package sound

import (
	"fmt"
	"io"
	"os"
)

// Player implements ports.SoundPlayer
type Player struct {
	bell   io.Writer
	system bool
}

// NewPlayer creates a player that uses the host's sound commands, ringing the terminal bell as fallback
func NewPlayer() *Player {
	return &Player{bell: os.Stdout, system: true}
}

// NewBellPlayer creates a player that only rings the bell on w.
// Used for remote participants, where host sounds would play on the wrong machine.
func NewBellPlayer(w io.Writer) *Player {
	return &Player{bell: w}
}

// PlaySound plays the default notification sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent("")
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if p.system && playForEvent(eventType) {
		return nil
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

// start runs a sound command without waiting; reports whether it launched
func start(name string, args ...string) bool {
	return command(name, args...).Start() == nil
}

// run runs a sound command to completion; reports whether it succeeded
func run(name string, args ...string) bool {
	return command(name, args...).Run() == nil
}
