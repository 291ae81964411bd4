//go:build !darwin && !linux && !windows

package sound

// playForEvent has no host sounds on unsupported platforms
func playForEvent(_ string) bool {
	return false
}
