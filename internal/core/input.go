package core

// Key is the single semantic input a host hands to a game each frame.
// Physical keys are mapped by the platform; anything it does not recognise
// arrives as KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyFlap     // Space - flap (flappy) or jump (log jump)
	KeyPlay     // P - start or restart a run from the menu / end screen
	KeyQuit     // Q - ask the host to terminate
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyFlap:
		return "Flap"
	case KeyPlay:
		return "Play"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
