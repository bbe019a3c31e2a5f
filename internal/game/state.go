// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default mode where the player explores the map.
	StatePlaying State = iota
	// StateQuit means the player asked to leave; the loop stops after this frame.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
