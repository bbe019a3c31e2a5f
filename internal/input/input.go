// Package input maps terminal key events to game actions.
package input

import "github.com/gdamore/tcell/v2"

// Action is a logical command produced by a key press.
type Action int

const (
	// ActionNone is any key the game does not react to.
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleFullscreen
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionQuit:
		return "quit"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for movement actions, and false otherwise.
func (a Action) Delta() (dx, dy int, ok bool) {
	switch a {
	case ActionMoveUp:
		return 0, -1, true
	case ActionMoveDown:
		return 0, 1, true
	case ActionMoveLeft:
		return -1, 0, true
	case ActionMoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// ActionFor maps a key event to an action.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit

	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return ActionToggleFullscreen
		}

	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
