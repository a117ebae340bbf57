package core

// Intent represents a semantic game input, abstracted from physical key
// presses. The platform maps keyboard events to intents; the game core
// never sees key codes.
type Intent int

const (
	IntentNone  Intent = iota
	IntentUp           // W, Up arrow
	IntentDown         // S, Down arrow
	IntentLeft         // A, Left arrow
	IntentRight        // D, Right arrow
	IntentPause        // Space, P - pause/resume
	IntentStart        // Enter - start a new run
	IntentReset        // R - discard the finished run
	IntentQuit         // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentPause:
		return "Pause"
	case IntentStart:
		return "Start"
	case IntentReset:
		return "Reset"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
