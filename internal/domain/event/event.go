// Package event defines the input events a scene receives each frame.
//
// The game loop translates the windowing backend's polled state into these
// values so that scenes, controls and entities never talk to the backend
// directly. This also makes every handler testable with synthetic events.
package event

// Event is a single input or window event.
type Event interface {
	isEvent()
}

// Key identifies a keyboard key (subset used by the game).
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
	KeyEnter
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF3
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyF3:
		return "F3"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// Quit is sent when the user asked to close the window.
type Quit struct{}

func (Quit) isEvent() {}

// KeyDown is sent when a key goes down. Repeat is true for auto-repeat
// events generated while the key is held.
type KeyDown struct {
	Key    Key
	Repeat bool
}

func (KeyDown) isEvent() {}

// KeyUp is sent when a key is released.
type KeyUp struct {
	Key    Key
	Repeat bool
}

func (KeyUp) isEvent() {}

// MouseMotion carries the new pointer position.
type MouseMotion struct {
	X, Y int
}

func (MouseMotion) isEvent() {}

// MouseButtonDown is sent when a mouse button is pressed at (X, Y).
type MouseButtonDown struct {
	Button MouseButton
	X, Y   int
}

func (MouseButtonDown) isEvent() {}

// WindowResized carries the new renderable size.
type WindowResized struct {
	W, H int
}

func (WindowResized) isEvent() {}

// FocusChanged is sent when the window gains or loses keyboard focus.
type FocusChanged struct {
	Focused bool
}

func (FocusChanged) isEvent() {}

// IsWindowEvent reports whether ev concerns the window itself rather than
// user input. Window events are also forwarded to the renderer.
func IsWindowEvent(ev Event) bool {
	switch ev.(type) {
	case WindowResized, FocusChanged:
		return true
	}
	return false
}
