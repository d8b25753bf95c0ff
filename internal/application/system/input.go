// Package system turns ebiten's polled input state into event batches.
package system

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/infrastructure/config"
)

// EventSource yields the input events of one tick.
type EventSource interface {
	Poll() []event.Event
}

var keyMap = map[ebiten.Key]event.Key{
	ebiten.KeyArrowUp:     event.KeyArrowUp,
	ebiten.KeyArrowDown:   event.KeyArrowDown,
	ebiten.KeyArrowLeft:   event.KeyArrowLeft,
	ebiten.KeyArrowRight:  event.KeyArrowRight,
	ebiten.KeyEscape:      event.KeyEscape,
	ebiten.KeyEnter:       event.KeyEnter,
	ebiten.KeyNumpadEnter: event.KeyEnter,
	ebiten.KeySpace:       event.KeySpace,
	ebiten.KeyW:           event.KeyW,
	ebiten.KeyA:           event.KeyA,
	ebiten.KeyS:           event.KeyS,
	ebiten.KeyD:           event.KeyD,
	ebiten.KeyF3:          event.KeyF3,
}

var mouseMap = map[ebiten.MouseButton]event.MouseButton{
	ebiten.MouseButtonLeft:   event.MouseLeft,
	ebiten.MouseButtonMiddle: event.MouseMiddle,
	ebiten.MouseButtonRight:  event.MouseRight,
}

// mouseButtons fixes the order presses are polled in
var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Snapshot is the raw input state of one tick.
type Snapshot struct {
	CloseRequested bool
	Focused        bool
	JustPressed    []ebiten.Key
	JustReleased   []ebiten.Key
	// Held maps every pressed key to its press duration in ticks
	Held         map[ebiten.Key]int
	CursorX      int
	CursorY      int
	MousePressed []ebiten.MouseButton
}

// InputSystem polls ebiten and emits events
type InputSystem struct {
	config *config.InputConfig

	cursorKnown  bool
	lastX, lastY int
	focused      bool

	keyBuf []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.InputConfig) *InputSystem {
	return &InputSystem{config: cfg, focused: true}
}

// Poll reads the current ebiten input state and translates it.
func (s *InputSystem) Poll() []event.Event {
	snap := Snapshot{
		CloseRequested: ebiten.IsWindowBeingClosed(),
		Focused:        ebiten.IsFocused(),
		JustPressed:    inpututil.AppendJustPressedKeys(nil),
		JustReleased:   inpututil.AppendJustReleasedKeys(nil),
		Held:           make(map[ebiten.Key]int),
	}

	s.keyBuf = inpututil.AppendPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		snap.Held[k] = inpututil.KeyPressDuration(k)
	}

	snap.CursorX, snap.CursorY = ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			snap.MousePressed = append(snap.MousePressed, b)
		}
	}

	return s.Translate(snap)
}

// Translate converts a snapshot into events. Window events come first, then
// mouse motion and presses, then key edges and synthetic repeats. Repeats
// follow ascending ebiten key order so a batch is reproducible.
func (s *InputSystem) Translate(snap Snapshot) []event.Event {
	var events []event.Event

	if snap.CloseRequested {
		events = append(events, event.Quit{})
	}

	if snap.Focused != s.focused {
		s.focused = snap.Focused
		events = append(events, event.FocusChanged{Focused: snap.Focused})
	}

	if !s.cursorKnown || snap.CursorX != s.lastX || snap.CursorY != s.lastY {
		s.cursorKnown = true
		s.lastX, s.lastY = snap.CursorX, snap.CursorY
		events = append(events, event.MouseMotion{X: snap.CursorX, Y: snap.CursorY})
	}

	for _, b := range snap.MousePressed {
		if mb, ok := mouseMap[b]; ok {
			events = append(events, event.MouseButtonDown{Button: mb, X: snap.CursorX, Y: snap.CursorY})
		}
	}

	for _, k := range snap.JustPressed {
		if key, ok := keyMap[k]; ok {
			events = append(events, event.KeyDown{Key: key})
		}
	}

	for _, k := range slices.Sorted(maps.Keys(snap.Held)) {
		key, ok := keyMap[k]
		if !ok || !s.repeats(snap.Held[k]) {
			continue
		}
		events = append(events, event.KeyDown{Key: key, Repeat: true})
	}

	for _, k := range snap.JustReleased {
		if key, ok := keyMap[k]; ok {
			events = append(events, event.KeyUp{Key: key})
		}
	}

	return events
}

// repeats reports whether a key held for d ticks auto-repeats this tick.
func (s *InputSystem) repeats(d int) bool {
	delay, interval := s.config.RepeatDelay, s.config.RepeatInterval
	if d <= delay || interval <= 0 {
		return false
	}
	return (d-delay)%interval == 0
}
