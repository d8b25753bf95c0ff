// Package replay records per-tick input event batches and plays them back.
package replay

import (
	"fmt"

	"github.com/younwookim/playertest/internal/domain/event"
)

// Version is written into every recording
const Version = "2.0"

// Event type tags used in recordings
const (
	tagQuit        = "quit"
	tagKeyDown     = "kd"
	tagKeyUp       = "ku"
	tagMouseMotion = "mm"
	tagMouseDown   = "md"
	tagResize      = "rs"
	tagFocus       = "fc"
)

// EventRecord is the JSON form of a single event
type EventRecord struct {
	T  string `json:"t"`            // Type tag
	K  int    `json:"k,omitempty"`  // Key
	R  bool   `json:"r,omitempty"`  // Repeat
	B  int    `json:"b,omitempty"`  // Mouse button
	X  int    `json:"x,omitempty"`  // Cursor X or width
	Y  int    `json:"y,omitempty"`  // Cursor Y or height
	Fc bool   `json:"fc,omitempty"` // Focused
}

// FrameEvents records the events polled on tick F
type FrameEvents struct {
	F      int           `json:"f"`
	Events []EventRecord `json:"events"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string        `json:"version"`
	StartTime string        `json:"startTime"`
	Frames    []FrameEvents `json:"frames"`
}

// Encode converts an event into its record form.
func Encode(ev event.Event) EventRecord {
	switch e := ev.(type) {
	case event.Quit:
		return EventRecord{T: tagQuit}
	case event.KeyDown:
		return EventRecord{T: tagKeyDown, K: int(e.Key), R: e.Repeat}
	case event.KeyUp:
		return EventRecord{T: tagKeyUp, K: int(e.Key), R: e.Repeat}
	case event.MouseMotion:
		return EventRecord{T: tagMouseMotion, X: e.X, Y: e.Y}
	case event.MouseButtonDown:
		return EventRecord{T: tagMouseDown, B: int(e.Button), X: e.X, Y: e.Y}
	case event.WindowResized:
		return EventRecord{T: tagResize, X: e.W, Y: e.H}
	case event.FocusChanged:
		return EventRecord{T: tagFocus, Fc: e.Focused}
	default:
		return EventRecord{T: fmt.Sprintf("unknown:%T", ev)}
	}
}

// Decode converts a record back into an event.
func (r EventRecord) Decode() (event.Event, error) {
	switch r.T {
	case tagQuit:
		return event.Quit{}, nil
	case tagKeyDown:
		return event.KeyDown{Key: event.Key(r.K), Repeat: r.R}, nil
	case tagKeyUp:
		return event.KeyUp{Key: event.Key(r.K), Repeat: r.R}, nil
	case tagMouseMotion:
		return event.MouseMotion{X: r.X, Y: r.Y}, nil
	case tagMouseDown:
		return event.MouseButtonDown{Button: event.MouseButton(r.B), X: r.X, Y: r.Y}, nil
	case tagResize:
		return event.WindowResized{W: r.X, H: r.Y}, nil
	case tagFocus:
		return event.FocusChanged{Focused: r.Fc}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", r.T)
	}
}
