// Package ui implements the hoverable button control and the menu container
// that lays buttons out in a column.
package ui

import (
	"image"

	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
)

// Default button dimensions in pixels.
const (
	DefaultButtonWidth  = 200
	DefaultButtonHeight = 50
)

// Button is a rectangular labelled control. Its texture is a vertical sprite
// sheet: the normal frame on top, the hover frame below it.
type Button struct {
	X, Y    int
	W, H    int
	Label   string
	Action  Action
	Texture texture.Handle

	hover bool
	clips [2]image.Rectangle
}

// NewButton creates a button of size w x h at the origin.
func NewButton(label string, action Action, tex texture.Handle, w, h int) *Button {
	if w <= 0 {
		w = DefaultButtonWidth
	}
	if h <= 0 {
		h = DefaultButtonHeight
	}
	b := &Button{
		W:       w,
		H:       h,
		Label:   label,
		Action:  action,
		Texture: tex,
	}
	b.clips[0] = image.Rect(0, 0, w, h)
	b.clips[1] = image.Rect(0, h, w, 2*h)
	return b
}

// SetPos moves the button's top-left corner
func (b *Button) SetPos(x, y int) {
	b.X = x
	b.Y = y
}

// Contains reports whether the point lies inside the rectangle. All four
// edges are inclusive.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// HandleEvent recomputes the hover flag on mouse motion.
func (b *Button) HandleEvent(ev event.Event) {
	if m, ok := ev.(event.MouseMotion); ok {
		b.hover = b.Contains(m.X, m.Y)
	}
}

// Hovered reports whether the last observed cursor position was inside.
func (b *Button) Hovered() bool {
	return b.hover
}

// Clip returns the sprite sheet region for the current hover state.
func (b *Button) Clip() image.Rectangle {
	if b.hover {
		return b.clips[1]
	}
	return b.clips[0]
}
