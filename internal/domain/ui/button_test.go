package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
)

func TestNewButton(t *testing.T) {
	b := NewButton("Start", ActionStart, texture.Handle(2), 0, 0)

	assert.Equal(t, DefaultButtonWidth, b.W)
	assert.Equal(t, DefaultButtonHeight, b.H)
	assert.Equal(t, "Start", b.Label)
	assert.Equal(t, ActionStart, b.Action)
	assert.False(t, b.Hovered())
	assert.Equal(t, image.Rect(0, 0, 200, 50), b.Clip())
}

func TestButton_Hover(t *testing.T) {
	b := NewButton("Quit", ActionQuit, texture.None, 200, 50)
	b.SetPos(100, 50)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 100, 50, true},
		{"top-right corner", 300, 50, true},
		{"bottom-right corner", 300, 100, true},
		{"centre", 200, 75, true},
		{"one past right edge", 301, 50, false},
		{"one before left edge", 99, 50, false},
		{"above", 150, 49, false},
		{"below", 150, 101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.HandleEvent(event.MouseMotion{X: tt.x, Y: tt.y})
			assert.Equal(t, tt.want, b.Hovered())
		})
	}
}

func TestButton_ClipFollowsHover(t *testing.T) {
	b := NewButton("Resume", ActionResume, texture.None, 200, 50)

	b.HandleEvent(event.MouseMotion{X: 10, Y: 10})
	assert.Equal(t, image.Rect(0, 50, 200, 100), b.Clip())

	b.HandleEvent(event.MouseMotion{X: 500, Y: 500})
	assert.Equal(t, image.Rect(0, 0, 200, 50), b.Clip())
}

func TestButton_IgnoresNonMotion(t *testing.T) {
	b := NewButton("Quit", ActionQuit, texture.None, 200, 50)
	b.HandleEvent(event.MouseMotion{X: 10, Y: 10})

	b.HandleEvent(event.KeyDown{Key: event.KeyEnter})
	b.HandleEvent(event.MouseButtonDown{Button: event.MouseLeft, X: 999, Y: 999})

	assert.True(t, b.Hovered(), "only motion recomputes hover")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Start", ActionStart.String())
	assert.Equal(t, "MainMenu", ActionMainMenu.String())
	assert.Equal(t, "ToggleFPS", ActionToggleFPS.String())
	assert.Equal(t, "Unknown", Action(42).String())
}
