package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindIntro, "Intro"},
		{KindMenu, "Menu"},
		{KindPlaying, "Playing"},
		{KindPaused, "Paused"},
		{KindOptions, "Options"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseUninitialized, "Uninitialized"},
		{PhaseActive, "Active"},
		{PhasePausedBelowTop, "PausedBelowTop"},
		{PhaseCleanedUp, "CleanedUp"},
		{PhaseDormant, "Dormant"},
		{Phase(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseZeroValue(t *testing.T) {
	// A screen nobody has pushed yet reads as uninitialized
	var p Phase
	assert.Equal(t, PhaseUninitialized, p)
}
