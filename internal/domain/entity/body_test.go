package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody_Edges(t *testing.T) {
	b := Body{X: 10, Y: 20, W: 16, H: 24}

	assert.Equal(t, 26, b.Right())
	assert.Equal(t, 44, b.Bottom())
}

func TestBody_Move(t *testing.T) {
	tests := []struct {
		name  string
		body  Body
		areaW int
		areaH int
		wantX int
		wantY int
	}{
		{
			name:  "free movement",
			body:  Body{X: 100, Y: 100, VX: 10, VY: -10, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 110,
			wantY: 90,
		},
		{
			name:  "left edge snaps to zero",
			body:  Body{X: 5, Y: 100, VX: -10, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 0,
			wantY: 100,
		},
		{
			name:  "right edge flush with boundary",
			body:  Body{X: 620, Y: 100, VX: 10, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 624,
			wantY: 100,
		},
		{
			name:  "top edge snaps to zero",
			body:  Body{X: 100, Y: 3, VY: -10, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 100,
			wantY: 0,
		},
		{
			name:  "bottom edge flush with boundary",
			body:  Body{X: 100, Y: 460, VY: 10, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 100,
			wantY: 464,
		},
		{
			name:  "velocity larger than area",
			body:  Body{X: 100, Y: 100, VX: 5000, VY: -5000, W: 16, H: 16},
			areaW: 640,
			areaH: 480,
			wantX: 624,
			wantY: 0,
		},
		{
			name:  "area narrower than body pins to origin",
			body:  Body{X: 0, Y: 0, VX: 10, VY: 10, W: 32, H: 32},
			areaW: 20,
			areaH: 20,
			wantX: 0,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			b.Move(tt.areaW, tt.areaH)

			assert.Equal(t, tt.wantX, b.X)
			assert.Equal(t, tt.wantY, b.Y)
		})
	}
}

func TestBody_Move_ClampInvariant(t *testing.T) {
	const areaW, areaH = 640, 480
	velocities := []int{-100000, -641, -480, -11, -1, 0, 1, 7, 479, 640, 100000}
	starts := []int{0, 1, 300, 463, 624}

	for _, vx := range velocities {
		for _, vy := range velocities {
			for _, start := range starts {
				b := Body{X: start, Y: start % 464, VX: vx, VY: vy, W: 16, H: 16}
				b.Move(areaW, areaH)

				assert.GreaterOrEqual(t, b.X, 0)
				assert.LessOrEqual(t, b.X, areaW-b.W)
				assert.GreaterOrEqual(t, b.Y, 0)
				assert.LessOrEqual(t, b.Y, areaH-b.H)
			}
		}
	}
}
