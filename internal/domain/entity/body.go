package entity

// Body is an axis-aligned box with an integer position and velocity.
// Positions are in pixels, velocities in pixels per tick.
type Body struct {
	X, Y   int
	VX, VY int
	W, H   int
}

// Right returns the x-coordinate of the right edge
func (b *Body) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge
func (b *Body) Bottom() int {
	return b.Y + b.H
}

// Move applies the velocity one axis at a time and clamps the body inside
// an area of areaW x areaH anchored at the origin.
func (b *Body) Move(areaW, areaH int) {
	b.X += b.VX
	b.X = clampAxis(b.X, b.W, areaW)

	b.Y += b.VY
	b.Y = clampAxis(b.Y, b.H, areaH)
}

// clampAxis snaps pos so that [pos, pos+size] lies within [0, limit].
// When size exceeds limit the low edge wins and pos is 0.
func clampAxis(pos, size, limit int) int {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
