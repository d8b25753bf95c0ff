// Package entity contains the movable game entities.
package entity

import (
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
)

// DefaultVelocity is the per-key speed increment in pixels per tick.
const DefaultVelocity = 10

// DefaultSize is used when the player texture is absent.
const DefaultSize = 16

// Player is the sprite steered with the arrow keys.
type Player struct {
	Body

	// Velocity is the increment applied per directional key edge.
	Velocity int
	// Texture is a non-owning reference into the texture cache.
	Texture texture.Handle

	held map[event.Key]bool
}

// NewPlayer creates a player at the origin with the given texture and size.
// Non-positive sizes fall back to DefaultSize, a non-positive velocity to
// DefaultVelocity.
func NewPlayer(tex texture.Handle, w, h, velocity int) *Player {
	if w <= 0 {
		w = DefaultSize
	}
	if h <= 0 {
		h = DefaultSize
	}
	if velocity <= 0 {
		velocity = DefaultVelocity
	}
	return &Player{
		Body:     Body{W: w, H: h},
		Velocity: velocity,
		Texture:  tex,
		held:     make(map[event.Key]bool),
	}
}

// HandleEvent adjusts velocity on directional key edges. Auto-repeat events
// are ignored so a held key contributes its increment exactly once, and two
// held keys on different axes combine into diagonal movement. A release
// without a matching press is ignored.
func (p *Player) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.KeyDown:
		if e.Repeat || p.held[e.Key] {
			return
		}
		if p.applyKey(e.Key, 1) {
			p.held[e.Key] = true
		}
	case event.KeyUp:
		if e.Repeat || !p.held[e.Key] {
			return
		}
		p.applyKey(e.Key, -1)
		delete(p.held, e.Key)
	}
}

// applyKey adds sign times the key's velocity contribution. It reports
// whether key is a direction key.
func (p *Player) applyKey(key event.Key, sign int) bool {
	switch key {
	case event.KeyArrowUp:
		p.VY -= sign * p.Velocity
	case event.KeyArrowDown:
		p.VY += sign * p.Velocity
	case event.KeyArrowLeft:
		p.VX -= sign * p.Velocity
	case event.KeyArrowRight:
		p.VX += sign * p.Velocity
	default:
		return false
	}
	return true
}

// Release forgets every held key and stops the player. Key releases that
// arrive afterwards are ignored.
func (p *Player) Release() {
	clear(p.held)
	p.VX, p.VY = 0, 0
}

// Update moves the player and keeps it inside the renderable area.
func (p *Player) Update(areaW, areaH int) {
	p.Move(areaW, areaH)
}

// SetPos places the player, clamped to the area.
func (p *Player) SetPos(x, y, areaW, areaH int) {
	p.X = clampAxis(x, p.W, areaW)
	p.Y = clampAxis(y, p.H, areaH)
}
