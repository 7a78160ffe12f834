// Package entity implements the bodies that move through a level: the
// player, zombies, supply pickups and bullets.
package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/world"
)

// body is a falling rectangle that collides with the world's solid blocks.
type body struct {
	box      core.Rect
	vx, vy   int
	grounded bool
}

// move applies gravity and then resolves horizontal and vertical motion
// separately against solid blocks. It returns the horizontal distance
// actually travelled.
func (b *body) move(w *world.World, phys config.PhysicsConfig) int {
	b.vy = min(b.vy+phys.Gravity, phys.MaxFallSpeed)

	startX := b.box.X
	b.box.X += b.vx
	if blk := w.SolidAt(b.box); blk != nil {
		if b.vx > 0 {
			b.box.SetRight(blk.Box.X)
		} else if b.vx < 0 {
			b.box.X = blk.Box.Right()
		}
	}

	b.grounded = false
	b.box.Y += b.vy
	if blk := w.SolidAt(b.box); blk != nil {
		if b.vy > 0 {
			b.box.SetBottom(blk.Box.Y)
			b.grounded = true
		} else if b.vy < 0 {
			b.box.Y = blk.Box.Bottom()
		}
		b.vy = 0
	}
	return b.box.X - startX
}

// fellOut reports whether the body dropped below the visible area.
func (b *body) fellOut(w *world.World) bool {
	_, h := w.ScreenSize()
	return b.box.Y > h
}
