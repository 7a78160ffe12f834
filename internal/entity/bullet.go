package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/world"
)

const (
	bulletW = 8
	bulletH = 4
)

// Bullet flies horizontally from the player's gun.
type Bullet struct {
	box       core.Rect
	vx        int
	travelled int
	maxRange  int
	spent     bool
}

func newBullet(p *Player, cfg config.PlayerConfig) *Bullet {
	b := &Bullet{
		vx:       p.facing * cfg.BulletSpeed,
		maxRange: cfg.BulletRange,
	}
	y := p.box.Y + p.box.H/3
	if p.facing > 0 {
		b.box = core.NewRect(p.box.Right(), y, bulletW, bulletH)
	} else {
		b.box = core.NewRect(p.box.X-bulletW, y, bulletW, bulletH)
	}
	return b
}

// Tick advances the bullet. It is spent on the first zombie or block it
// touches, or once it has flown its range.
func (b *Bullet) Tick(w *world.World) {
	if b.spent {
		return
	}
	b.box.X += b.vx
	b.travelled += core.Abs(b.vx)

	if h := w.HostileAt(b.box); h != nil {
		if z, ok := h.(interface{ Kill() }); ok {
			z.Kill()
		}
		b.spent = true
		return
	}
	if w.SolidAt(b.box) != nil || b.travelled >= b.maxRange {
		b.spent = true
	}
}

// Direction returns -1 or 1.
func (b *Bullet) Direction() int { return core.Sign(b.vx) }

func (b *Bullet) Rect() *core.Rect { return &b.box }
func (b *Bullet) Solid() bool      { return false }
func (b *Bullet) Kind() string     { return "bullet" }
func (b *Bullet) Alive() bool      { return !b.spent }
