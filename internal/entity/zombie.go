package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/world"
)

// Zombie falls in from the top of the screen and shambles toward the
// player, hopping up single steps and biting on contact.
type Zombie struct {
	body
	cfg      config.ZombieConfig
	phys     config.PhysicsConfig
	cooldown int
	dead     bool
}

// NewZombie creates a zombie with its top-left corner at (x, y).
func NewZombie(x, y int, cfg config.ZombieConfig, phys config.PhysicsConfig) *Zombie {
	z := &Zombie{cfg: cfg, phys: phys}
	z.box = core.NewRect(x, y, cfg.Width, cfg.Height)
	return z
}

// Tick walks toward the player and attacks when touching it.
func (z *Zombie) Tick(w *world.World) {
	if z.dead {
		return
	}

	target, _ := w.Player().(*Player)
	z.vx = 0
	if target != nil && !target.Dead() {
		z.vx = core.Sign(target.box.CenterX()-z.box.CenterX()) * z.cfg.Speed
	}

	wantX := z.vx
	moved := z.move(w, z.phys)
	if wantX != 0 && moved != wantX && z.grounded {
		z.vy = z.cfg.JumpImpulse
	}

	if z.cooldown > 0 {
		z.cooldown--
	}
	if target != nil && z.cooldown == 0 && z.box.Intersects(target.box) {
		target.Damage(z.cfg.Damage)
		z.cooldown = z.cfg.AttackCooldown
	}

	if z.fellOut(w) {
		z.dead = true
	}
}

// Kill ends the zombie; its collection drops it after this tick.
func (z *Zombie) Kill() { z.dead = true }

func (z *Zombie) Rect() *core.Rect { return &z.box }
func (z *Zombie) Solid() bool      { return false }
func (z *Zombie) Kind() string     { return "zombie" }
func (z *Zombie) Alive() bool      { return !z.dead }
