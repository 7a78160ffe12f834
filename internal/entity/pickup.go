package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/spawn"
	"github.com/vovakirdan/horde/internal/world"
)

// Pickup is a supply crate dropped from the sky.
type Pickup struct {
	body
	kind     spawn.PickupKind
	amount   int
	phys     config.PhysicsConfig
	consumed bool
}

// NewPickup creates a pickup horizontally centered on centerX with its top
// at y.
func NewPickup(kind spawn.PickupKind, centerX, y int, cfg config.PickupConfig, phys config.PhysicsConfig) *Pickup {
	p := &Pickup{kind: kind, phys: phys, amount: cfg.AmmoAmount}
	if kind == spawn.PickupHealth {
		p.amount = cfg.HealthAmount
	}
	p.box = core.NewRect(0, y, cfg.Size, cfg.Size)
	p.box.SetCenterX(centerX)
	return p
}

// Tick lets the crate fall and hands its contents to a touching player.
func (p *Pickup) Tick(w *world.World) {
	if p.consumed {
		return
	}
	p.vx = 0
	p.move(w, p.phys)

	if pl, ok := w.Player().(*Player); ok && !pl.Dead() && p.box.Intersects(pl.box) {
		switch p.kind {
		case spawn.PickupHealth:
			pl.Heal(p.amount)
		case spawn.PickupAmmo:
			pl.AddAmmo(p.amount)
		}
		p.consumed = true
		return
	}

	if p.fellOut(w) {
		p.consumed = true
	}
}

// PickupKind returns what the crate contains.
func (p *Pickup) PickupKind() spawn.PickupKind { return p.kind }

func (p *Pickup) Rect() *core.Rect { return &p.box }
func (p *Pickup) Solid() bool      { return false }
func (p *Pickup) Kind() string     { return p.kind.String() }
func (p *Pickup) Alive() bool      { return !p.consumed }
