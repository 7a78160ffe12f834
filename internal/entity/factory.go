package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/spawn"
	"github.com/vovakirdan/horde/internal/world"
)

// Factory builds entities from one configuration.
type Factory struct {
	cfg config.HordeConfig
}

// NewFactory creates a factory for cfg.
func NewFactory(cfg config.HordeConfig) *Factory {
	return &Factory{cfg: cfg}
}

// NewHostile creates a zombie at (x, y).
func (f *Factory) NewHostile(x, y int) world.Entity {
	return NewZombie(x, y, f.cfg.Zombie, f.cfg.Physics)
}

// NewPickup creates a supply crate centered on centerX.
func (f *Factory) NewPickup(kind spawn.PickupKind, centerX, y int) world.Entity {
	return NewPickup(kind, centerX, y, f.cfg.Pickups, f.cfg.Physics)
}

// NewPlayer creates the player with its top-left corner at (x, y).
func (f *Factory) NewPlayer(x, y int) *Player {
	return NewPlayer(x, y, f.cfg.Player, f.cfg.Physics)
}

var (
	_ spawn.Factory = (*Factory)(nil)
	_ world.Entity  = (*Player)(nil)
	_ world.Entity  = (*Zombie)(nil)
	_ world.Entity  = (*Pickup)(nil)
	_ world.Entity  = (*Bullet)(nil)
)
