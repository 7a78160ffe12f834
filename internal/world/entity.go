package world

import (
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/level"
)

// Entity is the capability every simulated object exposes. Behaviors live
// outside this package; the world only positions, ticks and prunes them.
type Entity interface {
	// Rect returns the live, mutable bounds of the entity.
	Rect() *core.Rect
	// Tick advances the entity's own behavior by one simulation step.
	Tick(w *World)
	// Solid reports whether other bodies collide with it.
	Solid() bool
	// Kind is a short identifier usable in user-facing messages.
	Kind() string
	// Alive turns false once the entity's lifecycle has ended; its owning
	// collection drops it at the end of that tick.
	Alive() bool
}

// Block is a static solid tile of the generated ground.
type Block struct {
	Tile level.BlockKind
	Box  core.Rect
}

func (b *Block) Rect() *core.Rect { return &b.Box }
func (b *Block) Tick(*World)      {}
func (b *Block) Solid() bool      { return true }
func (b *Block) Kind() string     { return b.Tile.String() }
func (b *Block) Alive() bool      { return true }

// Prop is a non-solid placed object: a bush or the drop-point flag.
type Prop struct {
	Tile level.BlockKind
	Box  core.Rect
}

func (p *Prop) Rect() *core.Rect { return &p.Box }
func (p *Prop) Tick(*World)      {}
func (p *Prop) Solid() bool      { return false }
func (p *Prop) Kind() string     { return p.Tile.String() }
func (p *Prop) Alive() bool      { return true }

var (
	_ Entity = (*Block)(nil)
	_ Entity = (*Prop)(nil)
)
