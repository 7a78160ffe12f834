// Package world owns everything placed in the current level: solid blocks,
// hostiles, miscellaneous entities and the player's renderables, plus the
// horizontal scroll offset.
package world

import (
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/level"
)

// Options describes the level the descriptors are placed into.
type Options struct {
	BlockSize    int
	LevelLimit   int
	ScreenWidth  int
	ScreenHeight int
}

// World is the state of one level. The four collections are disjoint.
type World struct {
	Blocks   []*Block // Solid ground
	Hostiles *Group   // Zombies
	Entities *Group   // Pickups, flags, bushes
	Players  *Group   // The player and its projectiles

	shift        int
	levelLimit   int
	pickupColumn int
	hasPickup    bool
	player       Entity

	screenW, screenH int
}

// New creates an empty world.
func New(opts Options) *World {
	return &World{
		Hostiles:   NewGroup("hostiles"),
		Entities:   NewGroup("entities"),
		Players:    NewGroup("players"),
		levelLimit: opts.LevelLimit,
		screenW:    opts.ScreenWidth,
		screenH:    opts.ScreenHeight,
	}
}

// Place builds a world from generated descriptors. Ground tiles become
// solid blocks, bushes and flags become non-solid props, and the spawn
// marker only records the pickup drop column.
func Place(descs []level.BlockDescriptor, opts Options) *World {
	w := New(opts)
	bs := opts.BlockSize

	// The marker column is captured before anything else is placed.
	for _, d := range descs {
		if d.Kind == level.KindSpawnMarker {
			w.pickupColumn = d.X
			w.hasPickup = true
			break
		}
	}

	for _, d := range descs {
		box := core.NewRect(d.X, d.Y, bs, bs)
		switch d.Kind {
		case level.KindSpawnMarker:
			// Sentinel only.
		case level.KindFlag, level.KindBush:
			w.Entities.Add(&Prop{Tile: d.Kind, Box: box})
		default:
			w.Blocks = append(w.Blocks, &Block{Tile: d.Kind, Box: box})
		}
	}
	return w
}

// Shift scrolls the world horizontally by delta: every block, hostile and
// entity moves, as does the pickup drop column. Player renderables stay in
// screen space. Relative distances among shifted objects are preserved.
func (w *World) Shift(delta int) {
	w.shift += delta
	for _, b := range w.Blocks {
		b.Box.X += delta
	}
	w.Hostiles.shift(delta)
	w.Entities.shift(delta)
	w.pickupColumn += delta
}

// Update ticks every collection once, pruning dead members.
func (w *World) Update() {
	w.Players.update(w)
	w.Hostiles.update(w)
	w.Entities.update(w)
}

// WorldShift returns the cumulative horizontal scroll.
func (w *World) WorldShift() int {
	return w.shift
}

// LevelLimit returns the signed scroll limit.
func (w *World) LevelLimit() int {
	return w.levelLimit
}

// PickupColumn returns the current screen x of the drop point and whether
// the level has one.
func (w *World) PickupColumn() (int, bool) {
	return w.pickupColumn, w.hasPickup
}

// ScreenSize returns the visible area in world units.
func (w *World) ScreenSize() (int, int) {
	return w.screenW, w.screenH
}

// SetPlayer adds the player to the Players collection and remembers it so
// other entities can target it.
func (w *World) SetPlayer(p Entity) {
	w.player = p
	w.Players.Add(p)
}

// Player returns the player entity, or nil before SetPlayer.
func (w *World) Player() Entity {
	return w.player
}

// SolidAt returns the first solid block overlapping r, or nil.
func (w *World) SolidAt(r core.Rect) *Block {
	for _, b := range w.Blocks {
		if b.Box.Intersects(r) {
			return b
		}
	}
	return nil
}

// SurfaceAt returns the highest block top under the horizontal span
// [x0, x1), or false when no block lies under it.
func (w *World) SurfaceAt(x0, x1 int) (int, bool) {
	top, found := 0, false
	for _, b := range w.Blocks {
		if b.Box.X >= x1 || b.Box.Right() <= x0 {
			continue
		}
		if !found || b.Box.Y < top {
			top, found = b.Box.Y, true
		}
	}
	return top, found
}

// HostileAt returns the first living hostile overlapping r, or nil.
func (w *World) HostileAt(r core.Rect) Entity {
	for _, h := range w.Hostiles.members {
		if h.Alive() && h.Rect().Intersects(r) {
			return h
		}
	}
	return nil
}

// Count returns the number of objects in all collections.
func (w *World) Count() int {
	return len(w.Blocks) + w.Hostiles.Len() + w.Entities.Len() + w.Players.Len()
}
