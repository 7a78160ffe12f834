// Package spawn decides when hostiles and supply pickups enter the world.
//
// Hostiles arrive on a per-tick probability that grows with every spawn
// until it hits a floor. Pickups arrive on a wall-clock schedule whose
// interval lengthens after every drop, alternating health and ammo.
package spawn

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/message"
	"github.com/vovakirdan/horde/internal/world"
)

// PickupKind is the type of supply dropped at the pickup column.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupAmmo
)

// String returns the name shown in drop notifications.
func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "Health pack"
	case PickupAmmo:
		return "Ammo"
	default:
		return fmt.Sprintf("pickup(%d)", int(k))
	}
}

// Factory builds the concrete entities the scheduler places.
type Factory interface {
	NewHostile(x, y int) world.Entity
	NewPickup(kind PickupKind, centerX, y int) world.Entity
}

// Deps are the collaborators of a Scheduler.
type Deps struct {
	Rand     *rand.Rand
	Factory  Factory
	Notifier message.Notifier
	Logger   *log.Logger
}

// Scheduler holds the state of both spawn cadences for one level.
type Scheduler struct {
	cfg     config.SpawnConfig
	columns []int
	deps    Deps

	chance   float64
	interval int
	dueAt    time.Time
	nextKind PickupKind
	drops    int
}

// New creates a scheduler for a level that started at start. The first
// pickup is due cfg.FirstPickupDelay seconds later.
func New(cfg config.SpawnConfig, columns []int, start time.Time, deps Deps) *Scheduler {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Scheduler{
		cfg:      cfg,
		columns:  columns,
		deps:     deps,
		chance:   cfg.InitialHostileChance,
		interval: cfg.InitialPickupInterval,
		dueAt:    start.Add(time.Duration(cfg.FirstPickupDelay) * time.Second),
		nextKind: PickupHealth,
	}
}

// Hostile rolls the per-tick hostile die. On a hit it drops one hostile at
// the top of a randomly chosen spawn column and tightens the odds, never
// below the configured floor. It reports whether a hostile was added.
func (s *Scheduler) Hostile(w *world.World) bool {
	if len(s.columns) == 0 || s.deps.Rand.Intn(int(s.chance)) != s.cfg.HostileSentinel {
		return false
	}

	x := s.columns[s.deps.Rand.Intn(len(s.columns))]
	w.Hostiles.Add(s.deps.Factory.NewHostile(x, 0))

	if s.chance > s.cfg.MinHostileChance {
		s.chance -= s.cfg.HostileChanceStep
	}
	s.deps.Logger.Debug("hostile spawned", "x", x, "chance", s.chance)
	return true
}

// Pickup drops a supply when now has reached the due time. The drop lands
// near the world's pickup column; the next one is scheduled one grown
// interval later and announced through the notifier. A world without a
// pickup column never receives drops.
func (s *Scheduler) Pickup(w *world.World, now time.Time) bool {
	if now.Before(s.dueAt) {
		return false
	}
	column, ok := w.PickupColumn()
	if !ok {
		return false
	}

	kind := s.nextKind
	jitter := s.deps.Rand.Intn(2*s.cfg.PickupJitter+1) - s.cfg.PickupJitter
	w.Entities.Add(s.deps.Factory.NewPickup(kind, column+jitter, 0))

	s.interval += s.cfg.PickupIntervalMin + s.deps.Rand.Intn(s.cfg.PickupIntervalMax-s.cfg.PickupIntervalMin)
	s.dueAt = s.dueAt.Add(time.Duration(s.interval) * time.Second)
	s.nextKind = 1 - kind
	s.drops++

	s.deps.Logger.Info("pickup dropped", "kind", kind, "x", column+jitter, "next_in", s.interval)
	if s.deps.Notifier != nil {
		s.deps.Notifier.Post(fmt.Sprintf("%s dropped! Next drop in %d seconds", kind, s.interval))
	}
	return true
}

// Delay pushes the next pickup back by d, the wall time the level spent
// paused. Non-positive durations are ignored.
func (s *Scheduler) Delay(d time.Duration) {
	if d > 0 {
		s.dueAt = s.dueAt.Add(d)
	}
}

// Chance returns the current hostile spawn chance denominator.
func (s *Scheduler) Chance() float64 {
	return s.chance
}

// Interval returns the current pickup interval in seconds.
func (s *Scheduler) Interval() int {
	return s.interval
}

// DueAt returns when the next pickup drops.
func (s *Scheduler) DueAt() time.Time {
	return s.dueAt
}

// NextKind returns the kind of the next pickup.
func (s *Scheduler) NextKind() PickupKind {
	return s.nextKind
}

// Drops returns the number of pickups dropped so far.
func (s *Scheduler) Drops() int {
	return s.drops
}
