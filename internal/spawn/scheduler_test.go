package spawn

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/level"
	"github.com/vovakirdan/horde/internal/world"
)

type stubEntity struct {
	box  core.Rect
	kind string
}

func (e *stubEntity) Rect() *core.Rect  { return &e.box }
func (e *stubEntity) Tick(*world.World) {}
func (e *stubEntity) Solid() bool       { return false }
func (e *stubEntity) Kind() string      { return e.kind }
func (e *stubEntity) Alive() bool       { return true }

type fakeFactory struct {
	hostiles []int
	pickups  []PickupKind
	centers  []int
}

func (f *fakeFactory) NewHostile(x, y int) world.Entity {
	f.hostiles = append(f.hostiles, x)
	return &stubEntity{box: core.NewRect(x, y, 40, 60), kind: "zombie"}
}

func (f *fakeFactory) NewPickup(kind PickupKind, centerX, y int) world.Entity {
	f.pickups = append(f.pickups, kind)
	f.centers = append(f.centers, centerX)
	r := core.NewRect(0, y, 30, 30)
	r.SetCenterX(centerX)
	return &stubEntity{box: r, kind: kind.String()}
}

type recorder struct {
	posts []string
}

func (r *recorder) Post(text string) { r.posts = append(r.posts, text) }

var levelStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestScheduler(seed int64) (*Scheduler, *fakeFactory, *recorder) {
	cfg := config.DefaultHordeConfig()
	f := &fakeFactory{}
	n := &recorder{}
	s := New(cfg.Spawn, cfg.Level.HostileColumns, levelStart, Deps{
		Rand:     rand.New(rand.NewSource(seed)),
		Factory:  f,
		Notifier: n,
	})
	return s, f, n
}

var worldOpts = world.Options{BlockSize: 70, LevelLimit: -1570, ScreenWidth: 1000, ScreenHeight: 700}

func newTestWorld() *world.World {
	return world.New(worldOpts)
}

// placedWorld returns a world whose pickup column is at x.
func placedWorld(x int) *world.World {
	return world.Place([]level.BlockDescriptor{
		{Kind: level.KindGrassMiddle, X: x, Y: 630},
		{Kind: level.KindSpawnMarker, X: x, Y: 630},
	}, worldOpts)
}

func TestHostileChanceMonotonicAndFloored(t *testing.T) {
	s, f, _ := newTestScheduler(1)
	w := newTestWorld()

	prev := s.Chance()
	if prev != 150 {
		t.Fatalf("initial chance = %v, expected 150", prev)
	}

	for i := 0; i < 200000; i++ {
		s.Hostile(w)
		c := s.Chance()
		if c > prev {
			t.Fatalf("chance grew from %v to %v", prev, c)
		}
		if c < 20 {
			t.Fatalf("chance %v fell below the floor", c)
		}
		prev = c
	}
	if s.Chance() != 20 {
		t.Errorf("chance settled at %v, expected floor 20", s.Chance())
	}
	if len(f.hostiles) != w.Hostiles.Len() {
		t.Errorf("factory built %d hostiles but world holds %d", len(f.hostiles), w.Hostiles.Len())
	}
}

func TestHostileSpawnColumns(t *testing.T) {
	s, f, _ := newTestScheduler(5)
	w := newTestWorld()
	for i := 0; i < 50000; i++ {
		s.Hostile(w)
	}
	if len(f.hostiles) == 0 {
		t.Fatal("expected some hostiles")
	}
	seen := map[int]bool{}
	for _, x := range f.hostiles {
		if x != -2000 && x != 2000 {
			t.Fatalf("hostile spawned at x=%d", x)
		}
		seen[x] = true
	}
	if len(seen) != 2 {
		t.Error("expected both spawn columns to be used")
	}
	for _, h := range w.Hostiles.Members() {
		if h.Rect().Y != 0 {
			t.Errorf("hostile spawned at y=%d, expected top of screen", h.Rect().Y)
		}
	}
}

func TestHostileFrozenWithoutStep(t *testing.T) {
	cfg := config.DefaultHordeConfig()
	cfg.Spawn.HostileChanceStep = 0
	s := New(cfg.Spawn, cfg.Level.HostileColumns, levelStart, Deps{
		Rand:    rand.New(rand.NewSource(1)),
		Factory: &fakeFactory{},
	})
	w := newTestWorld()
	for i := 0; i < 10000; i++ {
		s.Hostile(w)
	}
	if s.Chance() != 150 {
		t.Errorf("chance = %v, expected unchanged 150", s.Chance())
	}
}

func TestPickupNotDueBeforeFirstDelay(t *testing.T) {
	s, f, n := newTestScheduler(1)
	w := placedWorld(700)

	if s.Pickup(w, levelStart.Add(14*time.Second)) {
		t.Fatal("pickup dropped before the first delay")
	}
	if len(f.pickups) != 0 || len(n.posts) != 0 {
		t.Fatal("no side effects expected before due time")
	}
	if !s.Pickup(w, levelStart.Add(15*time.Second)) {
		t.Fatal("pickup expected exactly at the due time")
	}
}

func TestPickupAlternatesAndIntervalsGrow(t *testing.T) {
	s, f, n := newTestScheduler(3)
	w := placedWorld(700)

	prevInterval := s.Interval()
	prevDue := s.DueAt()
	for i := 0; i < 12; i++ {
		if !s.Pickup(w, s.DueAt()) {
			t.Fatalf("drop %d not made at due time", i)
		}
		grown := s.Interval() - prevInterval
		if grown < 1 || grown > 4 {
			t.Fatalf("interval grew by %d, expected [1,4]", grown)
		}
		if got := s.DueAt().Sub(prevDue); got != time.Duration(s.Interval())*time.Second {
			t.Fatalf("due time advanced by %v, expected %ds", got, s.Interval())
		}
		prevInterval, prevDue = s.Interval(), s.DueAt()
	}

	for i, k := range f.pickups {
		want := PickupHealth
		if i%2 == 1 {
			want = PickupAmmo
		}
		if k != want {
			t.Fatalf("drop %d is %v, expected %v", i, k, want)
		}
	}
	for _, c := range f.centers {
		if c < 655 || c > 745 {
			t.Errorf("drop centered at %d, outside 700±45", c)
		}
	}
	if w.Entities.Len() != 12 {
		t.Errorf("entities = %d, expected 12 pickups", w.Entities.Len())
	}
	if s.Drops() != 12 {
		t.Errorf("drops = %d", s.Drops())
	}
	if len(n.posts) != 12 {
		t.Fatalf("posts = %d, expected 12", len(n.posts))
	}
	if !strings.HasPrefix(n.posts[0], "Health pack dropped! Next drop in ") {
		t.Errorf("first post = %q", n.posts[0])
	}
	if !strings.HasPrefix(n.posts[1], "Ammo dropped! Next drop in ") {
		t.Errorf("second post = %q", n.posts[1])
	}
}

func TestPickupMessageNamesInterval(t *testing.T) {
	s, _, n := newTestScheduler(9)
	w := placedWorld(700)
	s.Pickup(w, s.DueAt())
	want := "Health pack dropped! Next drop in " + strconv.Itoa(s.Interval()) + " seconds"
	if n.posts[0] != want {
		t.Errorf("post = %q, expected %q", n.posts[0], want)
	}
}

func TestPickupFollowsShiftedColumn(t *testing.T) {
	s, f, _ := newTestScheduler(2)
	w := placedWorld(700)
	w.Shift(-300)
	s.Pickup(w, s.DueAt())
	if c := f.centers[0]; c < 355 || c > 445 {
		t.Errorf("drop centered at %d, expected near shifted column 400", c)
	}
}

func TestPickupWithoutColumn(t *testing.T) {
	s, f, _ := newTestScheduler(2)
	w := newTestWorld()
	if s.Pickup(w, s.DueAt()) {
		t.Error("no drop expected without a pickup column")
	}
	if len(f.pickups) != 0 {
		t.Error("factory must not be called")
	}
}

func TestPickupKindString(t *testing.T) {
	if PickupKind(7).String() != "pickup(7)" {
		t.Errorf("unknown kind = %q", PickupKind(7).String())
	}
}

func TestDelayPostponesNextPickup(t *testing.T) {
	s, f, _ := newTestScheduler(1)
	w := placedWorld(700)

	s.Delay(2 * time.Minute)
	s.Delay(-time.Hour)

	for _, at := range []time.Duration{15 * time.Second, 2 * time.Minute, 134 * time.Second} {
		if s.Pickup(w, levelStart.Add(at)) {
			t.Fatalf("pickup dropped at %v despite the delay", at)
		}
	}
	if !s.Pickup(w, levelStart.Add(135*time.Second)) {
		t.Fatal("pickup expected at the delayed due time")
	}
	if len(f.pickups) != 1 {
		t.Errorf("drops = %d, want 1", len(f.pickups))
	}
}
