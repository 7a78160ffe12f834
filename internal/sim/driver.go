// Package sim advances one level of the horde simulation a tick at a time.
// The Driver is the single owner of all per-level state: the world, the
// spawn scheduler, the score controller and the message board.
package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/entity"
	"github.com/vovakirdan/horde/internal/level"
	"github.com/vovakirdan/horde/internal/message"
	"github.com/vovakirdan/horde/internal/score"
	"github.com/vovakirdan/horde/internal/spawn"
	"github.com/vovakirdan/horde/internal/world"
)

// Options configure a new level.
type Options struct {
	Config config.HordeConfig
	Seed   int64
	Store  score.Store      // Nil disables high score persistence
	Clock  func() time.Time // Defaults to time.Now
	Logger *log.Logger
}

// Driver runs one level.
type Driver struct {
	cfg     config.HordeConfig
	world   *world.World
	player  *entity.Player
	spawner *spawn.Scheduler
	score   *score.Controller
	board   *message.Board
	clock   func() time.Time
	logger  *log.Logger

	ticks    int
	finished bool
	paused   bool
	pausedAt time.Time
	loadErr  error
}

// New generates and places a level and prepares every collaborator. A
// high score that cannot be loaded is fatal only with strict loading;
// otherwise the level starts from zero and LoadError reports the cause.
func New(opts Options) (*Driver, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	gen := level.NewGenerator(opts.Seed, cfg.Screen.Height, cfg.Generator)
	descs := gen.Generate(cfg.Generator.Extent)
	w := world.Place(descs, world.Options{
		BlockSize:    cfg.Generator.BlockSize,
		LevelLimit:   cfg.Level.Limit,
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
	})
	logger.Info("level generated", "seed", opts.Seed, "blocks", len(w.Blocks), "entities", w.Entities.Len())

	factory := entity.NewFactory(cfg)
	player := spawnPlayer(w, factory, cfg)
	w.SetPlayer(player)

	board := message.NewBoard(cfg.Messages.DisplayTicks, logger)
	if cfg.Messages.Greeting != "" {
		board.Post(cfg.Messages.Greeting)
	}

	d := &Driver{
		cfg:    cfg,
		world:  w,
		player: player,
		board:  board,
		clock:  clock,
		logger: logger,
	}

	ctrl, err := score.NewController(cfg.Score.PerTick, opts.Store, board, logger)
	if err != nil {
		if cfg.Score.StrictLoad {
			return nil, err
		}
		logger.Warn("starting from a zero high score", "error", err)
		d.loadErr = err
	}
	d.score = ctrl

	dm := config.NewDifficultyManager(cfg.Difficulty)
	spawnCfg := cfg.Spawn
	spawnCfg.InitialHostileChance = dm.HostileChance(spawnCfg.InitialHostileChance, spawnCfg.MinHostileChance)
	spawnCfg.HostileChanceStep = dm.ChanceStep(spawnCfg.HostileChanceStep)
	spawnCfg.FirstPickupDelay = dm.FirstPickupDelay(spawnCfg.FirstPickupDelay)

	d.spawner = spawn.New(spawnCfg, cfg.Level.HostileColumns, clock(), spawn.Deps{
		Rand:     rand.New(rand.NewSource(spawnSeed(opts.Seed))),
		Factory:  factory,
		Notifier: board,
		Logger:   logger,
	})
	return d, nil
}

// spawnSeed derives the spawn scheduler's seed from the level seed so its
// rolls do not replay the generator's stream.
func spawnSeed(seed int64) int64 {
	return seed ^ 0x5bd1e995
}

// spawnPlayer places the player at the screen center, standing on the
// ground when there is ground under it.
func spawnPlayer(w *world.World, f *entity.Factory, cfg config.HordeConfig) *entity.Player {
	x := cfg.Screen.Width / 2
	y := cfg.Screen.Height - 2*cfg.Player.Height
	if top, ok := w.SurfaceAt(x, x+cfg.Player.Width); ok {
		y = top - cfg.Player.Height
	}
	return f.NewPlayer(x, y)
}

// Step advances the level by one tick: every collection updates, both
// spawn cadences run, the message board and the score tick, and finally
// the world scrolls if the player pushed against a boundary.
func (d *Driver) Step() {
	if d.finished || d.paused {
		return
	}
	d.world.Update()
	d.spawner.Hostile(d.world)
	d.spawner.Pickup(d.world, d.clock())
	d.board.Tick()
	d.score.Tick(!d.player.Dead())
	d.scroll()
	d.ticks++
}

// scroll keeps the player inside the boundaries and shifts the world
// instead, as long as the level extends in that direction.
func (d *Driver) scroll() {
	r := d.player.Rect()
	pos := r.X + d.world.WorldShift()
	limit := d.world.LevelLimit()
	left, right := d.cfg.Screen.LeftBoundary, d.cfg.Screen.RightBoundary

	if r.Right() >= right {
		diff := r.Right() - right
		r.SetRight(right)
		if pos >= limit {
			d.world.Shift(-diff)
		}
	}

	if r.X <= left {
		diff := left - r.X
		r.X = left
		if pos <= -limit {
			d.world.Shift(diff)
		}
	}
}

// Pause freezes the level. Step does nothing until Resume.
func (d *Driver) Pause() {
	if d.paused {
		return
	}
	d.paused = true
	d.pausedAt = d.clock()
}

// Resume continues a paused level. The pickup schedule is moved back by the
// time spent paused, so drops keep their spacing in played time.
func (d *Driver) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	away := d.clock().Sub(d.pausedAt)
	d.spawner.Delay(away)
	d.logger.Debug("level resumed", "paused_for", away)
}

// Finish ends the level and persists a beaten high score. It is safe to
// call more than once.
func (d *Driver) Finish() error {
	if d.finished {
		return nil
	}
	d.finished = true
	d.logger.Info("level finished", "ticks", d.ticks, "score", int(d.score.State().Score))
	return d.score.Finish()
}

// GameOver reports whether the player has died.
func (d *Driver) GameOver() bool {
	return d.player.Dead()
}

func (d *Driver) World() *world.World         { return d.world }
func (d *Driver) Player() *entity.Player      { return d.player }
func (d *Driver) Score() score.State          { return d.score.State() }
func (d *Driver) Message() string             { return d.board.Current() }
func (d *Driver) Scheduler() *spawn.Scheduler { return d.spawner }
func (d *Driver) Ticks() int                  { return d.ticks }
func (d *Driver) Finished() bool              { return d.finished }
func (d *Driver) Paused() bool                { return d.paused }
func (d *Driver) Config() config.HordeConfig  { return d.cfg }

// LoadError returns the high score load failure the level recovered from.
func (d *Driver) LoadError() error {
	return d.loadErr
}
