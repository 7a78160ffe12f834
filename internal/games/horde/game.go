// Package horde implements the zombie horde survival level as a
// registry.Game: the player holds out on a procedurally generated strip of
// forest while zombies fall in from both sides and supplies drop from the
// sky.
package horde

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/registry"
	"github.com/vovakirdan/horde/internal/score"
	"github.com/vovakirdan/horde/internal/sim"
)

// LevelID is the registry name of the first level.
const LevelID = "forest"

// Settings applied to every level created afterwards. They are set once by
// the CLI before any level starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	scoreFile        string
	strictLoad       bool
	clock            = time.Now
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names keep the
// configured difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetScoreFile overrides the configured high score file.
func SetScoreFile(path string) {
	scoreFile = path
}

// SetStrictLoad makes a corrupt high score file end the level at start.
func SetStrictLoad(strict bool) {
	strictLoad = strict
}

// SetClock sets the wall clock that schedules pickups; nil restores
// time.Now.
func SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	clock = now
}

// SetLogger sets the logger used by every level.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Sessions on the SSH server share one store per score file so saves are
// serialized.
var (
	storesMu sync.Mutex
	stores   = make(map[string]*score.FileStore)
)

func storeFor(path string) *score.FileStore {
	storesMu.Lock()
	defer storesMu.Unlock()
	if s, ok := stores[path]; ok {
		return s
	}
	s := score.NewFileStore(path)
	stores[path] = s
	return s
}

// Game adapts a sim.Driver to the platform's game contract.
type Game struct {
	driver  *sim.Driver
	runtime core.RuntimeConfig
	cfg     config.HordeConfig
	state   core.GameState
	err     error // Level could not start
}

// New creates a level instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(LevelID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this level.
func (g *Game) ID() string {
	return LevelID
}

// Title returns the display name for this level.
func (g *Game) Title() string {
	return "Level 01: Forest"
}

// Reset loads configuration and starts a fresh level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.state = core.GameState{}
	g.err = nil

	cfg, err := config.LoadHorde(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultHordeConfig()
	}
	config.ApplyHordePreset(&cfg, difficultyPreset)
	if scoreFile != "" {
		cfg.Score.File = scoreFile
	}
	if strictLoad {
		cfg.Score.StrictLoad = true
	}
	g.cfg = cfg

	path, err := config.ExpandHome(cfg.Score.File)
	if err != nil {
		g.fail(err)
		return
	}

	d, err := sim.New(sim.Options{
		Config: cfg,
		Seed:   runtime.Seed,
		Store:  storeFor(path),
		Clock:  clock,
		Logger: logger,
	})
	if err != nil {
		g.fail(err)
		return
	}
	g.driver = d
	g.syncState()
}

func (g *Game) fail(err error) {
	logger.Error("level failed to start", "error", err)
	g.driver = nil
	g.err = err
	g.state = core.GameState{GameOver: true}
}

// Step applies one frame of input and advances the level by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.driver == nil || g.state.GameOver {
		return core.StepResult{State: g.state}
	}

	if in.Has(core.ActionQuit) {
		g.finish()
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
		if g.state.Paused {
			g.driver.Pause()
		} else {
			g.driver.Resume()
		}
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}

	p := g.driver.Player()
	if in.Has(core.ActionLeft) {
		p.Walk(-1)
	}
	if in.Has(core.ActionRight) {
		p.Walk(1)
	}
	if in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionFire) {
		p.Fire()
	}
	if in.Has(core.ActionReload) {
		p.Reload()
	}

	g.driver.Step()
	if g.driver.GameOver() {
		g.finish()
	}
	g.syncState()
	return core.StepResult{State: g.state}
}

// finish ends the level once, persisting a beaten high score.
func (g *Game) finish() {
	if err := g.driver.Finish(); err != nil {
		logger.Error("could not save high score", "error", err)
	}
	g.syncState()
	g.state.GameOver = true
}

func (g *Game) syncState() {
	st := g.driver.Score()
	g.state.Score = int(st.Score)
	g.state.HighScore = int(st.HighScore)
	g.state.NewHigh = st.HighScoreReached
	g.state.Ticks = g.driver.Ticks()
	g.state.GameOver = g.state.GameOver || g.driver.Finished()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Err returns why the level could not start, if it could not.
func (g *Game) Err() error {
	return g.err
}

// Seed returns the seed of the running level.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Driver exposes the running simulation, or nil if the level failed to
// start.
func (g *Game) Driver() *sim.Driver {
	return g.driver
}
