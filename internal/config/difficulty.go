package config

import "math"

// DifficultyManager turns the difficulty level into concrete spawn
// parameters for a level start.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled reports whether hostile spawn pressure accelerates over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the configured difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// HostileChance returns the starting hostile spawn chance. Harder levels
// start closer to the floor; the result never drops below floor.
func (d *DifficultyManager) HostileChance(base, floor float64) float64 {
	chance := base - d.initialLevel*d.cfg.Scaling.ChanceReduction
	return math.Max(floor, chance)
}

// ChanceStep returns how much the hostile chance shrinks per spawn.
// A disabled manager freezes the chance.
func (d *DifficultyManager) ChanceStep(step float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return step
}

// FirstPickupDelay returns the seconds until the first supply drop. Harder
// levels make the player wait longer.
func (d *DifficultyManager) FirstPickupDelay(base int) int {
	return base + int(d.initialLevel*float64(d.cfg.Scaling.PickupDelay))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
