// Package config provides YAML-based configuration loading and difficulty
// presets for the horde simulation.
package config

// HordeConfig contains all tunables of the simulation core and the minimal
// entity behaviors around it.
type HordeConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Level      LevelConfig      `yaml:"level"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Score      ScoreConfig      `yaml:"score"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Zombie     ZombieConfig     `yaml:"zombie"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Messages   MessageConfig    `yaml:"messages"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the visible world area in world units and the scroll
// boundaries inside it. The renderer scales it to the terminal.
type ScreenConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	LeftBoundary  int `yaml:"left_boundary"`  // Player left edge at or left of this scrolls the world right
	RightBoundary int `yaml:"right_boundary"` // Player right edge at or right of this scrolls the world left
}

// GeneratorConfig drives the procedural level walk.
type GeneratorConfig struct {
	BlockSize   int `yaml:"block_size"`   // Grid unit B
	LeadBlocks  int `yaml:"lead_blocks"`  // Walk starts at -LeadBlocks*B
	Extent      int `yaml:"extent"`       // Walk continues while x <= Extent
	SpawnColumn int `yaml:"spawn_column"` // Column that receives the pickup marker and flag
	StepSides   int `yaml:"step_sides"`   // Direction die: 1 = up, 2 = down, other = flat
	BushSides   int `yaml:"bush_sides"`   // Bush die: a roll of 1 places a bush
}

// LevelConfig holds per-level boundaries.
type LevelConfig struct {
	Limit          int   `yaml:"limit"`           // Signed scroll limit; -Limit is used on the left
	HostileColumns []int `yaml:"hostile_columns"` // Screen-space x columns hostiles drop from
}

// SpawnConfig holds both spawn cadences.
type SpawnConfig struct {
	InitialHostileChance float64 `yaml:"initial_hostile_chance"`
	MinHostileChance     float64 `yaml:"min_hostile_chance"`
	HostileChanceStep    float64 `yaml:"hostile_chance_step"`
	HostileSentinel      int     `yaml:"hostile_sentinel"`

	FirstPickupDelay      int `yaml:"first_pickup_delay"`      // Seconds after level start
	InitialPickupInterval int `yaml:"initial_pickup_interval"` // Starting value of the interval accumulator
	PickupIntervalMin     int `yaml:"pickup_interval_min"`     // Increment drawn from [min, max)
	PickupIntervalMax     int `yaml:"pickup_interval_max"`
	PickupJitter          int `yaml:"pickup_jitter"` // Horizontal spread around the drop column
}

// ScoreConfig controls score accrual and high score persistence.
type ScoreConfig struct {
	PerTick    float64 `yaml:"per_tick"`
	File       string  `yaml:"file"`
	StrictLoad bool    `yaml:"strict_load"` // Refuse to start on a corrupt score file
}

// PhysicsConfig is shared by every falling entity.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`
	MaxFallSpeed int `yaml:"max_fall_speed"`
}

// PlayerConfig defines the player body and weapon.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Health       int `yaml:"health"`
	Speed        int `yaml:"speed"`
	JumpImpulse  int `yaml:"jump_impulse"`
	WalkHold     int `yaml:"walk_hold"` // Ticks a single key press keeps the player walking
	StartAmmo    int `yaml:"start_ammo"`
	ClipSize     int `yaml:"clip_size"`
	BulletSpeed  int `yaml:"bullet_speed"`
	BulletRange  int `yaml:"bullet_range"`
	FireCooldown int `yaml:"fire_cooldown"`
}

// ZombieConfig defines hostile bodies.
type ZombieConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Speed          int `yaml:"speed"`
	JumpImpulse    int `yaml:"jump_impulse"` // Hop used to climb a one-block step
	Damage         int `yaml:"damage"`
	AttackCooldown int `yaml:"attack_cooldown"`
}

// PickupConfig defines dropped supplies.
type PickupConfig struct {
	Size         int `yaml:"size"`
	AmmoAmount   int `yaml:"ammo_amount"`
	HealthAmount int `yaml:"health_amount"`
}

// MessageConfig controls on-screen notifications.
type MessageConfig struct {
	DisplayTicks int    `yaml:"display_ticks"`
	Greeting     string `yaml:"greeting"`
}

// DifficultyConfig maps a difficulty level onto the hostile spawn pressure.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false freezes the hostile spawn chance
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	ChanceReduction float64 `yaml:"chance_reduction"` // Subtracted from the initial hostile chance
	PickupDelay     int     `yaml:"pickup_delay"`     // Seconds added to the first pickup delay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a CLI string into a preset. Unknown strings yield
// the empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}
