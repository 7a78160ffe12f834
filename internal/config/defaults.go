package config

import (
	_ "embed"
)

//go:embed defaults/horde.yaml
var defaultHordeYAML []byte

// DefaultHordeConfig returns the built-in configuration. It mirrors
// defaults/horde.yaml and is the last resort when no YAML can be parsed.
func DefaultHordeConfig() HordeConfig {
	return HordeConfig{
		Screen: ScreenConfig{
			Width:         1000,
			Height:        700,
			LeftBoundary:  300,
			RightBoundary: 700,
		},
		Generator: GeneratorConfig{
			BlockSize:   70,
			LeadBlocks:  30,
			Extent:      3500,
			SpawnColumn: 700,
			StepSides:   5,
			BushSides:   6,
		},
		Level: LevelConfig{
			Limit:          -1570,
			HostileColumns: []int{-2000, 2000},
		},
		Spawn: SpawnConfig{
			InitialHostileChance:  150,
			MinHostileChance:      20,
			HostileChanceStep:     0.25,
			HostileSentinel:       1,
			FirstPickupDelay:      15,
			InitialPickupInterval: 10,
			PickupIntervalMin:     1,
			PickupIntervalMax:     5,
			PickupJitter:          45,
		},
		Score: ScoreConfig{
			PerTick: 0.005,
			File:    "~/.horde/data.dat",
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			MaxFallSpeed: 20,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       60,
			Health:       100,
			Speed:        6,
			JumpImpulse:  -18,
			WalkHold:     8,
			StartAmmo:    24,
			ClipSize:     6,
			BulletSpeed:  24,
			BulletRange:  700,
			FireCooldown: 12,
		},
		Zombie: ZombieConfig{
			Width:          40,
			Height:         60,
			Speed:          2,
			JumpImpulse:    -14,
			Damage:         10,
			AttackCooldown: 45,
		},
		Pickups: PickupConfig{
			Size:         30,
			AmmoAmount:   12,
			HealthAmount: 25,
		},
		Messages: MessageConfig{
			DisplayTicks: 120,
			Greeting:     "Warning! Incoming Zombie Horde!",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				ChanceReduction: 100,
				PickupDelay:     10,
			},
		},
	}
}
