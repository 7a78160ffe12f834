package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadHorde loads the horde configuration.
// Search order: customPath -> ~/.horde/configs/horde.yaml -> ./configs/horde.yaml -> embedded default
func LoadHorde(customPath string) (HordeConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultHordeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("horde.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultHordeConfig()
		}
	}

	if data, err := os.ReadFile("configs/horde.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultHordeConfig()
	}

	if err := yaml.Unmarshal(defaultHordeYAML, &cfg); err != nil {
		return DefaultHordeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Validate rejects values that would make the simulation ill-defined, such
// as an empty random range.
func (c HordeConfig) Validate() error {
	var errs []error
	if c.Generator.BlockSize <= 0 {
		errs = append(errs, errors.New("generator.block_size must be positive"))
	}
	if c.Generator.StepSides < 3 {
		errs = append(errs, errors.New("generator.step_sides must be at least 3"))
	}
	if c.Generator.BushSides < 2 {
		errs = append(errs, errors.New("generator.bush_sides must be at least 2"))
	}
	if c.Spawn.MinHostileChance < float64(c.Spawn.HostileSentinel+1) {
		errs = append(errs, errors.New("spawn.min_hostile_chance must exceed hostile_sentinel"))
	}
	if c.Spawn.InitialHostileChance < c.Spawn.MinHostileChance {
		errs = append(errs, errors.New("spawn.initial_hostile_chance must be >= min_hostile_chance"))
	}
	if c.Spawn.HostileChanceStep < 0 {
		errs = append(errs, errors.New("spawn.hostile_chance_step must not be negative"))
	}
	if c.Spawn.PickupIntervalMin < 0 || c.Spawn.PickupIntervalMax <= c.Spawn.PickupIntervalMin {
		errs = append(errs, errors.New("spawn.pickup_interval_max must exceed a non-negative pickup_interval_min"))
	}
	if c.Spawn.PickupJitter < 0 {
		errs = append(errs, errors.New("spawn.pickup_jitter must not be negative"))
	}
	if len(c.Level.HostileColumns) == 0 {
		errs = append(errs, errors.New("level.hostile_columns must not be empty"))
	}
	if c.Screen.LeftBoundary >= c.Screen.RightBoundary {
		errs = append(errs, errors.New("screen.left_boundary must be left of right_boundary"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// ApplyHordePreset modifies the config based on a difficulty preset.
func ApplyHordePreset(cfg *HordeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 150
		cfg.Player.StartAmmo = 36
	case DifficultyHard:
		cfg.Player.Health = 75
		cfg.Player.StartAmmo = 12
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".horde", "configs", filename)
}
