package config

import (
	"fmt"
	"math"
)

// ParsePreset validates a preset name; empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the difficulty level (0.0 to 1.0) for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.3
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset. The file's
// values describe the normal preset; other presets scale around them.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if IsFixedPreset(preset) {
		cfg.Speed.Add = 0
		return
	}

	delta := InitialLevelForPreset(preset) - InitialLevelForPreset(DifficultyNormal)
	factor := 1.0 + delta*cfg.Difficulty.Scaling.SpeedMultiplier
	cfg.Speed.Start = math.Min(cfg.Speed.Start*factor, cfg.Speed.Max)
	cfg.Speed.Add *= factor
	cfg.Obstacles.FakeChance = clampF(cfg.Obstacles.FakeChance-delta*cfg.Difficulty.Scaling.FakeChanceReduction, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
