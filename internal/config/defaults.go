package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultRunnerYAML))
	copy(out, defaultRunnerYAML)
	return out
}

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:    800,
			Height:   360,
			CeilingY: 40,
			GroundY:  320,
		},
		Player: PlayerConfig{
			X:      120,
			Width:  32,
			Height: 32,
		},
		Obstacles: ObstacleConfig{
			Width:         28,
			Height:        36,
			SpawnJitter:   80,
			CullMargin:    100,
			FakeChance:    0.12,
			DynamicChance: 0.3,
		},
		Speed: SpeedConfig{
			Start: 220,
			Add:   50,
			Max:   5000,
		},
		Spawn: SpawnConfig{
			Min: 500,
			Max: 800,
		},
		Flip: FlipConfig{
			TweenSecs:        0.16,
			MinTweenToReflip: 0.6,
			Cooldown:         0.12,
			DupGuard:         0.08,
			StyleWindow:      0.25,
		},
		Gates: GateConfig{
			ScoreInterval: 10,
			Width:         40,
			SafeDistance:  600,
			HoleEpsilon:   0.5,
		},
		PowerUps: PowerUpConfig{
			Chance:    0.15,
			Offset:    140,
			Size:      22,
			Tolerance: 6,
			GhostSecs: 5,
			CloneSecs: 8,
		},
		Theme: ThemeConfig{
			Interval:      15,
			BattleAt:      20,
			BossAt:        40,
			MusicFadeSecs: 1.2,
			MusicVolume:   0.6,
			BgFadeSecs:    1.0,
		},
		Loop: LoopConfig{
			MaxDT: 0.04,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.5,
				FakeChanceReduction: 0.1,
			},
		},
	}
}
