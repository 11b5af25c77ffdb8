// Package config provides YAML-based runner configuration loading,
// validation and difficulty presets.
package config

// RunnerConfig contains every tunable constant of the gravity runner.
type RunnerConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Flip       FlipConfig       `yaml:"flip"`
	Gates      GateConfig       `yaml:"gates"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Theme      ThemeConfig      `yaml:"theme"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the logical resolution and the two lane lines.
type CanvasConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CeilingY float64 `yaml:"ceiling_y"` // top edge of the ceiling lane
	GroundY  float64 `yaml:"ground_y"`  // bottom edge of the ground lane
}

// PlayerConfig defines the player's hit-box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines hydrant geometry and spawn probabilities.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnJitter   float64 `yaml:"spawn_jitter"` // random extra distance past the right edge
	CullMargin    float64 `yaml:"cull_margin"`
	FakeChance    float64 `yaml:"fake_chance"`
	DynamicChance float64 `yaml:"dynamic_chance"`
}

// SpeedConfig defines world scroll speed in px/s.
type SpeedConfig struct {
	Start float64 `yaml:"start"`
	Add   float64 `yaml:"add"` // added per scoring event
	Max   float64 `yaml:"max"`
}

// SpawnConfig defines the travel distance between spawns.
type SpawnConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FlipConfig defines the gravity flip timings, in seconds.
type FlipConfig struct {
	TweenSecs        float64 `yaml:"tween_secs"`
	MinTweenToReflip float64 `yaml:"min_tween_to_reflip"` // fraction of the tween
	Cooldown         float64 `yaml:"cooldown"`
	DupGuard         float64 `yaml:"dup_guard"`
	StyleWindow      float64 `yaml:"style_window"` // late-flip bonus window
}

// GateConfig defines gate pacing and geometry.
type GateConfig struct {
	ScoreInterval int     `yaml:"score_interval"`
	Width         float64 `yaml:"width"`
	SafeDistance  float64 `yaml:"safe_distance"`
	HoleEpsilon   float64 `yaml:"hole_epsilon"`
}

// PowerUpConfig defines pickups and power-up durations.
type PowerUpConfig struct {
	Chance    float64 `yaml:"chance"`
	Offset    float64 `yaml:"offset"` // distance to the right of the paired obstacle
	Size      float64 `yaml:"size"`
	Tolerance float64 `yaml:"tolerance"`
	GhostSecs float64 `yaml:"ghost_secs"`
	CloneSecs float64 `yaml:"clone_secs"`
}

// ThemeConfig defines background epochs and music bands.
type ThemeConfig struct {
	Interval      int     `yaml:"interval"`  // score per background
	BattleAt      int     `yaml:"battle_at"` // exploration while score <= battle_at
	BossAt        int     `yaml:"boss_at"`   // battle while score <= boss_at
	MusicFadeSecs float64 `yaml:"music_fade_secs"`
	MusicVolume   float64 `yaml:"music_volume"`
	BgFadeSecs    float64 `yaml:"bg_fade_secs"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	MaxDT float64 `yaml:"max_dt"`
}

// DifficultyConfig selects a preset and how strongly presets scale the run.
type DifficultyConfig struct {
	Preset  DifficultyPreset `yaml:"preset"`
	Scaling ScalingConfig    `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of preset changes relative to normal.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // scales speed.start and speed.add
	FakeChanceReduction float64 `yaml:"fake_chance_reduction"` // fewer harmless obstacles when harder
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LaneHeight returns the vertical span available to the player.
func (c RunnerConfig) LaneHeight() float64 {
	return c.Canvas.GroundY - c.Canvas.CeilingY
}
