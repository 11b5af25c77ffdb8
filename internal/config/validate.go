package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid runner config")

// Validate checks that every constant is finite and that the ranges are
// coherent. It reports the first problem found.
func (c RunnerConfig) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"canvas.ceiling_y", c.Canvas.CeilingY},
		{"canvas.ground_y", c.Canvas.GroundY},
		{"player.x", c.Player.X},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.spawn_jitter", c.Obstacles.SpawnJitter},
		{"obstacles.cull_margin", c.Obstacles.CullMargin},
		{"obstacles.fake_chance", c.Obstacles.FakeChance},
		{"obstacles.dynamic_chance", c.Obstacles.DynamicChance},
		{"speed.start", c.Speed.Start},
		{"speed.add", c.Speed.Add},
		{"speed.max", c.Speed.Max},
		{"spawn.min", c.Spawn.Min},
		{"spawn.max", c.Spawn.Max},
		{"flip.tween_secs", c.Flip.TweenSecs},
		{"flip.min_tween_to_reflip", c.Flip.MinTweenToReflip},
		{"flip.cooldown", c.Flip.Cooldown},
		{"flip.dup_guard", c.Flip.DupGuard},
		{"flip.style_window", c.Flip.StyleWindow},
		{"gates.width", c.Gates.Width},
		{"gates.safe_distance", c.Gates.SafeDistance},
		{"gates.hole_epsilon", c.Gates.HoleEpsilon},
		{"powerups.chance", c.PowerUps.Chance},
		{"powerups.offset", c.PowerUps.Offset},
		{"powerups.size", c.PowerUps.Size},
		{"powerups.tolerance", c.PowerUps.Tolerance},
		{"powerups.ghost_secs", c.PowerUps.GhostSecs},
		{"powerups.clone_secs", c.PowerUps.CloneSecs},
		{"theme.music_fade_secs", c.Theme.MusicFadeSecs},
		{"theme.music_volume", c.Theme.MusicVolume},
		{"theme.bg_fade_secs", c.Theme.BgFadeSecs},
		{"loop.max_dt", c.Loop.MaxDT},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalid, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalid, f.name)
		}
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"canvas.width", float64(c.Canvas.Width)},
		{"canvas.height", float64(c.Canvas.Height)},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"speed.start", c.Speed.Start},
		{"spawn.min", c.Spawn.Min},
		{"flip.tween_secs", c.Flip.TweenSecs},
		{"gates.width", c.Gates.Width},
		{"gates.score_interval", float64(c.Gates.ScoreInterval)},
		{"theme.interval", float64(c.Theme.Interval)},
		{"loop.max_dt", c.Loop.MaxDT},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, p.name)
		}
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"obstacles.fake_chance", c.Obstacles.FakeChance},
		{"obstacles.dynamic_chance", c.Obstacles.DynamicChance},
		{"powerups.chance", c.PowerUps.Chance},
		{"flip.min_tween_to_reflip", c.Flip.MinTweenToReflip},
		{"theme.music_volume", c.Theme.MusicVolume},
	} {
		if p.v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1]", ErrInvalid, p.name)
		}
	}

	switch {
	case c.Speed.Start > c.Speed.Max:
		return fmt.Errorf("%w: speed.start %.0f exceeds speed.max %.0f", ErrInvalid, c.Speed.Start, c.Speed.Max)
	case c.Spawn.Min > c.Spawn.Max:
		return fmt.Errorf("%w: spawn.min %.0f exceeds spawn.max %.0f", ErrInvalid, c.Spawn.Min, c.Spawn.Max)
	case c.Canvas.GroundY > float64(c.Canvas.Height) || c.Canvas.CeilingY >= c.Canvas.GroundY:
		return fmt.Errorf("%w: lanes must satisfy ceiling_y < ground_y <= height", ErrInvalid)
	case c.LaneHeight() < c.Player.Height:
		return fmt.Errorf("%w: lane span %.0f is shorter than the player", ErrInvalid, c.LaneHeight())
	case c.Theme.BattleAt > c.Theme.BossAt:
		return fmt.Errorf("%w: theme.battle_at exceeds theme.boss_at", ErrInvalid)
	}
	return nil
}
