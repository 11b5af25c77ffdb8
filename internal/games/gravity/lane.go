package gravity

import (
	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
)

// FlipVerdict is the outcome of a flip attempt.
type FlipVerdict int

const (
	FlipAccepted FlipVerdict = iota
	FlipDebounced
	FlipMidTween
	FlipCoolingDown
)

func (v FlipVerdict) String() string {
	switch v {
	case FlipAccepted:
		return "accepted"
	case FlipDebounced:
		return "debounced"
	case FlipMidTween:
		return "mid-tween"
	case FlipCoolingDown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// LaneState is the gravity state machine. The player is never on a lane
// discretely: its position is an eased blend from the lane indicator it left
// (0 = ground, 1 = ceiling) towards the target lane.
type LaneState struct {
	inverted bool    // target lane is the ceiling
	from     float64 // blend value when the current tween started
	anim     float64 // tween progress in [0, 1]
	cooldown float64 // seconds until the next flip may be accepted
	lastFlip float64 // sim time of the last accepted flip
	flipped  bool    // whether any flip was accepted this run
}

// NewLaneState returns a player resting on the ground.
func NewLaneState() LaneState {
	return LaneState{anim: 1}
}

// TryFlip evaluates a pending flip at sim time now.
func (l *LaneState) TryFlip(now float64, cfg config.FlipConfig) FlipVerdict {
	if l.flipped && now-l.lastFlip < cfg.DupGuard {
		return FlipDebounced
	}
	if l.anim < cfg.MinTweenToReflip {
		return FlipMidTween
	}
	if l.cooldown > 0 {
		return FlipCoolingDown
	}

	l.from = l.Blend()
	l.inverted = !l.inverted
	l.anim = 0
	l.cooldown = cfg.Cooldown
	l.lastFlip = now
	l.flipped = true
	return FlipAccepted
}

// Advance moves the tween forward and decays the cooldown.
func (l *LaneState) Advance(dt float64, cfg config.FlipConfig) {
	if cfg.TweenSecs > 0 {
		l.anim = core.ClampF(l.anim+dt/cfg.TweenSecs, 0, 1)
	} else {
		l.anim = 1
	}
	l.cooldown = core.ClampF(l.cooldown-dt, 0, cfg.Cooldown)
}

// ClearCooldown drops any remaining cooldown.
func (l *LaneState) ClearCooldown() {
	l.cooldown = 0
}

// Blend returns the eased lane indicator: 0 is the ground, 1 the ceiling.
func (l *LaneState) Blend() float64 {
	return core.Lerp(l.from, l.targetIndicator(), core.EaseInOut(l.anim))
}

// Lane returns the lane used for collision (blend above the midpoint is the top).
func (l *LaneState) Lane() Lane {
	if l.Blend() > 0.5 {
		return LaneTop
	}
	return LaneBottom
}

// Target returns the lane the player is heading to.
func (l *LaneState) Target() Lane {
	if l.inverted {
		return LaneTop
	}
	return LaneBottom
}

// Progress returns the tween progress.
func (l *LaneState) Progress() float64 {
	return l.anim
}

// Cooldown returns the remaining flip cooldown.
func (l *LaneState) Cooldown() float64 {
	return l.cooldown
}

// LastFlip returns the sim time of the last accepted flip and whether one happened.
func (l *LaneState) LastFlip() (float64, bool) {
	return l.lastFlip, l.flipped
}

func (l *LaneState) targetIndicator() float64 {
	if l.inverted {
		return 1
	}
	return 0
}
