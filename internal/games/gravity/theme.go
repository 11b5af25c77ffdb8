package gravity

import (
	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Track is a music band selected by score.
type Track int

const (
	TrackExploration Track = iota
	TrackBattle
	TrackBoss
)

// Tracks lists every track in band order.
var Tracks = []Track{TrackExploration, TrackBattle, TrackBoss}

func (t Track) String() string {
	switch t {
	case TrackBattle:
		return "battle"
	case TrackBoss:
		return "boss"
	default:
		return "exploration"
	}
}

// TrackFor maps a score to its music band.
func TrackFor(score int, cfg config.ThemeConfig) Track {
	switch {
	case score <= cfg.BattleAt:
		return TrackExploration
	case score <= cfg.BossAt:
		return TrackBattle
	default:
		return TrackBoss
	}
}

// BackgroundFor returns the background index for a score.
func BackgroundFor(score int, cfg config.ThemeConfig, total int) int {
	if total <= 0 || cfg.Interval <= 0 {
		return 0
	}
	return (score / cfg.Interval) % total
}

// Theme is the background epoch and its crossfade.
type Theme struct {
	current  int
	previous int
	fade     float64 // crossfade progress from previous to current, 1 when settled
	track    Track
}

// NewTheme starts on the first background and the exploration track.
func NewTheme() Theme {
	return Theme{fade: 1, track: TrackExploration}
}

// OnScore re-evaluates the background and track after a scoring event.
// It reports whether the track changed.
func (t *Theme) OnScore(score int, cfg config.ThemeConfig, total int) (changed bool) {
	if idx := BackgroundFor(score, cfg, total); idx != t.current {
		// Mid-fade, fade out from whichever image dominates the blend.
		if t.fade >= 0.5 {
			t.previous = t.current
		}
		t.current = idx
		t.fade = 0
	}
	if tr := TrackFor(score, cfg); tr != t.track {
		t.track = tr
		return true
	}
	return false
}

// Advance moves the background crossfade forward.
func (t *Theme) Advance(dt, fadeSecs float64) {
	if t.fade >= 1 {
		return
	}
	if fadeSecs <= 0 {
		t.fade = 1
		return
	}
	t.fade = core.ClampF(t.fade+dt/fadeSecs, 0, 1)
}

// Background returns the current and previous indices and the crossfade progress.
func (t *Theme) Background() (current, previous int, progress float64) {
	return t.current, t.previous, t.fade
}

// Track returns the active music band.
func (t *Theme) Track() Track {
	return t.track
}
