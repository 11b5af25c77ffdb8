package gravity

import (
	"math"
	"testing"

	"github.com/vovakirdan/gravity-runner/internal/config"
)

func flipCfg() config.FlipConfig {
	return config.DefaultRunnerConfig().Flip
}

func TestLaneStateAcceptsFirstFlip(t *testing.T) {
	cfg := flipCfg()
	l := NewLaneState()

	if l.Target() != LaneBottom || l.Lane() != LaneBottom {
		t.Fatal("player should start on the ground")
	}
	if v := l.TryFlip(0, cfg); v != FlipAccepted {
		t.Fatalf("TryFlip = %v, expected accepted", v)
	}
	if l.Target() != LaneTop {
		t.Error("target should be the ceiling after a flip")
	}
	if l.Progress() != 0 {
		t.Errorf("Progress = %v, expected 0", l.Progress())
	}
	if l.Cooldown() != cfg.Cooldown {
		t.Errorf("Cooldown = %v, expected %v", l.Cooldown(), cfg.Cooldown)
	}
	if last, ok := l.LastFlip(); !ok || last != 0 {
		t.Errorf("LastFlip = %v, %v", last, ok)
	}
}

func TestLaneStateRejections(t *testing.T) {
	cfg := flipCfg()

	tests := []struct {
		name    string
		prepare func(l *LaneState) float64 // returns the time of the second attempt
		want    FlipVerdict
	}{
		{
			name: "duplicate within guard",
			prepare: func(l *LaneState) float64 {
				l.TryFlip(1.0, cfg)
				// Even a finished tween without cooldown is debounced.
				l.anim, l.cooldown = 1, 0
				return 1.0 + cfg.DupGuard/2
			},
			want: FlipDebounced,
		},
		{
			name: "mid tween",
			prepare: func(l *LaneState) float64 {
				l.TryFlip(0, cfg)
				l.Advance(0.05, cfg)
				l.cooldown = 0
				return 0.2
			},
			want: FlipMidTween,
		},
		{
			name: "cooling down",
			prepare: func(l *LaneState) float64 {
				l.TryFlip(0, cfg)
				l.anim = 1
				return cfg.DupGuard + 0.01
			},
			want: FlipCoolingDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLaneState()
			at := tt.prepare(&l)
			before := l.Target()
			if v := l.TryFlip(at, cfg); v != tt.want {
				t.Errorf("TryFlip = %v, expected %v", v, tt.want)
			}
			if l.Target() != before {
				t.Error("a rejected flip must not change the target lane")
			}
		})
	}
}

func TestLaneStateReflipAfterTween(t *testing.T) {
	cfg := flipCfg()
	l := NewLaneState()
	l.TryFlip(0, cfg)
	l.Advance(0.1, cfg)
	l.Advance(0.05, cfg)

	if l.Cooldown() != 0 {
		t.Fatalf("cooldown should have decayed, got %v", l.Cooldown())
	}
	before := l.Blend()
	if v := l.TryFlip(0.15, cfg); v != FlipAccepted {
		t.Fatalf("TryFlip = %v, expected accepted", v)
	}
	if l.Target() != LaneBottom {
		t.Error("second flip should head back to the ground")
	}
	if math.Abs(l.Blend()-before) > 1e-9 {
		t.Errorf("re-flip must not jump: blend %v -> %v", before, l.Blend())
	}
}

func TestLaneStateBlendIsContinuous(t *testing.T) {
	cfg := flipCfg()
	l := NewLaneState()
	l.TryFlip(0, cfg)

	prev := l.Blend()
	crossed := false
	for i := 0; i < 300; i++ {
		l.Advance(0.001, cfg)
		b := l.Blend()
		if b < 0 || b > 1 {
			t.Fatalf("blend %v out of range", b)
		}
		if math.Abs(b-prev) > 0.02 {
			t.Fatalf("blend jumped from %v to %v", prev, b)
		}
		if b < prev {
			t.Fatalf("blend should move monotonically towards the ceiling")
		}
		if b > 0.5 && !crossed {
			crossed = true
			if l.Lane() != LaneTop {
				t.Error("blend above the midpoint should count as the top lane")
			}
		}
		prev = b
	}
	if prev != 1 || l.Progress() != 1 {
		t.Errorf("tween should settle at the ceiling, blend=%v progress=%v", prev, l.Progress())
	}
}
