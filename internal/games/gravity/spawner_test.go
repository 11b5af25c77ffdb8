package gravity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gravity-runner/internal/config"
)

func newTestSpawner(mutate func(c *config.RunnerConfig)) (*Spawner, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSpawner(&cfg, rand.New(rand.NewSource(1))), &cfg
}

// drain advances the spawner in small steps until it emits something.
func drain(t *testing.T, s *Spawner, step float64) (Spawn, float64) {
	t.Helper()
	traveled := 0.0
	for i := 0; i < 100000; i++ {
		traveled += step
		if out := s.Advance(step); out.Kind != SpawnNone {
			return out, traveled
		}
	}
	t.Fatal("spawner never emitted")
	return Spawn{}, 0
}

func TestSpawnerIntervalRange(t *testing.T) {
	s, cfg := newTestSpawner(nil)
	for i := 0; i < 200; i++ {
		d := s.interval()
		if d < cfg.Spawn.Min || d > cfg.Spawn.Max {
			t.Fatalf("interval %v outside [%v, %v]", d, cfg.Spawn.Min, cfg.Spawn.Max)
		}
	}
}

func TestSpawnerNormalObstacle(t *testing.T) {
	s, cfg := newTestSpawner(func(c *config.RunnerConfig) {
		c.Obstacles.FakeChance = 0
		c.Obstacles.DynamicChance = 0
		c.PowerUps.Chance = 0
	})

	if out := s.Advance(s.Distance() - 1); out.Kind != SpawnNone {
		t.Fatal("nothing should spawn before the distance runs out")
	}
	out := s.Advance(1)
	if out.Kind != SpawnObstacle {
		t.Fatalf("Kind = %v, expected obstacle", out.Kind)
	}
	o := out.Obstacle
	w := float64(cfg.Canvas.Width)
	if o.X < w || o.X > w+cfg.Obstacles.SpawnJitter {
		t.Errorf("obstacle X = %v, expected within [%v, %v]", o.X, w, w+cfg.Obstacles.SpawnJitter)
	}
	if o.Fake || o.Behavior != BehaviorStatic || out.Pickup != nil {
		t.Errorf("zero chances should give a plain obstacle, got %+v pickup=%v", o, out.Pickup)
	}
	if d := s.Distance(); d < cfg.Spawn.Min || d > cfg.Spawn.Max {
		t.Errorf("next distance %v not redrawn from the spawn range", d)
	}
}

func TestSpawnerPickupCompanion(t *testing.T) {
	s, cfg := newTestSpawner(func(c *config.RunnerConfig) {
		c.PowerUps.Chance = 1
	})
	out, _ := drain(t, s, 10)
	if out.Pickup == nil {
		t.Fatal("pickup chance 1 should always add a pickup")
	}
	if out.Pickup.X != out.Obstacle.X+cfg.PowerUps.Offset {
		t.Errorf("pickup X = %v, expected obstacle X + %v", out.Pickup.X, cfg.PowerUps.Offset)
	}
}

func TestSpawnerGateThenSafeZoneThenFake(t *testing.T) {
	s, cfg := newTestSpawner(func(c *config.RunnerConfig) {
		c.Obstacles.FakeChance = 0
	})

	s.ScheduleGate()
	out, _ := drain(t, s, 5)
	if out.Kind != SpawnGate {
		t.Fatalf("Kind = %v, expected gate", out.Kind)
	}
	g := out.Gate
	if g.HolePosition != 0 || g.HoleHeight != cfg.Player.Height || g.Width != cfg.Gates.Width {
		t.Errorf("unexpected first gate %+v", g)
	}
	if s.GateScheduled() {
		t.Error("the gate should consume the schedule")
	}

	// Another gate request right away must wait for the safe zone and the
	// forced fake obstacle.
	s.ScheduleGate()
	out, traveled := drain(t, s, 5)
	if out.Kind != SpawnObstacle {
		t.Fatalf("Kind = %v, expected the forced obstacle after a gate", out.Kind)
	}
	if !out.Obstacle.Fake {
		t.Error("the obstacle right after a gate must be fake")
	}
	if traveled < cfg.Gates.SafeDistance {
		t.Errorf("spawned after %v px, inside the %v px safe zone", traveled, cfg.Gates.SafeDistance)
	}

	out, _ = drain(t, s, 5)
	if out.Kind != SpawnGate {
		t.Fatalf("Kind = %v, expected the pending gate", out.Kind)
	}
	if out.Gate.HolePosition != 1 {
		t.Errorf("hole should alternate to the ground, got %v", out.Gate.HolePosition)
	}

	out, _ = drain(t, s, 5)
	if out.Kind != SpawnObstacle || !out.Obstacle.Fake {
		t.Errorf("second gate must also be followed by a fake obstacle, got %+v", out)
	}
	out, _ = drain(t, s, 5)
	if out.Kind != SpawnObstacle || out.Obstacle.Fake {
		t.Errorf("with fake chance 0, later obstacles are real, got %+v", out.Obstacle)
	}
}

func TestSpawnerNoBackToBackGates(t *testing.T) {
	s, cfg := newTestSpawner(nil)
	rng := rand.New(rand.NewSource(99))

	lastGate := -1.0
	traveled := 0.0
	sawFake := true
	for i := 0; i < 20000; i++ {
		if rng.Intn(50) == 0 {
			s.ScheduleGate()
		}
		step := 1 + rng.Float64()*20
		traveled += step
		out := s.Advance(step)
		switch out.Kind {
		case SpawnGate:
			if lastGate >= 0 && traveled-lastGate < cfg.Gates.SafeDistance {
				t.Fatalf("gates %v px apart, safe distance is %v", traveled-lastGate, cfg.Gates.SafeDistance)
			}
			if !sawFake {
				t.Fatal("a gate followed a gate without the fake obstacle in between")
			}
			lastGate = traveled
			sawFake = false
		case SpawnObstacle:
			if !sawFake && !out.Obstacle.Fake {
				t.Fatal("first obstacle after a gate was real")
			}
			sawFake = true
		}
	}
	if lastGate < 0 {
		t.Fatal("expected at least one gate")
	}
}
