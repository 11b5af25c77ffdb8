package gravity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gravity-runner/internal/config"
)

// SpawnKind tells what the spawner emitted.
type SpawnKind int

const (
	SpawnNone SpawnKind = iota
	SpawnGate
	SpawnObstacle
)

// Spawn is the result of one spawner decision.
type Spawn struct {
	Kind     SpawnKind
	Gate     *Gate
	Obstacle *Obstacle
	Pickup   *Pickup // optional companion of an obstacle
}

// Spawner decides, by traveled distance, when to emit the next entity.
type Spawner struct {
	cfg *config.RunnerConfig
	rng *rand.Rand

	distance      float64 // travel left before the next decision
	gateScheduled bool
	safeRemaining float64 // post-gate travel during which nothing spawns
	forceFake     bool    // the next obstacle must be fake
	holeBottom    bool    // next gate hole goes against the ground
}

// NewSpawner creates a spawner with a fresh first interval.
func NewSpawner(cfg *config.RunnerConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.distance = s.interval()
	return s
}

// ScheduleGate arms a gate for the next eligible decision.
func (s *Spawner) ScheduleGate() {
	s.gateScheduled = true
}

// Advance consumes travel and emits at most one spawn.
func (s *Spawner) Advance(travel float64) Spawn {
	s.distance -= travel
	s.safeRemaining = math.Max(0, s.safeRemaining-travel)
	if s.distance > 0 {
		return Spawn{}
	}

	switch {
	case s.gateScheduled && s.safeRemaining <= 0 && !s.forceFake:
		gate := s.spawnGate()
		s.distance = s.interval()
		return Spawn{Kind: SpawnGate, Gate: gate}

	case s.safeRemaining > 0:
		// Decide again when the safe zone ends or after a normal cadence,
		// whichever comes first.
		s.distance = math.Min(s.safeRemaining, s.interval())
		return Spawn{}

	default:
		fake := s.forceFake || s.rng.Float64() < s.cfg.Obstacles.FakeChance
		s.forceFake = false
		out := Spawn{Kind: SpawnObstacle, Obstacle: s.spawnObstacle(fake)}
		if s.rng.Float64() < s.cfg.PowerUps.Chance {
			out.Pickup = &Pickup{
				X:    out.Obstacle.X + s.cfg.PowerUps.Offset,
				Lane: s.lane(),
				Kind: PowerKind(s.rng.Intn(int(powerKinds))),
			}
		}
		s.distance = s.interval()
		return out
	}
}

func (s *Spawner) spawnGate() *Gate {
	pos := 0.0
	if s.holeBottom {
		pos = 1
	}
	s.holeBottom = !s.holeBottom
	s.gateScheduled = false
	s.safeRemaining = s.cfg.Gates.SafeDistance
	s.forceFake = true

	return &Gate{
		X:            float64(s.cfg.Canvas.Width),
		Width:        s.cfg.Gates.Width,
		HoleHeight:   s.cfg.Player.Height,
		HolePosition: pos,
	}
}

func (s *Spawner) spawnObstacle(fake bool) *Obstacle {
	o := &Obstacle{
		X:     float64(s.cfg.Canvas.Width) + s.rng.Float64()*s.cfg.Obstacles.SpawnJitter,
		Lane:  s.lane(),
		Color: HydrantColor(s.rng.Intn(int(hydrantColors))),
		Fake:  fake,
	}
	if s.rng.Float64() < s.cfg.Obstacles.DynamicChance {
		o.Behavior = dynamicBehaviors[s.rng.Intn(len(dynamicBehaviors))]
	}
	return o
}

func (s *Spawner) lane() Lane {
	if s.rng.Intn(2) == 0 {
		return LaneBottom
	}
	return LaneTop
}

// interval draws a uniform spawn distance in [min, max].
func (s *Spawner) interval() float64 {
	return s.cfg.Spawn.Min + s.rng.Float64()*(s.cfg.Spawn.Max-s.cfg.Spawn.Min)
}

// Distance returns the travel left before the next decision.
func (s *Spawner) Distance() float64 {
	return s.distance
}

// GateScheduled reports whether a gate is armed.
func (s *Spawner) GateScheduled() bool {
	return s.gateScheduled
}

// SafeRemaining returns the post-gate travel still protected.
func (s *Spawner) SafeRemaining() float64 {
	return s.safeRemaining
}
