// Package gravity implements a gravity-flip side-scrolling runner.
// The player holds either the ceiling or the ground lane and flips between
// them to dodge scrolling hydrants and to thread gates, while score drives
// speed, backgrounds and music.
package gravity

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/registry"
)

// ErrNotReady is returned when a run is requested before the game holds a
// valid configuration.
var ErrNotReady = errors.New("gravity: game is not configured")

// Stats is the live telemetry emitted every running frame.
type Stats struct {
	Score   int
	Speed   float64
	Stopped bool
}

// Hooks are host callbacks. Either may be nil.
type Hooks struct {
	OnStats    func(Stats)
	OnGameOver func(finalScore int)
}

// RunState is the per-run progress owned by the step function.
type RunState struct {
	Score     int
	Speed     float64
	PeakSpeed float64
	Elapsed   float64 // sim seconds since the run started
	stopped   bool
	finalized bool
}

// Game implements the gravity runner.
type Game struct {
	cfg       config.RunnerConfig
	rt        core.RuntimeConfig
	character Character
	media     Media
	music     *Music
	hooks     Hooks
	rng       *rand.Rand

	run      RunState
	arbiter  FlipArbiter
	lane     LaneState
	spawner  *Spawner
	power    PowerUps
	theme    Theme
	entities []Entity
	pickups  []*Pickup

	locked     bool
	highScore  int
	configured bool
	clock      float64 // presentation clock, keeps running after game over
}

// New creates an unconfigured game using the default character and config.
func New() *Game {
	return &Game{
		cfg:       config.DefaultRunnerConfig(),
		character: DefaultCharacter(),
		music:     NewMusic(nil, 0, 0),
		lane:      NewLaneState(),
		theme:     NewTheme(),
		run:       RunState{stopped: true, finalized: true},
	}
}

func init() {
	registry.Register(registry.Entry{
		ID:      "gravity",
		Title:   "Gravity Runner",
		Summary: "flip gravity to dodge obstacles between two lanes",
		New:     func() registry.Game { return New() },
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gravity"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gravity Runner"
}

// SetMedia attaches the image source. Nil means flat-color rendering.
func (g *Game) SetMedia(m Media) {
	g.media = m
}

// SetAudio attaches the music output. Nil silences music.
func (g *Game) SetAudio(sink AudioSink) {
	g.music = NewMusic(sink, g.cfg.Theme.MusicVolume, g.cfg.Theme.MusicFadeSecs)
}

// SetHooks installs host callbacks.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// SetHighScore seeds the best score, e.g. from storage.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Configure validates and installs tunables and the character for later runs.
func (g *Game) Configure(ch Character, cfg config.RunnerConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("gravity: %w", err)
	}
	g.cfg = cfg
	g.character = ch
	g.configured = true

	var sink AudioSink = nullSink{}
	if g.music != nil {
		sink = g.music.sink
	}
	g.music = NewMusic(sink, cfg.Theme.MusicVolume, cfg.Theme.MusicFadeSecs)
	return nil
}

// Start configures the game and begins a run.
func (g *Game) Start(ch Character, cfg config.RunnerConfig, rt core.RuntimeConfig) error {
	if err := g.Configure(ch, cfg); err != nil {
		return err
	}
	return g.Reset(rt)
}

// Reset begins a fresh run with the configured character and tunables.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	if !g.configured {
		if err := g.Configure(g.character, g.cfg); err != nil {
			return fmt.Errorf("%w: %w", ErrNotReady, err)
		}
	}

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rt = rt
	g.rng = rand.New(rand.NewSource(seed))

	g.run = RunState{Speed: g.cfg.Speed.Start, PeakSpeed: g.cfg.Speed.Start}
	g.arbiter.Clear()
	g.lane = NewLaneState()
	g.spawner = NewSpawner(&g.cfg, g.rng)
	g.power = PowerUps{}
	g.theme = NewTheme()
	g.entities = g.entities[:0]
	g.pickups = g.pickups[:0]

	g.music.Start(g.theme.Track())
	return nil
}

// HandleAction routes a semantic action to the game.
func (g *Game) HandleAction(a core.Action) {
	if a == core.ActionFlip {
		g.RequestFlip()
	}
}

// RequestFlip asks for a lane flip on the next step.
func (g *Game) RequestFlip() {
	g.arbiter.Request(g.run.stopped || g.locked)
}

// SetLocked gates play. While locked, input is ignored and steps do nothing.
func (g *Game) SetLocked(locked bool) {
	g.locked = locked
	if locked {
		g.arbiter.Clear()
	}
}

// Locked reports whether play is gated.
func (g *Game) Locked() bool {
	return g.locked
}

// Loading reports whether required sprites are still loading.
func (g *Game) Loading() bool {
	return g.media != nil && !g.media.Ready()
}

// Step advances the run by dt seconds.
func (g *Game) Step(dt float64) core.StepResult {
	if g.run.stopped || g.locked || g.Loading() {
		return core.StepResult{State: g.State()}
	}
	if !core.Finite(dt) || dt < 0 {
		dt = 0
	}
	g.run.Elapsed += dt
	now := g.run.Elapsed

	// Input, then gravity: a flip accepted now affects this frame's collisions.
	if g.arbiter.Drain() {
		g.lane.TryFlip(now, g.cfg.Flip)
	}
	g.lane.Advance(dt, g.cfg.Flip)

	travel := g.run.Speed * dt
	g.physics(dt, travel)

	if !g.run.stopped {
		g.spawn(travel)
		if g.power.GhostExpired(now) {
			g.lane.ClearCooldown()
		}
		if g.hooks.OnStats != nil {
			g.hooks.OnStats(g.stats())
		}
	}

	return core.StepResult{State: g.State()}
}

// Present advances presentation timers: background crossfade and audio fades.
// It runs every frame, including after game over.
func (g *Game) Present(dt float64) {
	if !core.Finite(dt) || dt < 0 {
		dt = 0
	}
	g.clock += dt
	g.theme.Advance(dt, g.cfg.Theme.BgFadeSecs)
	g.music.Advance(dt)
}

// spawn feeds travel to the spawner and adds whatever it emits.
func (g *Game) spawn(travel float64) {
	s := g.spawner.Advance(travel)
	switch s.Kind {
	case SpawnGate:
		g.entities = append(g.entities, s.Gate)
	case SpawnObstacle:
		g.entities = append(g.entities, s.Obstacle)
		if s.Pickup != nil {
			g.pickups = append(g.pickups, s.Pickup)
		}
	}
}

// gameOver stops the run. The OnGameOver hook fires at most once per run.
func (g *Game) gameOver() {
	g.run.stopped = true
	if g.run.finalized {
		return
	}
	g.run.finalized = true
	if g.run.Score > g.highScore {
		g.highScore = g.run.Score
	}
	g.arbiter.Clear()
	g.music.FadeOut()
	if g.hooks.OnStats != nil {
		g.hooks.OnStats(g.stats())
	}
	if g.hooks.OnGameOver != nil {
		g.hooks.OnGameOver(g.run.Score)
	}
}

func (g *Game) stats() Stats {
	return Stats{Score: g.run.Score, Speed: g.run.Speed, Stopped: g.run.stopped}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.run.Score,
		Speed:     g.run.Speed,
		HighScore: g.highScore,
		GameOver:  g.run.stopped,
		Locked:    g.locked,
		Loading:   g.Loading(),
	}
}

// Run returns a copy of the run progress.
func (g *Game) Run() RunState {
	return g.run
}

// Character returns the configured character.
func (g *Game) Character() Character {
	return g.character
}

// Config returns the active tunables.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// CanvasSize returns the logical render resolution.
func (g *Game) CanvasSize() (w, h int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// PowerRemaining returns seconds left on a power-up.
func (g *Game) PowerRemaining(kind PowerKind) float64 {
	return g.power.Remaining(kind, g.run.Elapsed)
}

// Track returns the current music band.
func (g *Game) Track() Track {
	return g.theme.Track()
}
