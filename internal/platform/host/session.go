// Package host wires a gravity run to everything around it: the frame
// driver, persistence, telemetry and the identity gate. Terminal, SSH and
// window hosts all drive a Session.
package host

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
	"github.com/vovakirdan/gravity-runner/internal/identity"
	"github.com/vovakirdan/gravity-runner/internal/storage"
	"github.com/vovakirdan/gravity-runner/internal/telemetry"
)

// Publisher receives live snapshots. *telemetry.Hub implements it.
type Publisher interface {
	Publish(telemetry.Snapshot)
}

// RunStore persists finished runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(storage.RunRecord) (bool, error)
	HighScore(gameID string) (int, error)
}

// Options configure a Session. Config and Character are required; Config is
// used as given, so callers apply Preset to it first. A zero Gate
// keeps the game locked; the remaining fields may be nil.
type Options struct {
	Config    config.RunnerConfig
	Preset    config.DifficultyPreset
	Character gravity.Character
	Runtime   core.RuntimeConfig
	Gate      identity.Gate

	Store     RunStore
	Publisher Publisher
	Media     gravity.Media
	Audio     gravity.AudioSink
	Logger    *log.Logger
}

// Session owns one game and its frame driver.
type Session struct {
	opts   Options
	game   *gravity.Game
	driver *core.Driver
	logger *log.Logger

	runID   string
	started time.Time
	paused  bool
	saved   int // runs persisted during this session
}

// New starts the first run. It fails only when the config is invalid.
func New(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := gravity.New()
	g.SetMedia(opts.Media)
	g.SetAudio(opts.Audio)

	s := &Session{opts: opts, game: g, logger: logger}
	g.SetHooks(gravity.Hooks{
		OnStats:    s.publishStats,
		OnGameOver: s.finishRun,
	})

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(g.ID()); err != nil {
			logger.Warn("cannot read high score", "error", err)
		} else {
			g.SetHighScore(best)
		}
	}

	w, h := opts.Config.Canvas.Width, opts.Config.Canvas.Height
	s.driver = core.NewDriver(g, core.NewCanvas(w, h), opts.Config.Loop.MaxDT)

	s.runID = storage.NewRunID()
	if err := g.Start(opts.Character, opts.Config, opts.Runtime); err != nil {
		return nil, err
	}
	s.started = time.Now()
	s.applyLock()
	s.logger.Info("run started",
		"run", s.runID,
		"player", opts.Gate.DisplayName,
		"character", opts.Character.ID,
		"preset", string(opts.Preset),
	)
	return s, nil
}

// Frame runs one host frame.
func (s *Session) Frame(now time.Time) core.GameState {
	return s.driver.Frame(now)
}

// Flip forwards a flip request. Dropped silently when the run cannot take it.
func (s *Session) Flip() {
	s.game.HandleAction(core.ActionFlip)
}

// TogglePause pauses or resumes through the game's lock.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.applyLock()
}

// Paused reports whether the player paused the run.
func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) applyLock() {
	s.game.SetLocked(s.paused || !s.opts.Gate.CanPlay)
}

// Restart begins a new run with a fresh run id and seed. It is refused
// while the current run is still going.
func (s *Session) Restart() error {
	if !s.game.State().GameOver {
		return errors.New("host: run still in progress")
	}
	rt := s.opts.Runtime
	rt.Seed = 0
	if err := s.game.Reset(rt); err != nil {
		return err
	}
	s.runID = storage.NewRunID()
	s.started = time.Now()
	s.paused = false
	s.applyLock()
	s.driver.Restart()
	s.logger.Info("run restarted", "run", s.runID)
	return nil
}

// Stop cancels further frames.
func (s *Session) Stop() {
	s.driver.Stop()
}

// Running reports whether frames should keep being scheduled.
func (s *Session) Running() bool {
	return s.driver.Running()
}

func (s *Session) publishStats(st gravity.Stats) {
	if s.opts.Publisher == nil {
		return
	}
	s.opts.Publisher.Publish(telemetry.Snapshot{
		RunID:   s.runID,
		Player:  s.opts.Gate.DisplayName,
		Score:   st.Score,
		Speed:   st.Speed,
		Stopped: st.Stopped,
	})
}

// finishRun records the run. The game fires it once per run and the store
// ignores repeated run ids, so a run is never counted twice.
func (s *Session) finishRun(finalScore int) {
	run := s.game.Run()
	s.logger.Info("game over",
		"run", s.runID,
		"score", finalScore,
		"speed", int(run.PeakSpeed),
		"duration", fmt.Sprintf("%.1fs", run.Elapsed),
	)

	if s.opts.Publisher != nil {
		final := finalScore
		s.opts.Publisher.Publish(telemetry.Snapshot{
			RunID:      s.runID,
			Player:     s.opts.Gate.DisplayName,
			Score:      finalScore,
			Speed:      run.Speed,
			Stopped:    true,
			FinalScore: &final,
		})
	}

	if s.opts.Store == nil || !s.opts.Gate.CanPlay {
		return
	}
	saved, err := s.opts.Store.SaveRun(storage.RunRecord{
		RunID:        s.runID,
		GameID:       s.game.ID(),
		Player:       s.opts.Gate.DisplayName,
		Character:    s.game.Character().ID,
		Preset:       string(s.opts.Preset),
		Score:        finalScore,
		PeakSpeed:    run.PeakSpeed,
		DurationSecs: run.Elapsed,
	})
	if err != nil {
		s.logger.Warn("cannot save run", "run", s.runID, "error", err)
		return
	}
	if saved {
		s.saved++
	}
}

// Screenshot writes the current frame as a PNG into dir and returns its path.
func (s *Session) Screenshot(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("host: screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.png", s.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("host: screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, s.driver.Canvas().Image()); err != nil {
		return "", fmt.Errorf("host: screenshot: %w", err)
	}
	return path, nil
}

// Game returns the running game.
func (s *Session) Game() *gravity.Game {
	return s.game
}

// Canvas returns the render target.
func (s *Session) Canvas() *core.Canvas {
	return s.driver.Canvas()
}

// RunID returns the current run id.
func (s *Session) RunID() string {
	return s.runID
}

// Gate returns the identity gate.
func (s *Session) Gate() identity.Gate {
	return s.opts.Gate
}

// SavedRuns returns how many runs this session persisted.
func (s *Session) SavedRuns() int {
	return s.saved
}

// Status returns the HUD lines plus host state for text status bars.
func (s *Session) Status() []string {
	lines := s.game.HUDLines()
	if s.paused {
		lines = append(lines, "PAUSED")
	}
	if !s.opts.Gate.CanPlay && s.opts.Gate.Reason != "" {
		lines = append(lines, s.opts.Gate.Reason)
	}
	return lines
}
