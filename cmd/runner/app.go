package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-runner/internal/assets"
	"github.com/vovakirdan/gravity-runner/internal/audio"
	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
	"github.com/vovakirdan/gravity-runner/internal/identity"
	"github.com/vovakirdan/gravity-runner/internal/logging"
	"github.com/vovakirdan/gravity-runner/internal/platform/host"
	"github.com/vovakirdan/gravity-runner/internal/platform/tui"
	"github.com/vovakirdan/gravity-runner/internal/storage"
	"github.com/vovakirdan/gravity-runner/internal/telemetry"
)

// appOptions select which services a command needs.
type appOptions struct {
	logPath string // empty logs to stderr
	audio   bool
	store   bool
}

// app holds the services shared by the play, window and serve commands.
type app struct {
	cfg    config.RunnerConfig
	preset config.DifficultyPreset
	logger *log.Logger

	logFile io.Closer
	store   *storage.Store
	media   *assets.Library
	player  *audio.Player
	hub     *telemetry.Hub

	ctx    context.Context
	cancel context.CancelFunc
}

func newApp(opts appOptions) (*app, error) {
	a := &app{}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	var err error
	if opts.logPath != "" {
		a.logger, a.logFile, err = logging.OpenFile(opts.logPath, "runner", flagLogLevel)
	} else {
		a.logger, err = logging.New(os.Stderr, "runner", flagLogLevel)
	}
	if err != nil {
		a.close()
		return nil, err
	}

	if a.cfg, err = config.LoadRunner(flagConfig); err != nil {
		a.close()
		return nil, err
	}
	if err := a.cfg.Validate(); err != nil {
		a.close()
		return nil, err
	}
	presetName := flagDifficulty
	if presetName == "" {
		presetName = string(a.cfg.Difficulty.Preset)
	}
	if a.preset, err = config.ParsePreset(presetName); err != nil {
		a.close()
		return nil, err
	}

	if opts.store {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - the game still works
			a.logger.Warn("could not open scores database", "error", err)
		} else {
			a.store = store
		}
	}

	fsys := os.DirFS(flagAssets)
	a.media = assets.New(fsys, a.logger.WithPrefix("assets"))
	a.media.Load(a.ctx, allSprites())

	if opts.audio {
		player := audio.New(fsys, a.logger.WithPrefix("audio"))
		if err := player.Start(); err != nil {
			a.logger.Warn("no audio output, playing silent", "error", err)
		} else {
			a.player = player
		}
	}

	if flagTelemetry != "" {
		a.hub = telemetry.NewHub(a.logger.WithPrefix("telemetry"))
		go func() {
			if err := telemetry.Serve(a.ctx, flagTelemetry, a.hub); err != nil {
				a.logger.Error("telemetry server stopped", "error", err)
			}
		}()
	}

	return a, nil
}

// allSprites lists every sprite any runner may need.
func allSprites() []string {
	seen := make(map[string]bool)
	var names []string
	for _, ch := range gravity.Characters() {
		for _, name := range gravity.SpriteNames(ch) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func (a *app) runtime(width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = width, height
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// hostOptions builds session options. Nil services stay nil interfaces.
func (a *app) hostOptions(ch gravity.Character, preset config.DifficultyPreset, gate identity.Gate, rt core.RuntimeConfig) host.Options {
	cfg := a.cfg
	config.ApplyPreset(&cfg, preset)
	opts := host.Options{
		Config:    cfg,
		Preset:    preset,
		Character: ch,
		Runtime:   rt,
		Gate:      gate,
		Media:     a.media,
		Logger:    a.logger,
	}
	if a.store != nil {
		opts.Store = a.store
	}
	if a.hub != nil {
		opts.Publisher = a.hub
	}
	if a.player != nil {
		opts.Audio = a.player
	}
	return opts
}

// starter returns the menu's session factory for gate.
func (a *app) starter(gate identity.Gate) tui.StartFunc {
	return func(ch gravity.Character, preset config.DifficultyPreset, rt core.RuntimeConfig) (*host.Session, error) {
		return host.New(a.hostOptions(ch, preset, gate, rt))
	}
}

func (a *app) board() tui.Leaderboard {
	if a.store == nil {
		return nil
	}
	return a.store
}

func (a *app) publisher() host.Publisher {
	if a.hub == nil {
		return nil
	}
	return a.hub
}

func (a *app) close() {
	a.cancel()
	if a.player != nil {
		a.player.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing scores database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// findCharacter looks up a runner by id.
func findCharacter(id string) (gravity.Character, error) {
	if id == "" {
		return gravity.DefaultCharacter(), nil
	}
	for _, ch := range gravity.Characters() {
		if ch.ID == id {
			return ch, nil
		}
	}
	return gravity.Character{}, fmt.Errorf("unknown runner %q (see 'runner characters')", id)
}
