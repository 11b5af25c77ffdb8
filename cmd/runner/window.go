package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-runner/internal/identity"
	"github.com/vovakirdan/gravity-runner/internal/platform/desktop"
	"github.com/vovakirdan/gravity-runner/internal/platform/host"
)

var (
	flagCharacter string
	flagScale     int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a window and start a run right away.

Controls:
  Space/Up/Down/Click/Tap - Flip gravity
  P                       - Pause
  R                       - Restart (after game over)
  F12                     - Save a screenshot
  Esc/Q                   - Quit

Examples:
  runner window
  runner window --character cat --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagCharacter, "character", "", "Runner id (see 'runner characters')")
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Initial window size as a multiple of the canvas")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
}

func runWindow(_ *cobra.Command, _ []string) error {
	ch, err := findCharacter(flagCharacter)
	if err != nil {
		return err
	}

	a, err := newApp(appOptions{audio: !flagMute, store: true})
	if err != nil {
		return err
	}
	defer a.close()

	rt := a.runtime(a.cfg.Canvas.Width, a.cfg.Canvas.Height)
	session, err := host.New(a.hostOptions(ch, a.preset, identity.Local(), rt))
	if err != nil {
		return err
	}
	return desktop.Run(session, desktop.Options{Scale: flagScale, ShotDir: "."})
}
