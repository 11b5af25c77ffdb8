package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/identity"
	"github.com/vovakirdan/gravity-runner/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal with the runner picker menu.

Controls:
  Space/Up/Down  - Flip gravity
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Back to menu (paused or after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start and acceleration, more fake gates
  normal - The values from the config file
  hard   - Faster start and acceleration, fewer fake gates
  fixed  - No acceleration

Logs go to ~/.gravity-runner/runner.log while the terminal is in use.

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := newApp(appOptions{
		logPath: config.UserPath("runner.log"),
		audio:   !flagMute,
		store:   true,
	})
	if err != nil {
		return err
	}
	defer a.close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gate := identity.Local()
	return tui.Run(tui.SessionOptions{
		Start:   a.starter(gate),
		Board:   a.board(),
		Player:  gate.DisplayName,
		Preset:  a.preset,
		Runtime: a.runtime(width, height),
		ShotDir: ".",
	})
}
