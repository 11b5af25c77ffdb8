// runner is a gravity-flip endless runner for terminals, windows and SSH.
//
// Usage:
//
//	runner play              - Play in this terminal (menu, game, scores)
//	runner window            - Play in a native window
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the leaderboard
//	runner characters        - List runners and games
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gravity-runner/scores.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Sprite, background and music directory
//	--log-level <level>   - debug, info, warn or error
//	--telemetry <addr>    - Stream live runs over WebSocket
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
	flagTelemetry  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Gravity Runner - flip gravity, dodge hydrants",
	Long: `Gravity Runner is an endless runner where the only control is a
gravity flip. Run along the floor or the ceiling, squeeze through gates
and dodge hydrants while the world speeds up.

Available commands:
  play        - Play in this terminal
  window      - Play in a native window
  serve       - Start SSH server for remote play
  scores      - View the leaderboard
  characters  - Show runners and games
  config      - Print the default configuration

Examples:
  runner play
  runner play --difficulty hard
  runner window --character cat
  runner serve --ssh :2222 --telemetry :8080
  runner scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.gravity-runner/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagAssets, "assets", "assets", "Directory with sprites, backgrounds and music")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagTelemetry, "telemetry", "", "Serve live run telemetry over WebSocket on this address")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(configCmd)
}
