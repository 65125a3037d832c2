// arcade is a terminal arcade of side-view games built on one shared loop.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade treehouse         - Run the treehouse doorman
//
// Global flags:
//
//	--fps <rate>          - Set host frame rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file (needed to see game logs)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dragon-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/dragon-arcade/internal/games/logjump"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Dragon Arcade - side-view games in your terminal",
	Long: `Dragon Arcade runs small side-view games directly in your terminal.

Available commands:
  list       - Show all available games
  play       - Play a specific game directly
  menu       - Interactive game picker menu
  treehouse  - Greet visitors at the treehouse door

Examples:
  arcade list
  arcade play flappy
  arcade play logjump --log-level debug --log-file arcade.log
  arcade menu
  arcade treehouse`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file; while a game is on screen, logs are only kept with this set")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(treehouseCmd)
}
