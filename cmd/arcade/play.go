package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/platform/tui"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space    - Flap / Jump
  P        - Play (menu and game over screens)
  Q        - Quit (menu and game over screens)
  Ctrl+C   - Exit at any time

Examples:
  arcade play flappy
  arcade play logjump
  arcade play logjump --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig sizes the host to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closer, err := newLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	warnBrokenDefaults(logger)

	cfg := runtimeConfig()
	logger.Info("starting game", "game", gameID, "fps", cfg.TickRate, "term", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, cfg, gameLogger(logger)); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
