// Package logjump implements Log Jump, an endless runner: the player runs
// along the floor and jumps a single log that keeps reappearing ahead.
package logjump

import (
	"fmt"

	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/engine"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

// Visual characters for rendering
const (
	RunnerChar = 'A'
	LogChar    = '='
	GroundChar = '═'
)

// RunnerColumn is the screen column the runner is drawn in.
const RunnerColumn = 5

// Game implements Log Jump on top of the shared engine loop.
type Game struct {
	cfg  config.GameConfig
	loop *engine.Loop
}

// New creates a new Log Jump game in its menu.
func New() *Game {
	cfg, err := config.Load("logjump")
	if err != nil {
		cfg = config.DefaultLogJumpConfig()
	}
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "logjump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Log Jump"
}

// Size returns the board dimensions.
func (g *Game) Size() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset returns to the menu with a fresh loop.
func (g *Game) Reset() {
	g.loop = engine.NewLoop(engine.ParamsFromConfig(g.cfg))
}

// Tick advances the game by one host frame.
func (g *Game) Tick(elapsedMs float64, key core.Key) engine.Snapshot {
	return g.loop.Tick(elapsedMs, key)
}

// Snapshot returns the current state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.loop.Snapshot()
}

// Render draws the current mode's screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.loop.Snapshot()

	switch snap.Mode {
	case engine.ModeMenu:
		dst.Clear()
		dst.DrawTextCentered(5, "Welcome to Log Jump!")
		dst.DrawTextCentered(8, "(P) Play")
		dst.DrawTextCentered(9, "(Q) Quit")
	case engine.ModePlaying:
		g.renderPlaying(dst, snap)
	case engine.ModeEnd:
		dst.Clear()
		dst.DrawTextCentered(5, "Game Over!")
		dst.DrawTextCentered(6, fmt.Sprintf("Score: %d", snap.Score))
		dst.DrawTextCentered(8, "(P) Play Again")
		dst.DrawTextCentered(9, "(Q) Quit")
	}
}

func (g *Game) renderPlaying(dst *core.Screen, snap engine.Snapshot) {
	floor := g.cfg.Rules.FloorHeight

	dst.ClearBg(core.ColorNavy)
	dst.DrawHLine(0, floor+1, dst.Width(), GroundChar, core.ColorGreen)

	// The log covers world cells WorldX-2..WorldX.
	if snap.HasObstacle {
		for k := 0; k < engine.ObstacleWidth; k++ {
			dst.SetColored(RunnerColumn+snap.ObstacleScreenX-k, floor, LogChar, core.ColorBrown)
		}
	}

	dst.DrawTextColored(0, 0, "Press SPACE to jump!", core.ColorBrightWhite)
	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	dst.SetCell(RunnerColumn, snap.ActorY, core.Cell{
		Rune:  RunnerChar,
		Color: core.ColorYellow,
		Bg:    core.ColorBlack,
	})
}

// Register the game with the registry
func init() {
	registry.Register("logjump", func() registry.Game {
		return New()
	})
}
