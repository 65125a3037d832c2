// Package flappy implements Flappy Dragon: the dragon flaps against gravity
// and the run ends when it drops below the bottom of the board.
package flappy

import (
	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/engine"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

// Visual characters for rendering
const (
	DragonChar = '@'
)

// Column the dragon is drawn in; the world scrolls past it.
const dragonColumn = 0

// Game implements Flappy Dragon on top of the shared engine loop.
type Game struct {
	cfg  config.GameConfig
	loop *engine.Loop
}

// New creates a new Flappy Dragon game in its menu.
func New() *Game {
	cfg, err := config.Load("flappy")
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Dragon"
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
		dst.DrawTextCentered(5, "Welcome to Flappy Dragon")
		dst.DrawTextCentered(8, "(P) Play Game")
		dst.DrawTextCentered(9, "(Q) Quit Game")
	case engine.ModePlaying:
		dst.ClearBg(core.ColorNavy)
		dst.DrawTextColored(0, 0, "Press SPACE to flap.", core.ColorBrightWhite)
		dst.SetCell(dragonColumn, snap.ActorY, core.Cell{
			Rune:  DragonChar,
			Color: core.ColorYellow,
			Bg:    core.ColorBlack,
		})
	case engine.ModeEnd:
		dst.Clear()
		dst.DrawTextCentered(5, "You are dead!")
		dst.DrawTextCentered(8, "(P) Play again")
		dst.DrawTextCentered(9, "(Q) Quit game")
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
