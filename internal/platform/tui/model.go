package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/engine"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running an arcade game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Key // First recognised key since the previous tick
	lastTick time.Time
	snapshot engine.Snapshot
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The screen buffer is sized to the game's board, not the terminal.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Size()
	return Model{
		game:     game,
		screen:   core.NewScreen(w, h),
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		logger:   logger.WithPrefix(game.ID()),
		snapshot: game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick.
// Keys arriving between two ticks after the first one are dropped.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, exit := m.keys.Map(msg)
	if exit {
		m.logger.Debug("host exit")
		m.quitting = true
		return m, tea.Quit
	}
	if k != core.KeyNone && m.pending == core.KeyNone {
		m.pending = k
	}
	return m, nil
}

// handleTick forwards elapsed wall-clock time and the pending key to the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsedMs float64
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	prev := m.snapshot
	m.snapshot = m.game.Tick(elapsedMs, m.pending)
	m.pending = core.KeyNone
	m.logTransition(prev, m.snapshot)

	if m.snapshot.QuitRequested {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, next engine.Snapshot) {
	if prev.Mode != next.Mode {
		m.logger.Info("mode changed", "from", prev.Mode, "to", next.Mode, "score", next.Score)
	}
	if next.Mode == engine.ModePlaying && next.Score > prev.Score {
		m.logger.Debug("obstacle cleared", "score", next.Score, "x", next.ActorX)
	}
	if next.QuitRequested && !prev.QuitRequested {
		m.logger.Info("quit requested", "mode", next.Mode)
	}
}

// Snapshot returns the state observed on the most recent tick.
func (m Model) Snapshot() engine.Snapshot {
	return m.snapshot
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Top, content)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
