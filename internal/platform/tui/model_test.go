package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/engine"
	"github.com/vovakirdan/dragon-arcade/internal/games/flappy"
	"github.com/vovakirdan/dragon-arcade/internal/games/logjump"
)

// recordingGame wraps a real game and records what the host forwards.
type recordingGame struct {
	*flappy.Game
	elapsed []float64
	keys    []core.Key
}

func (g *recordingGame) Tick(elapsedMs float64, key core.Key) engine.Snapshot {
	g.elapsed = append(g.elapsed, elapsedMs)
	g.keys = append(g.keys, key)
	return g.Game.Tick(elapsedMs, key)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelElapsedBetweenTicks(t *testing.T) {
	g := &recordingGame{Game: flappy.New()}
	m := NewModel(g, core.DefaultConfig(), nil)

	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	_, _ = update(t, m, TickMsg(t0.Add(116*time.Millisecond)))

	want := []float64{0, 100, 16}
	if len(g.elapsed) != len(want) {
		t.Fatalf("forwarded %d ticks, expected %d", len(g.elapsed), len(want))
	}
	for i := range want {
		if g.elapsed[i] != want[i] {
			t.Errorf("tick %d elapsed = %v, expected %v", i, g.elapsed[i], want[i])
		}
	}
}

func TestModelForwardsFirstKeyPerTick(t *testing.T) {
	g := &recordingGame{Game: flappy.New()}
	m := NewModel(g, core.DefaultConfig(), nil)

	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('q'))
	m, _ = update(t, m, TickMsg(time.Now()))

	if len(g.keys) != 1 || g.keys[0] != core.KeyPlay {
		t.Fatalf("forwarded keys %v, expected [play]", g.keys)
	}
	if m.Snapshot().Mode != engine.ModePlaying {
		t.Errorf("mode = %v, expected playing", m.Snapshot().Mode)
	}

	_, _ = update(t, m, TickMsg(time.Now()))
	if g.keys[1] != core.KeyNone {
		t.Errorf("pending key not cleared, second tick got %v", g.keys[1])
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m := NewModel(logjump.New(), core.DefaultConfig(), nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("key press alone should not produce a command")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("quit-requested snapshot should quit the program")
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelHostExit(t *testing.T) {
	m := NewModel(flappy.New(), core.DefaultConfig(), nil)
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || !m.Quitting() {
		t.Error("ctrl+c should exit while playing")
	}
}

func TestModelPlayingIgnoresQuitKey(t *testing.T) {
	m := NewModel(flappy.New(), core.DefaultConfig(), nil)
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if isQuit(cmd) || m.Quitting() {
		t.Error("q while playing should be ignored")
	}
}

func TestModelView(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 0, 0
	m := NewModel(flappy.New(), cfg, nil)

	view := m.View()
	if !strings.Contains(view, "Welcome to Flappy Dragon") {
		t.Error("menu view should show the welcome text")
	}
	if !strings.Contains(view, "flap/jump") {
		t.Error("view should include the help footer")
	}
}
