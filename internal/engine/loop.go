package engine

import "github.com/vovakirdan/dragon-arcade/internal/core"

// Mode is the loop's current screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a lower-case name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Loop owns the whole simulation of one game: the actor, the optional
// obstacle, the score, and the frame-time accumulator. A host calls Tick
// once per rendered frame from a single goroutine.
type Loop struct {
	p         Params
	mode      Mode
	body      *Body
	obstacle  *Obstacle // nil when the variant has none
	score     int
	frameTime float64 // ms accumulated since the last physics step
	steps     uint64
	quit      bool
}

// NewLoop creates a loop in the menu, with a fresh run staged.
func NewLoop(p Params) *Loop {
	l := &Loop{p: p, mode: ModeMenu}
	l.resetRun()
	return l
}

// Tick advances the loop by one host frame.
// elapsedMs is wall-clock time since the previous frame; key is the single
// key pressed this frame, or KeyNone.
func (l *Loop) Tick(elapsedMs float64, key core.Key) Snapshot {
	switch l.mode {
	case ModeMenu, ModeEnd:
		l.dispatchMenu(key)
	case ModePlaying:
		l.play(elapsedMs, key)
	}
	return l.Snapshot()
}

// dispatchMenu handles the two keys recognised outside of play.
func (l *Loop) dispatchMenu(key core.Key) {
	switch key {
	case core.KeyPlay:
		l.restart()
	case core.KeyQuit:
		l.quit = true
	}
}

func (l *Loop) play(elapsedMs float64, key core.Key) {
	if elapsedMs > 0 {
		l.frameTime += elapsedMs
	}
	if l.frameTime > l.p.FrameDurationMs {
		l.frameTime = 0
		l.body.Step()
		l.steps++
	}

	// Input is not gated by the frame timer.
	if key == core.KeyFlap {
		l.body.Impulse()
	}

	if l.obstacle != nil && l.obstacle.Passed(l.body.X) {
		l.obstacle.SpawnAhead(l.body.X, l.p.ScreenW)
		l.score++
	}

	if l.over() {
		l.mode = ModeEnd
	}
}

// over reports whether the current run has ended.
func (l *Loop) over() bool {
	switch l.p.EndOn {
	case EndOnFall:
		return l.body.Y() > l.p.ScreenH
	case EndOnCollision:
		return l.obstacle != nil && l.obstacle.Colliding(l.body, l.p.Body.Limit)
	}
	return false
}

// restart begins a new run.
func (l *Loop) restart() {
	l.resetRun()
	l.mode = ModePlaying
}

func (l *Loop) resetRun() {
	l.body = NewBody(l.p.StartX, l.p.StartY, l.p.Body)
	l.obstacle = nil
	if l.p.Obstacle {
		l.obstacle = &Obstacle{}
		l.obstacle.SpawnAhead(l.body.X, l.p.ScreenW)
	}
	l.score = 0
	l.frameTime = 0
	l.steps = 0
}

// Mode returns the current mode.
func (l *Loop) Mode() Mode {
	return l.mode
}

// Score returns the number of obstacles cleared this run.
func (l *Loop) Score() int {
	return l.score
}

// Body returns the actor.
func (l *Loop) Body() *Body {
	return l.body
}

// Obstacle returns the obstacle, or nil if the variant has none.
func (l *Loop) Obstacle() *Obstacle {
	return l.obstacle
}

// QuitRequested reports whether the player asked the host to terminate.
func (l *Loop) QuitRequested() bool {
	return l.quit
}

// Params returns the constants the loop was built with.
func (l *Loop) Params() Params {
	return l.p
}
