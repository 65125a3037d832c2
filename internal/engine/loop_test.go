package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// stepMs is comfortably above both variants' frame durations.
const stepMs = 80.0

func startedLoop(t *testing.T, p Params) *Loop {
	t.Helper()
	l := NewLoop(p)
	snap := l.Tick(0, core.KeyPlay)
	if snap.Mode != ModePlaying {
		t.Fatalf("Play from menu: mode = %v, expected playing", snap.Mode)
	}
	return l
}

func TestLoopStartsInMenu(t *testing.T) {
	l := NewLoop(flappyParams())
	if l.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected menu", l.Mode())
	}
	if l.QuitRequested() {
		t.Error("quit should not be requested initially")
	}
}

func TestLoopMenuIgnoresOtherKeys(t *testing.T) {
	l := NewLoop(logJumpParams())
	before := l.Snapshot()

	for _, k := range []core.Key{core.KeyNone, core.KeyFlap, core.Key(99)} {
		snap := l.Tick(stepMs, k)
		if snap != before {
			t.Errorf("key %v changed menu state: %+v -> %+v", k, before, snap)
		}
	}
}

func TestLoopQuitFromMenu(t *testing.T) {
	l := NewLoop(flappyParams())

	snap := l.Tick(stepMs, core.KeyQuit)
	if !snap.QuitRequested {
		t.Error("Quit in menu should request termination")
	}
	if snap.Mode != ModeMenu {
		t.Errorf("mode after Quit = %v, expected menu", snap.Mode)
	}
}

func TestLoopPlayResetsRun(t *testing.T) {
	p := logJumpParams()
	l := startedLoop(t, p)
	snap := l.Snapshot()

	if snap.ActorX != p.StartX || snap.ActorY != p.StartY {
		t.Errorf("actor = (%d, %d), expected (%d, %d)", snap.ActorX, snap.ActorY, p.StartX, p.StartY)
	}
	if snap.VelocityY != 0 {
		t.Errorf("velocity = %v, expected 0", snap.VelocityY)
	}
	if !snap.HasObstacle || snap.ObstacleWorldX != p.StartX+p.ScreenW {
		t.Errorf("obstacle = %+v, expected at %d", snap, p.StartX+p.ScreenW)
	}
	if snap.Score != 0 || snap.Steps != 0 {
		t.Errorf("score/steps = %d/%d, expected 0/0", snap.Score, snap.Steps)
	}
}

func TestLoopFrameThrottle(t *testing.T) {
	p := flappyParams()
	l := startedLoop(t, p)

	l.Tick(50, core.KeyNone)
	if l.Snapshot().Steps != 0 {
		t.Fatal("50ms should not reach the 75ms frame duration")
	}

	l.Tick(25, core.KeyNone)
	if l.Snapshot().Steps != 0 {
		t.Fatal("exactly 75ms should not step; the threshold must be exceeded")
	}

	l.Tick(1, core.KeyNone)
	if l.Snapshot().Steps != 1 {
		t.Fatalf("76ms accumulated should step once, steps = %d", l.Snapshot().Steps)
	}

	// The accumulator resets to zero, and a long frame still yields one step.
	l.Tick(10_000, core.KeyNone)
	if l.Snapshot().Steps != 2 {
		t.Errorf("long frame should step exactly once, steps = %d", l.Snapshot().Steps)
	}
	l.Tick(10, core.KeyNone)
	if l.Snapshot().Steps != 2 {
		t.Errorf("accumulator should have been reset, steps = %d", l.Snapshot().Steps)
	}
}

func TestLoopLogJumpFrameDuration(t *testing.T) {
	l := startedLoop(t, logJumpParams())

	l.Tick(45, core.KeyNone)
	if l.Snapshot().Steps != 0 {
		t.Fatal("45ms should not step log jump")
	}
	l.Tick(1, core.KeyNone)
	if l.Snapshot().Steps != 1 {
		t.Error("46ms should step log jump")
	}
}

func TestLoopInputNotThrottled(t *testing.T) {
	l := startedLoop(t, flappyParams())

	snap := l.Tick(0, core.KeyFlap)
	if snap.VelocityY != -2.0 {
		t.Errorf("flap with no elapsed time: velocity = %v, expected -2.0", snap.VelocityY)
	}
	if snap.Steps != 0 {
		t.Error("flap must not trigger a physics step")
	}
}

func TestLoopJumpThenStep(t *testing.T) {
	l := startedLoop(t, logJumpParams())

	snap := l.Tick(0, core.KeyFlap)
	if snap.VelocityY != -2.0 || snap.ActorY != 30 {
		t.Fatalf("after jump: velocity %v, Y %d; expected -2.0, 30", snap.VelocityY, snap.ActorY)
	}

	snap = l.Tick(stepMs, core.KeyNone)
	if math.Abs(snap.VelocityY-(-1.8)) > 1e-9 {
		t.Errorf("velocity = %v, expected -1.8", snap.VelocityY)
	}
	if snap.ActorY != 28 {
		t.Errorf("Y = %d, expected 28", snap.ActorY)
	}
}

func TestLoopObstaclePassAndRespawn(t *testing.T) {
	p := logJumpParams()
	l := startedLoop(t, p)

	if l.Obstacle().WorldX != 85 {
		t.Fatalf("obstacle WorldX = %d, expected 85", l.Obstacle().WorldX)
	}

	for l.Body().X < 79 {
		l.Tick(stepMs, core.KeyNone)
	}
	// Step to x=80 and jump in the same frame.
	l.Tick(stepMs, core.KeyFlap)

	for l.Body().X < 87 {
		snap := l.Tick(stepMs, core.KeyNone)
		if snap.Mode != ModePlaying {
			t.Fatalf("run ended at x=%d, Y=%d", snap.ActorX, snap.ActorY)
		}
		if snap.Score != 0 {
			t.Fatalf("scored early at x=%d", snap.ActorX)
		}
	}

	snap := l.Tick(stepMs, core.KeyNone)
	if snap.ActorX != 88 {
		t.Fatalf("actor X = %d, expected 88", snap.ActorX)
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.ObstacleWorldX != 168 {
		t.Errorf("obstacle WorldX = %d, expected 168", snap.ObstacleWorldX)
	}
	if snap.ObstacleScreenX != 80 {
		t.Errorf("obstacle ScreenX = %d, expected 80", snap.ObstacleScreenX)
	}
}

func TestLoopCollisionEndsRun(t *testing.T) {
	l := startedLoop(t, logJumpParams())

	var snap Snapshot
	for i := 0; i < 200; i++ {
		snap = l.Tick(stepMs, core.KeyNone)
		if snap.Mode == ModeEnd {
			break
		}
	}

	if snap.Mode != ModeEnd {
		t.Fatal("running into the log should end the run")
	}
	if snap.ActorX != 83 {
		t.Errorf("run ended at x=%d, expected 83 (log trailing edge)", snap.ActorX)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
}

func TestLoopFallEndsRun(t *testing.T) {
	p := flappyParams()
	l := startedLoop(t, p)

	var snap Snapshot
	for i := 0; i < 100; i++ {
		snap = l.Tick(stepMs, core.KeyNone)
		if snap.Mode == ModeEnd {
			break
		}
		if snap.ActorY > p.ScreenH {
			t.Fatalf("Y = %d past the board while still playing", snap.ActorY)
		}
	}

	if snap.Mode != ModeEnd {
		t.Fatal("falling off the board should end the run")
	}
	if snap.ActorY <= p.ScreenH {
		t.Errorf("Y = %d, expected > %d", snap.ActorY, p.ScreenH)
	}

	// No physics runs on the end screen.
	frozen := l.Snapshot()
	for i := 0; i < 10; i++ {
		l.Tick(stepMs, core.KeyFlap)
	}
	if got := l.Snapshot(); got != frozen {
		t.Errorf("end screen state changed: %+v -> %+v", frozen, got)
	}

	// Play starts a fresh run.
	snap = l.Tick(stepMs, core.KeyPlay)
	if snap.Mode != ModePlaying || snap.ActorY != p.StartY || snap.ActorX != p.StartX {
		t.Errorf("restart snapshot = %+v", snap)
	}
}

func TestLoopQuitFromEnd(t *testing.T) {
	l := startedLoop(t, logJumpParams())
	for l.Mode() == ModePlaying {
		l.Tick(stepMs, core.KeyNone)
	}

	snap := l.Tick(0, core.KeyQuit)
	if !snap.QuitRequested || snap.Mode != ModeEnd {
		t.Errorf("Quit on end screen: %+v", snap)
	}
}

func TestLoopPlayingIgnoresMenuKeys(t *testing.T) {
	l := startedLoop(t, flappyParams())
	l.Tick(stepMs, core.KeyNone)
	before := l.Snapshot()

	snap := l.Tick(0, core.KeyQuit)
	if snap.QuitRequested {
		t.Error("Quit while playing should be ignored")
	}
	snap = l.Tick(0, core.KeyPlay)
	if snap != before {
		t.Errorf("Play while playing changed state: %+v -> %+v", before, snap)
	}
}

func TestLoopScoreMonotonic(t *testing.T) {
	p := logJumpParams()
	l := startedLoop(t, p)

	snap := l.Snapshot()
	lastScore := 0
	for i := 0; i < 2000; i++ {
		key := core.KeyNone
		if snap.ObstacleScreenX <= 5 && l.Body().OnFloor() {
			key = core.KeyFlap
		}
		prevWorldX := snap.ObstacleWorldX
		snap = l.Tick(stepMs, key)

		if snap.Mode != ModePlaying {
			t.Fatalf("auto-jumper died at x=%d", snap.ActorX)
		}
		if snap.Score < lastScore {
			t.Fatalf("score decreased from %d to %d", lastScore, snap.Score)
		}
		if snap.Score > lastScore {
			if snap.Score != lastScore+1 {
				t.Fatalf("score jumped from %d to %d", lastScore, snap.Score)
			}
			if snap.ObstacleWorldX != snap.ActorX+p.ScreenW || snap.ObstacleWorldX == prevWorldX {
				t.Fatalf("respawn at %d, expected %d", snap.ObstacleWorldX, snap.ActorX+p.ScreenW)
			}
		}
		lastScore = snap.Score
	}

	if lastScore == 0 {
		t.Error("auto-jumper should have cleared at least one log")
	}

	// Restart clears the score.
	for l.Mode() == ModePlaying {
		l.Tick(stepMs, core.KeyNone)
	}
	if snap := l.Tick(0, core.KeyPlay); snap.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", snap.Score)
	}
}

func TestLoopFlappyHasNoObstacle(t *testing.T) {
	l := startedLoop(t, flappyParams())
	if l.Obstacle() != nil || l.Snapshot().HasObstacle {
		t.Error("flappy should have no obstacle")
	}
	if l.Snapshot().Score != 0 {
		t.Error("flappy should not score")
	}
}
