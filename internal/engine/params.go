package engine

import "github.com/vovakirdan/dragon-arcade/internal/config"

// EndRule selects what ends a run.
type EndRule int

const (
	// EndOnFall ends the run once the actor drops below the board.
	EndOnFall EndRule = iota
	// EndOnCollision ends the run when the actor touches the obstacle.
	EndOnCollision
)

// Params are the fixed constants of one game variant.
type Params struct {
	ScreenW         int
	ScreenH         int
	FrameDurationMs float64 // Physics steps once accumulated time exceeds this
	StartX          int
	StartY          int
	Body            BodyParams
	Obstacle        bool
	EndOn           EndRule
}

// ParamsFromConfig converts a validated game configuration to engine params.
func ParamsFromConfig(cfg config.GameConfig) Params {
	bound := BoundCeiling
	if cfg.Rules.Clamp == config.ClampFloor {
		bound = BoundFloor
	}
	endOn := EndOnFall
	if cfg.Rules.EndOn == config.EndOnCollision {
		endOn = EndOnCollision
	}

	return Params{
		ScreenW:         cfg.Screen.Width,
		ScreenH:         cfg.Screen.Height,
		FrameDurationMs: cfg.Timing.FrameDurationMs,
		StartX:          cfg.Actor.StartX,
		StartY:          cfg.Actor.StartY,
		Body: BodyParams{
			Gravity:      FromFloat(cfg.Physics.Gravity),
			Terminal:     FromFloat(cfg.Physics.TerminalVelocity),
			Impulse:      FromFloat(cfg.Physics.Impulse),
			Bound:        bound,
			Limit:        cfg.Rules.FloorHeight,
			GroundedJump: cfg.Rules.GroundedJump,
			SubCell:      cfg.Physics.SubCell,
		},
		Obstacle: cfg.Obstacle.Enabled,
		EndOn:    endOn,
	}
}
