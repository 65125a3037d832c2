package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/logjump.yaml
var defaultLogJumpYAML []byte

// DefaultFlappyConfig returns the hard-coded Flappy Dragon configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file is unusable.
func DefaultFlappyConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{Width: 80, Height: 50},
		Timing: TimingConfig{FrameDurationMs: 75},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			Impulse:          -2.0,
			SubCell:          true,
		},
		Actor: ActorConfig{StartX: 5, StartY: 25},
		Rules: RulesConfig{
			Clamp: ClampCeiling,
			EndOn: EndOnFall,
		},
	}
}

// DefaultLogJumpConfig returns the hard-coded Log Jump configuration.
// It mirrors defaults/logjump.yaml and is used if the embedded file is unusable.
func DefaultLogJumpConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{Width: 80, Height: 50},
		Timing: TimingConfig{FrameDurationMs: 45},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			Impulse:          -2.0,
			SubCell:          true,
		},
		Actor:    ActorConfig{StartX: 5, StartY: 30},
		Obstacle: ObstacleConfig{Enabled: true},
		Rules: RulesConfig{
			Clamp:        ClampFloor,
			FloorHeight:  30,
			GroundedJump: true,
			EndOn:        EndOnCollision,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "logjump":
		return defaultLogJumpYAML
	default:
		return nil
	}
}

// hardcoded returns the Go fallback for a game, if it has one.
func hardcoded(gameID string) (GameConfig, bool) {
	switch gameID {
	case "flappy":
		return DefaultFlappyConfig(), true
	case "logjump":
		return DefaultLogJumpConfig(), true
	default:
		return GameConfig{}, false
	}
}
