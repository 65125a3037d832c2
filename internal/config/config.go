// Package config provides the compiled-in YAML game configuration for the
// arcade's side-scrolling games.
package config

// GameConfig contains all configuration for one side-scrolling game variant.
type GameConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Timing   TimingConfig   `yaml:"timing"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Actor    ActorConfig    `yaml:"actor"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Rules    RulesConfig    `yaml:"rules"`
}

// ScreenConfig defines the logical board size in cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines how often physics advances.
type TimingConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"` // Accumulated ms before one physics step
}

// PhysicsConfig defines single-axis gravity parameters, in cells per step.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Impulse          float64 `yaml:"impulse"` // Negative = up
	SubCell          bool    `yaml:"subcell"` // Carry fractional movement between steps
}

// ActorConfig defines where the actor starts each run.
type ActorConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// ObstacleConfig defines the scrolling obstacle.
type ObstacleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Clamp modes for the actor's vertical position.
const (
	ClampCeiling = "ceiling" // Y never goes above row 0
	ClampFloor   = "floor"   // Y never goes below the floor row
)

// End conditions for a run.
const (
	EndOnFall      = "fall"      // Actor drops below the bottom of the board
	EndOnCollision = "collision" // Actor touches the obstacle
)

// RulesConfig selects the per-variant behaviors of the shared engine.
type RulesConfig struct {
	Clamp        string `yaml:"clamp"`
	FloorHeight  int    `yaml:"floor_height"`
	GroundedJump bool   `yaml:"grounded_jump"` // Impulse only while resting on the floor
	EndOn        string `yaml:"end_on"`
}
