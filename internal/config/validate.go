package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrBadScreen   = errors.New("config: screen dimensions must be positive")
	ErrBadTiming   = errors.New("config: frame duration must be positive")
	ErrBadPhysics  = errors.New("config: invalid physics")
	ErrBadClamp    = errors.New("config: unknown clamp mode")
	ErrBadEndRule  = errors.New("config: unknown end condition")
	ErrBadObstacle = errors.New("config: collision end condition needs an obstacle")
)

// Validate checks that a configuration describes a playable game.
func (c GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.Timing.FrameDurationMs <= 0 {
		return fmt.Errorf("%w: %v", ErrBadTiming, c.Timing.FrameDurationMs)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: gravity %v must be positive", ErrBadPhysics, c.Physics.Gravity)
	}
	if c.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("%w: terminal velocity %v must be positive", ErrBadPhysics, c.Physics.TerminalVelocity)
	}
	if c.Physics.Impulse >= 0 {
		return fmt.Errorf("%w: impulse %v must point up (negative)", ErrBadPhysics, c.Physics.Impulse)
	}

	switch c.Rules.Clamp {
	case ClampCeiling:
	case ClampFloor:
		if c.Rules.FloorHeight <= 0 || c.Rules.FloorHeight >= c.Screen.Height {
			return fmt.Errorf("%w: floor height %d outside board", ErrBadClamp, c.Rules.FloorHeight)
		}
	default:
		return fmt.Errorf("%w %q", ErrBadClamp, c.Rules.Clamp)
	}

	switch c.Rules.EndOn {
	case EndOnFall:
	case EndOnCollision:
		if !c.Obstacle.Enabled {
			return ErrBadObstacle
		}
	default:
		return fmt.Errorf("%w %q", ErrBadEndRule, c.Rules.EndOn)
	}
	return nil
}
