// Package engine implements the side-view arcade core shared by the
// flappy and log-jump games: a gravity-driven body, a single obstacle, and
// the Menu/Playing/End loop that drives them.
package engine

// Bound selects which side of the board the body is clamped against.
type Bound int

const (
	// BoundCeiling keeps Y >= 0; the body may fall without limit.
	BoundCeiling Bound = iota
	// BoundFloor keeps Y <= Limit; the body may rise without limit.
	BoundFloor
)

// BodyParams holds the physics constants for a Body.
type BodyParams struct {
	Gravity      Fixed // Added to velocity every step
	Terminal     Fixed // Maximum downward velocity
	Impulse      Fixed // Velocity set by a flap or jump (negative = up)
	Bound        Bound
	Limit        int  // Floor row for BoundFloor
	GroundedJump bool // Impulse only while resting on the floor
	SubCell      bool // Keep fractional movement between steps
}

// Body is the actor: a world-space X that advances one cell per step and a
// vertical position integrated under constant gravity.
type Body struct {
	X  int   // World distance travelled
	y  Fixed // Vertical position, row 0 at the top
	vy Fixed // Vertical velocity per step, positive = down
	p  BodyParams
}

// NewBody creates a body at rest at the given cell.
func NewBody(x, y int, p BodyParams) *Body {
	return &Body{
		X: x,
		y: ToFixed(y),
		p: p,
	}
}

// Y returns the row the body occupies.
func (b *Body) Y() int {
	return b.y.Floor()
}

// VelocityY returns the vertical velocity in cells per step.
func (b *Body) VelocityY() float64 {
	return b.vy.Float()
}

// OnFloor reports whether the body rests exactly on the floor row.
// Always false for ceiling-bound bodies.
func (b *Body) OnFloor() bool {
	return b.p.Bound == BoundFloor && b.y == ToFixed(b.p.Limit)
}

// Step advances the body by one physics step: gravity, vertical move,
// one cell forward, then the bound clamp.
func (b *Body) Step() {
	b.vy += b.p.Gravity
	if b.vy > b.p.Terminal {
		b.vy = b.p.Terminal
	}

	if b.p.SubCell {
		b.y += b.vy
	} else {
		// Whole cells only: speeds under one cell per step do not move the body.
		b.y += ToFixed(b.vy.Trunc())
	}
	b.X++

	switch b.p.Bound {
	case BoundCeiling:
		if b.y < 0 {
			b.y = 0
		}
	case BoundFloor:
		if floor := ToFixed(b.p.Limit); b.y > floor {
			b.y = floor
		}
	}
}

// Impulse sets the vertical velocity to the upward impulse.
// Grounded bodies only jump from the floor; the return value reports
// whether the impulse took effect.
func (b *Body) Impulse() bool {
	if b.p.GroundedJump && !b.OnFloor() {
		return false
	}
	b.vy = b.p.Impulse
	return true
}
