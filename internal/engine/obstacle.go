package engine

import "github.com/vovakirdan/dragon-arcade/internal/core"

const (
	// ObstacleWidth is the number of cells an obstacle occupies, ending at WorldX.
	ObstacleWidth = 3
	// passMargin is how far past WorldX the actor must be to clear the obstacle.
	passMargin = 2
)

// Obstacle is a log lying on the floor at a fixed world position.
// It covers world cells WorldX-2 through WorldX.
type Obstacle struct {
	WorldX int
}

// SpawnAhead places the obstacle one screen width ahead of the actor.
func (o *Obstacle) SpawnAhead(actorX, screenW int) {
	o.WorldX = actorX + screenW
}

// Rect returns the obstacle's hitbox in world cells.
func (o Obstacle) Rect(floor int) core.Rect {
	return core.NewRect(o.WorldX-(ObstacleWidth-1), floor, ObstacleWidth, 1)
}

// Colliding reports whether the body is on the floor row inside the hitbox.
func (o Obstacle) Colliding(b *Body, floor int) bool {
	return o.Rect(floor).Contains(b.X, b.Y())
}

// Passed reports whether the actor is more than passMargin cells beyond WorldX.
func (o Obstacle) Passed(actorX int) bool {
	return actorX > o.WorldX+passMargin
}

// ScreenX returns the obstacle's position relative to the actor.
func (o Obstacle) ScreenX(actorX int) int {
	return o.WorldX - actorX
}
