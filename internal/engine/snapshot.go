package engine

// Snapshot is everything a host needs to draw one frame.
type Snapshot struct {
	Mode            Mode
	ActorX          int // World distance travelled
	ActorY          int
	VelocityY       float64
	HasObstacle     bool
	ObstacleWorldX  int
	ObstacleScreenX int // ObstacleWorldX - ActorX
	Score           int
	Steps           uint64 // Physics steps taken this run
	QuitRequested   bool
}

// Snapshot returns the current render-relevant state.
func (l *Loop) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          l.mode,
		ActorX:        l.body.X,
		ActorY:        l.body.Y(),
		VelocityY:     l.body.VelocityY(),
		Score:         l.score,
		Steps:         l.steps,
		QuitRequested: l.quit,
	}
	if l.obstacle != nil {
		s.HasObstacle = true
		s.ObstacleWorldX = l.obstacle.WorldX
		s.ObstacleScreenX = l.obstacle.ScreenX(l.body.X)
	}
	return s
}
