package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Best      int
	Resets    int // Self-collisions so far
	SnakeLen  int
	TargetLen int
	HeadX     int
	HeadY     int
	Dir       Direction
	AppleX    int
	AppleY    int
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.snake == nil {
		return Snapshot{}
	}
	head := g.snake.Head()
	apple := g.apple.Position()

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score(),
		Best:      g.best,
		Resets:    g.resets,
		SnakeLen:  g.snake.Len(),
		TargetLen: g.snake.TargetLength(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.snake.Direction(),
		AppleX:    apple.X,
		AppleY:    apple.Y,
		Paused:    g.paused,
	}
}
