package game

// Snapshot is the read-only view of a session handed to the renderer and
// the HUD. The snake slice is a copy; mutating it cannot affect the run.
type Snapshot struct {
	Grid           Grid
	Snake          []Cell // head first
	Dir            Direction
	Food           Cell
	Score          int
	LevelIndex     int
	MovesPerSecond int
	HighScore      int
	Paused         bool
	GameOver       bool
	Won            bool
}

// Snapshot returns the current render view.
func (s *Session) Snapshot() Snapshot {
	snake := make([]Cell, len(s.snake))
	copy(snake, s.snake)
	return Snapshot{
		Grid:           s.grid,
		Snake:          snake,
		Dir:            s.dir,
		Food:           s.food,
		Score:          s.score,
		LevelIndex:     s.levelIndex,
		MovesPerSecond: s.movesPerSecond,
		HighScore:      s.highScore,
		Paused:         s.paused,
		GameOver:       s.gameOver,
		Won:            s.won,
	}
}
