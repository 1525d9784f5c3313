package game

// Level pairs a score threshold with the tick rate that applies once the
// score reaches it.
type Level struct {
	Threshold      int
	MovesPerSecond int
}

// LevelTable is an ordered set of levels, ascending by threshold, index 0
// being the starting level. It is immutable after construction and shared
// by every session.
type LevelTable []Level

// DefaultLevels returns the standard progression.
func DefaultLevels() LevelTable {
	return LevelTable{
		{Threshold: 0, MovesPerSecond: 5},
		{Threshold: 50, MovesPerSecond: 8},
		{Threshold: 100, MovesPerSecond: 12},
		{Threshold: 150, MovesPerSecond: 15},
	}
}

// LevelFor returns the highest index whose threshold is at or below score.
func (t LevelTable) LevelFor(score int) int {
	for i := len(t) - 1; i > 0; i-- {
		if score >= t[i].Threshold {
			return i
		}
	}
	return 0
}

// Speed returns the moves-per-second for the given level index, clamped to
// the table bounds so a corrupt saved index cannot panic.
func (t LevelTable) Speed(index int) int {
	if index < 0 {
		index = 0
	}
	if index >= len(t) {
		index = len(t) - 1
	}
	return t[index].MovesPerSecond
}
