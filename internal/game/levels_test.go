package game

import "testing"

func TestLevelForThresholds(t *testing.T) {
	levels := DefaultLevels()

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{10, 0},
		{49, 0},
		{50, 1},
		{60, 1},
		{100, 2},
		{149, 2},
		{150, 3},
		{9999, 3},
	}

	for _, tc := range tests {
		if got := levels.LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	levels := DefaultLevels()

	prev := levels.LevelFor(0)
	if prev != 0 {
		t.Fatalf("LevelFor(0) = %d, expected 0", prev)
	}
	for score := 1; score <= 200; score++ {
		cur := levels.LevelFor(score)
		if cur < prev {
			t.Fatalf("LevelFor decreased at score %d: %d -> %d", score, prev, cur)
		}
		prev = cur
	}
}

func TestSpeedClamped(t *testing.T) {
	levels := DefaultLevels()

	if levels.Speed(0) != 5 {
		t.Errorf("Speed(0) = %d, expected 5", levels.Speed(0))
	}
	if levels.Speed(1) != 8 {
		t.Errorf("Speed(1) = %d, expected 8", levels.Speed(1))
	}
	if levels.Speed(-3) != levels.Speed(0) {
		t.Error("negative index should clamp to the first level")
	}
	if levels.Speed(100) != levels.Speed(len(levels)-1) {
		t.Error("oversized index should clamp to the last level")
	}
}
