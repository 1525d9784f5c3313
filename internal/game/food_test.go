package game

import (
	"math/rand"
	"testing"
)

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	grid := Grid{Width: 30, Height: 20}
	rng := rand.New(rand.NewSource(999))
	snake := []Cell{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}

	for range 200 {
		food, ok := SpawnFood(snake, grid, rng)
		if !ok {
			t.Fatal("spawn failed on a mostly empty grid")
		}
		if !grid.InBounds(food) {
			t.Fatalf("food spawned out of bounds at %v", food)
		}
		if occupied(food, snake) {
			t.Fatalf("food spawned on snake at %v", food)
		}
	}
}

func TestSpawnFoodNearlyFull(t *testing.T) {
	// Leave exactly one free cell; the spawner must always find it.
	grid := Grid{Width: 4, Height: 4}
	var snake []Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if x == 3 && y == 3 {
				continue
			}
			snake = append(snake, Cell{X: x, Y: y})
		}
	}

	rng := rand.New(rand.NewSource(1))
	for range 50 {
		food, ok := SpawnFood(snake, grid, rng)
		if !ok {
			t.Fatal("spawn failed with one free cell")
		}
		if food != (Cell{3, 3}) {
			t.Fatalf("food = %v, expected the only free cell (3,3)", food)
		}
	}
}

func TestSpawnFoodFullGrid(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	var snake []Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			snake = append(snake, Cell{X: x, Y: y})
		}
	}

	rng := rand.New(rand.NewSource(7))
	if _, ok := SpawnFood(snake, grid, rng); ok {
		t.Error("spawn on a full grid should report no free cell")
	}
}
