package maze

import (
	"math/rand"
	"testing"
)

func TestSolveFindsGoalPath(t *testing.T) {
	g := New(21, 15)
	Generate(g, 0, 0, rand.New(rand.NewSource(17)))

	from := Point{0, 0}
	to := Point{20, 14}
	path := Solve(g, from, to)

	if path == nil {
		t.Fatal("Expected a path from origin to goal on a generated maze")
	}
	if path[0] != from {
		t.Errorf("Expected path to start at %v, got %v", from, path[0])
	}
	if path[len(path)-1] != to {
		t.Errorf("Expected path to end at %v, got %v", to, path[len(path)-1])
	}

	// Every step must be a legal unit move
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if !g.CanMove(path[i-1].X, path[i-1].Y, dx, dy) {
			t.Errorf("Expected legal step %v -> %v", path[i-1], path[i])
		}
	}
}

func TestSolveNilWhenDisconnected(t *testing.T) {
	g := New(3, 3) // fresh grid, no passages

	if path := Solve(g, Point{0, 0}, Point{2, 2}); path != nil {
		t.Errorf("Expected nil path on a fully walled grid, got %v", path)
	}
}

func TestSolveTrivial(t *testing.T) {
	g := New(3, 3)

	path := Solve(g, Point{1, 1}, Point{1, 1})
	if len(path) != 1 || path[0] != (Point{1, 1}) {
		t.Errorf("Expected single-cell path, got %v", path)
	}
}

func TestSolveOutOfBounds(t *testing.T) {
	g := New(3, 3)

	if path := Solve(g, Point{-1, 0}, Point{2, 2}); path != nil {
		t.Errorf("Expected nil path for out-of-bounds start, got %v", path)
	}
	if path := Solve(g, Point{0, 0}, Point{3, 0}); path != nil {
		t.Errorf("Expected nil path for out-of-bounds end, got %v", path)
	}
}
