package core

import (
	"slices"
	"testing"
)

func allAlive3x3(t *testing.T, maxState uint8) *Grid {
	t.Helper()
	cells := make([]uint8, 9)
	for i := range cells {
		cells[i] = maxState
	}
	g, err := GridFromCells(3, 3, cells)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func countGrid(g *Grid, rule Rule) []int {
	counts := make([]int, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			counts[g.Index(x, y)] = CountLivingNeighbors(g, x, y, rule)
		}
	}
	return counts
}

func TestCountLivingNeighborsMoore(t *testing.T) {
	rule, err := NewRule(CountSet{2, 3}, Count(3), 1, Moore)
	if err != nil {
		t.Fatal(err)
	}
	got := countGrid(allAlive3x3(t, 1), rule)
	want := []int{
		3, 5, 3,
		5, 8, 5,
		3, 5, 3,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Moore counts = %v, want %v", got, want)
	}
}

func TestCountLivingNeighborsVonNeumann(t *testing.T) {
	rule, err := NewRule(CountSet{2, 3}, Count(3), 1, VonNeumann)
	if err != nil {
		t.Fatal(err)
	}
	got := countGrid(allAlive3x3(t, 1), rule)
	want := []int{
		2, 3, 2,
		3, 4, 3,
		2, 3, 2,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("von Neumann counts = %v, want %v", got, want)
	}
}

func TestOnlyAliveStateCounts(t *testing.T) {
	// Decaying cells (state in (0, MaxState)) are not neighbors.
	rule, err := NewRule(CountSet{2, 3}, Count(3), 3, Moore)
	if err != nil {
		t.Fatal(err)
	}
	g := allAlive3x3(t, 3)
	g.Set(0, 0, 2)
	g.Set(1, 0, 1)

	if got := CountLivingNeighbors(g, 1, 1, rule); got != 6 {
		t.Fatalf("center count = %d, want 6 with two decaying neighbors", got)
	}
}

func TestNoPhantomNeighborsAtBoundary(t *testing.T) {
	// A live cell in a corner must not pick up votes from outside the
	// grid, and a lone corner cell has a strictly smaller neighbor
	// horizon than an interior cell.
	rule := ConwayRule()
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Ring of live cells around the interior cell (2,2).
	for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		g.Set(p[0], p[1], 1)
	}
	if got := CountLivingNeighbors(g, 2, 2, rule); got != 8 {
		t.Fatalf("interior count = %d, want 8", got)
	}

	corner, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// The same ring clipped at the corner: only the in-bounds part of
	// the 3x3 window around (0,0) can vote.
	corner.Set(1, 0, 1)
	corner.Set(0, 1, 1)
	corner.Set(1, 1, 1)
	corner.Set(4, 4, 1) // far cell, must be invisible from the corner
	if got := CountLivingNeighbors(corner, 0, 0, rule); got != 3 {
		t.Fatalf("corner count = %d, want 3", got)
	}
}

func TestAdjacencyKernelMatchesCounting(t *testing.T) {
	moore := AdjacencyKernel(Moore)
	vn := AdjacencyKernel(VonNeumann)

	if moore[1][1] != 0 || vn[1][1] != 0 {
		t.Fatal("kernel centers must be zero")
	}
	mooreSum, vnSum := 0, 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			mooreSum += moore[y][x]
			vnSum += vn[y][x]
		}
	}
	if mooreSum != 8 {
		t.Fatalf("Moore kernel weight = %d, want 8", mooreSum)
	}
	if vnSum != 4 {
		t.Fatalf("von Neumann kernel weight = %d, want 4", vnSum)
	}
	if vn[0][0] != 0 || vn[0][2] != 0 || vn[2][0] != 0 || vn[2][2] != 0 {
		t.Fatal("von Neumann kernel must have zero corners")
	}
}
