package core

// CountLivingNeighbors returns how many neighbors of (x, y) are alive,
// i.e. hold state == rule.MaxState. Boundaries are open: a neighbor
// coordinate outside the grid is omitted from the count, not treated as
// a dead cell. Edge and corner cells therefore simply have fewer
// candidate neighbors.
func CountLivingNeighbors(g *Grid, x, y int, rule Rule) int {
	switch rule.Neighbor {
	case VonNeumann:
		count := 0
		for _, p := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			if v, ok := g.Cell(p[0], p[1]); ok && v == rule.MaxState {
				count++
			}
		}
		return count
	default:
		left, right := x-1, x+1
		if left < 0 {
			left = 0
		}
		if right >= g.W {
			right = g.W - 1
		}
		top, bottom := y-1, y+1
		if top < 0 {
			top = 0
		}
		if bottom >= g.H {
			bottom = g.H - 1
		}
		count := 0
		for ny := top; ny <= bottom; ny++ {
			row := ny * g.W
			for nx := left; nx <= right; nx++ {
				if nx == x && ny == y {
					continue
				}
				if g.data[row+nx] == rule.MaxState {
					count++
				}
			}
		}
		return count
	}
}

// AdjacencyKernel returns the 3x3 convolution kernel whose zero-padded
// convolution with an is-alive mask reproduces CountLivingNeighbors at
// every position: all ones with a zero center for Moore, the plus shape
// for von Neumann.
func AdjacencyKernel(mode NeighborMode) [3][3]int {
	if mode == VonNeumann {
		return [3][3]int{
			{0, 1, 0},
			{1, 0, 1},
			{0, 1, 0},
		}
	}
	return [3][3]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}
