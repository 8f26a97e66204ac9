package core

import (
	"errors"
	"fmt"
)

// ErrBadDimensions is returned when a grid cannot be built from the
// requested shape.
var ErrBadDimensions = errors.New("bad grid dimensions")

// Grid stores a fixed-size 2D field of cell states in row-major order:
// the cell at column x, row y lives at index y*W + x. Dimensions never
// change after construction; only cell values do.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// GridFromCells builds a grid around an existing row-major cell buffer.
// The buffer length must equal w*h exactly.
func GridFromCells(w, h int, cells []uint8) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells cannot fill %dx%d", ErrBadDimensions, len(cells), w, h)
	}
	return &Grid{W: w, H: h, data: cells}, nil
}

// Cells exposes the backing slice so engines and renderers can scan
// values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Cell returns the state at (x, y), with ok=false when the coordinates
// fall outside the grid.
func (g *Grid) Cell(x, y int) (uint8, bool) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0, false
	}
	return g.data[y*g.W+x], true
}

// Set writes the state at (x, y). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
