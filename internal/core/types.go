package core

import "sort"

// Engine is the contract every generation-stepping strategy implements.
// An engine owns a double-buffered pair of grids: Step computes the next
// generation into the inactive buffer from the previous generation only,
// then swaps, so readers always observe a complete generation.
type Engine interface {
	// Name identifies the strategy ("direct", "conv", "fft").
	Name() string
	// NumX and NumY report the grid dimensions, constant for the
	// engine's lifetime.
	NumX() int
	NumY() int
	// MaxState is the alive-state value of the engine's rule.
	MaxState() uint8
	// Cell returns the current state at (x, y), ok=false out of bounds.
	Cell(x, y int) (uint8, bool)
	// Cells exposes the current generation as a row-major slice. The
	// slice is valid until the next Step or Reset.
	Cells() []uint8
	// Step advances the simulation by exactly one generation.
	Step()
	// Reset refills the field with an independent Bernoulli draw per
	// cell using the engine's configured density.
	Reset(seed int64)
}

// Factory constructs an Engine from an initial grid, a rule and the
// alive density used by Reset.
type Factory func(g *Grid, r Rule, density float64) (Engine, error)

var engines = map[string]Factory{}

// RegisterEngine adds an engine factory under the provided name.
func RegisterEngine(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered strategy names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
