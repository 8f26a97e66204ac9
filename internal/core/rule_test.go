package core

import (
	"errors"
	"testing"
)

func TestNewRuleValidation(t *testing.T) {
	if _, err := NewRule(CountSet{2, 3}, Count(3), 0, Moore); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("maxState 0 error = %v, want ErrInvalidRule", err)
	}
	if _, err := NewRule(CountSet{2, 9}, Count(3), 1, Moore); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("count 9 error = %v, want ErrInvalidRule", err)
	}
	if _, err := NewRule(Count(-1), Count(3), 1, Moore); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("count -1 error = %v, want ErrInvalidRule", err)
	}
	// Counts above 4 are unreachable under von Neumann adjacency and
	// rejected rather than silently ignored.
	if _, err := NewRule(CountSet{2, 3}, Count(5), 1, VonNeumann); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("von Neumann birth count 5 error = %v, want ErrInvalidRule", err)
	}
	if _, err := NewRule(CountSet{2, 3}, Count(3), 1, VonNeumann); err != nil {
		t.Fatalf("valid von Neumann rule rejected: %v", err)
	}
}

func TestCountSpecFormsNormalizeIdentically(t *testing.T) {
	want := [9]bool{2: true, 3: true, 4: true}

	specs := map[string]CountSpec{
		"range": CountRange{Min: 2, Max: 4},
		"set":   CountSet{2, 3, 4},
		"mask":  CountMask{2: true, 3: true, 4: true},
	}
	for name, spec := range specs {
		r, err := NewRule(spec, Count(3), 1, Moore)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if r.Survival != want {
			t.Fatalf("%s normalized to %v, want %v", name, r.Survival, want)
		}
	}

	single, err := NewRule(Count(6), Count(3), 1, Moore)
	if err != nil {
		t.Fatal(err)
	}
	if single.Survival != ([9]bool{6: true}) {
		t.Fatalf("single count normalized to %v", single.Survival)
	}
}

func TestRuleNextTransitions(t *testing.T) {
	r, err := NewRule(CountSet{2, 3}, Count(3), 3, Moore)
	if err != nil {
		t.Fatal(err)
	}

	// Birth dominates regardless of current state.
	if got := r.Next(0, 3); got != 3 {
		t.Fatalf("dead cell with 3 neighbors = %d, want 3", got)
	}
	if got := r.Next(1, 3); got != 3 {
		t.Fatalf("decaying cell with birth count = %d, want 3", got)
	}
	// Survival applies only to cells at MaxState.
	if got := r.Next(3, 2); got != 3 {
		t.Fatalf("alive cell with 2 neighbors = %d, want 3", got)
	}
	if got := r.Next(2, 2); got != 1 {
		t.Fatalf("decaying cell must keep decaying, got %d, want 1", got)
	}
	// Neither birth nor survival: decay toward the absorbing 0.
	if got := r.Next(3, 5); got != 2 {
		t.Fatalf("alive cell losing = %d, want 2", got)
	}
	if got := r.Next(0, 0); got != 0 {
		t.Fatalf("dead cell stays dead, got %d", got)
	}
}

func TestParseCounts(t *testing.T) {
	cases := []struct {
		in   string
		want [9]bool
	}{
		{"", [9]bool{}},
		{"3", [9]bool{3: true}},
		{"2,3", [9]bool{2: true, 3: true}},
		{"2-4", [9]bool{2: true, 3: true, 4: true}},
		{"0, 2-3, 8", [9]bool{0: true, 2: true, 3: true, 8: true}},
	}
	for _, c := range cases {
		set, err := ParseCounts(c.in)
		if err != nil {
			t.Fatalf("ParseCounts(%q): %v", c.in, err)
		}
		mask, err := set.mask()
		if err != nil {
			t.Fatalf("ParseCounts(%q) mask: %v", c.in, err)
		}
		if mask != c.want {
			t.Fatalf("ParseCounts(%q) = %v, want %v", c.in, mask, c.want)
		}
	}

	for _, in := range []string{"x", "4-2", "1,y", "9"} {
		set, err := ParseCounts(in)
		if err == nil {
			if _, err = set.mask(); err == nil {
				t.Fatalf("ParseCounts(%q) accepted", in)
			}
		}
	}
}

func TestParseNeighborMode(t *testing.T) {
	for _, in := range []string{"m", "Moore", "MOORE"} {
		mode, err := ParseNeighborMode(in)
		if err != nil || mode != Moore {
			t.Fatalf("ParseNeighborMode(%q) = %v, %v", in, mode, err)
		}
	}
	for _, in := range []string{"v", "vn", "VonNeumann"} {
		mode, err := ParseNeighborMode(in)
		if err != nil || mode != VonNeumann {
			t.Fatalf("ParseNeighborMode(%q) = %v, %v", in, mode, err)
		}
	}
	if _, err := ParseNeighborMode("hexagonal"); err == nil {
		t.Fatal("ParseNeighborMode accepted unknown mode")
	}
}
