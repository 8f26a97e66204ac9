package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRule is returned when a rule cannot be constructed from the
// provided specification.
var ErrInvalidRule = errors.New("invalid rule")

// NeighborMode selects which cells count as neighbors.
type NeighborMode int

const (
	// Moore counts the 8 surrounding cells, diagonals included.
	Moore NeighborMode = iota
	// VonNeumann counts only the 4 axis-adjacent cells.
	VonNeumann
)

// MaxCount reports the largest neighbor count reachable under the mode.
func (m NeighborMode) MaxCount() int {
	if m == VonNeumann {
		return 4
	}
	return 8
}

func (m NeighborMode) String() string {
	if m == VonNeumann {
		return "von Neumann"
	}
	return "Moore"
}

// ParseNeighborMode accepts the short and long spellings used on the
// command line and in config files.
func ParseNeighborMode(s string) (NeighborMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "moore":
		return Moore, nil
	case "v", "vn", "vonneumann", "von neumann":
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("%w: unknown neighbor mode %q", ErrInvalidRule, s)
}

// CountSpec describes a set of neighbor counts in one of several
// convenience forms. All forms normalize to a 9-slot boolean mask where
// the index is the neighbor count.
type CountSpec interface {
	mask() ([9]bool, error)
}

// Count marks a single neighbor count as active.
type Count int

func (c Count) mask() ([9]bool, error) {
	var m [9]bool
	if c < 0 || c > 8 {
		return m, fmt.Errorf("%w: count %d outside [0,8]", ErrInvalidRule, c)
	}
	m[c] = true
	return m, nil
}

// CountRange marks every count in [Min, Max] as active.
type CountRange struct {
	Min, Max int
}

func (r CountRange) mask() ([9]bool, error) {
	var m [9]bool
	if r.Min < 0 || r.Max > 8 || r.Min > r.Max {
		return m, fmt.Errorf("%w: range %d-%d outside [0,8]", ErrInvalidRule, r.Min, r.Max)
	}
	for i := r.Min; i <= r.Max; i++ {
		m[i] = true
	}
	return m, nil
}

// CountSet marks an explicit list of counts as active.
type CountSet []int

func (s CountSet) mask() ([9]bool, error) {
	var m [9]bool
	for _, c := range s {
		if c < 0 || c > 8 {
			return m, fmt.Errorf("%w: count %d outside [0,8]", ErrInvalidRule, c)
		}
		m[c] = true
	}
	return m, nil
}

// CountMask is the raw 9-slot form, index = neighbor count.
type CountMask [9]bool

func (m CountMask) mask() ([9]bool, error) { return [9]bool(m), nil }

// Rule is the immutable configuration of a Life-like automaton. Survival
// and Birth are indexed by neighbor count. MaxState is the alive value
// and the length of the decay countdown; states in (0, MaxState) are
// decaying toward dead. A Rule is a plain value and safe to share
// between engines without synchronization.
type Rule struct {
	Survival [9]bool
	Birth    [9]bool
	MaxState uint8
	Neighbor NeighborMode
}

// NewRule validates and normalizes a rule. It fails when maxState is
// zero, when any count falls outside [0,8], or when von Neumann mode is
// combined with counts above 4 (unreachable under 4-adjacency, so they
// are treated as configuration typos rather than ignored).
func NewRule(survival, birth CountSpec, maxState uint8, neighbor NeighborMode) (Rule, error) {
	if maxState == 0 {
		return Rule{}, fmt.Errorf("%w: maxState must be at least 1", ErrInvalidRule)
	}
	s, err := survival.mask()
	if err != nil {
		return Rule{}, fmt.Errorf("survival: %w", err)
	}
	b, err := birth.mask()
	if err != nil {
		return Rule{}, fmt.Errorf("birth: %w", err)
	}
	for c := neighbor.MaxCount() + 1; c <= 8; c++ {
		if s[c] || b[c] {
			return Rule{}, fmt.Errorf("%w: count %d unreachable under %s adjacency", ErrInvalidRule, c, neighbor)
		}
	}
	return Rule{Survival: s, Birth: b, MaxState: maxState, Neighbor: neighbor}, nil
}

// ConwayRule returns the classic B3/S23 two-state rule.
func ConwayRule() Rule {
	r, err := NewRule(CountSet{2, 3}, Count(3), 1, Moore)
	if err != nil {
		panic(err)
	}
	return r
}

// Next computes one cell's next state from its current state and its
// living-neighbor count. This is the single transition function shared
// by every stepping engine.
func (r Rule) Next(cur uint8, count int) uint8 {
	if r.Birth[count] || (cur == r.MaxState && r.Survival[count]) {
		return r.MaxState
	}
	if cur > 0 {
		return cur - 1
	}
	return 0
}

// ParseCounts reads a neighbor-count list in the forms used by flags and
// config files: "3", "2,3", "2-4", or "" for the empty set.
func ParseCounts(s string) (CountSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CountSet{}, nil
	}
	var set CountSet
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			min, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("%w: bad count %q", ErrInvalidRule, part)
			}
			max, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || min > max {
				return nil, fmt.Errorf("%w: bad range %q", ErrInvalidRule, part)
			}
			for c := min; c <= max; c++ {
				set = append(set, c)
			}
			continue
		}
		c, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad count %q", ErrInvalidRule, part)
		}
		set = append(set, c)
	}
	return set, nil
}
