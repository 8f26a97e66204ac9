package core

import "time"

// FixedStep paces a render loop at a steady generations-per-second rate.
// The TUI front-end uses it; the GUI relies on ebiten's own TPS control.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given
// generations per second.
func NewFixedStep(gps int) *FixedStep {
	if gps <= 0 {
		gps = 10
	}
	fs := &FixedStep{step: time.Second / time.Duration(gps)}
	fs.accumulator = fs.step
	return fs
}

// ShouldStep reports whether the simulation should advance by one
// generation now.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Interval returns the target duration between generations.
func (f *FixedStep) Interval() time.Duration { return f.step }
