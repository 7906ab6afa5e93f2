package core

import "time"

// FixedStep gates work to a steady rate inside a faster loop, e.g. refreshing
// the HUD a few times per second while frames render at the display rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing tps times per second. The first
// check always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the interval between firings.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the gated work should run now.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Do not let a long stall turn into a burst of catch-up firings.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
