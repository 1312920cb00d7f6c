package app

import "time"

// fixedStep paces simulation updates at a steady steps-per-second rate.
type fixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// newFixedStep constructs a fixedStep controller targeting the given rate.
func newFixedStep(sps int) *fixedStep {
	if sps <= 0 {
		sps = 10
	}
	fs := &fixedStep{step: time.Second / time.Duration(sps)}
	fs.accumulator = fs.step
	return fs
}

// shouldStep reports whether the simulation should advance by one step.
func (f *fixedStep) shouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
