package core

import "time"

// FixedStep paces simulation ticks with a wall-clock delay between them.
type FixedStep struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires once per delay.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetDelay(delay)
	fs.accumulator = fs.delay
	return fs
}

// SetDelay changes the pause between ticks. It is safe to call from the main loop.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = time.Millisecond
	}
	f.delay = delay
}

// Delay reports the current pause between ticks.
func (f *FixedStep) Delay() time.Duration { return f.delay }

// ShouldStep reports whether the simulation should advance by one tick at now.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.delay {
		f.accumulator -= f.delay
		if f.accumulator > f.delay {
			// At most one tick per call.
			f.accumulator = 0
		}
		return true
	}
	return false
}
