package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// while frames are drawn at whatever rate the host loop manages.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset forgets elapsed time, so the next tick waits a full step. Used when
// resuming from pause.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick of backlog is kept, so a stalled frame does not trigger
// a burst of catch-up ticks.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
