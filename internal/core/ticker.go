package core

// Ticker drives a Sim behind a FixedStep gate and a pause switch. Frontends
// call Advance once per frame; pausing simply stops Step from being called.
type Ticker struct {
	sim    Sim
	clock  *FixedStep
	paused bool
	ticks  uint64
}

// NewTicker wraps sim with a fixed-step gate running at tps.
func NewTicker(sim Sim, tps int) *Ticker {
	return &Ticker{sim: sim, clock: NewFixedStep(tps)}
}

// Sim returns the driven simulation.
func (t *Ticker) Sim() Sim { return t.sim }

// SetTPS changes the target tick rate.
func (t *Ticker) SetTPS(tps int) { t.clock.SetTPS(tps) }

// Paused reports whether ticking is suspended.
func (t *Ticker) Paused() bool { return t.paused }

// SetPaused suspends or resumes ticking.
func (t *Ticker) SetPaused(paused bool) {
	if t.paused && !paused {
		t.clock.Reset()
	}
	t.paused = paused
}

// TogglePause flips the pause switch and returns the new state.
func (t *Ticker) TogglePause() bool {
	t.SetPaused(!t.paused)
	return t.paused
}

// Ticks reports how many times Step has been invoked through this ticker.
func (t *Ticker) Ticks() uint64 { return t.ticks }

// Advance steps the simulation when it is running and a fixed step has
// elapsed. It reports whether a step happened.
func (t *Ticker) Advance() bool {
	if t.paused || !t.clock.ShouldStep() {
		return false
	}
	t.StepOnce()
	return true
}

// StepOnce advances the simulation by exactly one tick, ignoring both the
// gate and the pause switch.
func (t *Ticker) StepOnce() {
	t.sim.Step()
	t.ticks++
}
