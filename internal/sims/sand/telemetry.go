package sand

// SettleResult captures telemetry from a deterministic run that is left to
// settle on its own.
type SettleResult struct {
	// Settled reports whether the active set drained before the tick limit.
	Settled bool
	// Ticks is the number of ticks that actually ran.
	Ticks int
	// PeakActiveChunks is the largest active set seen before any tick.
	PeakActiveChunks int
	// ActiveTickSum adds up the active chunk count of every tick, a rough
	// measure of total work.
	ActiveTickSum int
	// Counts holds the number of cells of each material once the run ended.
	Counts [materialCount]int
}

// Count returns the final number of cells holding m.
func (r SettleResult) Count(m Material) int {
	if !m.Valid() {
		return 0
	}
	return r.Counts[m]
}

// Settle builds a world from cfg, resets it, lets scene paint on top of the
// reset state and steps until no chunk is active or maxTicks have run.
func Settle(cfg Config, scene func(*World), maxTicks int) SettleResult {
	world := NewWithConfig(cfg)
	world.Reset(0)
	if scene != nil {
		scene(world)
	}

	var result SettleResult
	for result.Ticks < maxTicks {
		active := world.ActiveChunks()
		if active == 0 {
			break
		}
		result.PeakActiveChunks = max(result.PeakActiveChunks, active)
		result.ActiveTickSum += active
		world.Step()
		result.Ticks++
	}
	result.Settled = world.ActiveChunks() == 0
	result.Counts = world.Counts()
	return result
}

// Counts tallies the cells of each material in the current plane.
func (w *World) Counts() [materialCount]int {
	var counts [materialCount]int
	for _, v := range w.grid.Cur() {
		counts[v]++
	}
	return counts
}
