package sand

// Step advances every active chunk by one tick. When no chunk is active the
// whole step is skipped. Chunk order and cell order within each chunk are
// shuffled so flow has no preferred direction.
func (w *World) Step() {
	if w.stepping {
		panic("sand: Step is not reentrant")
	}
	if w.chunks.count() == 0 {
		return
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	w.grid.Sync()

	w.order = append(w.order[:0], w.chunks.list...)
	w.rng.Shuffle(len(w.order), func(i, j int) {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	})
	for _, chunk := range w.order {
		w.stepChunk(chunk)
	}

	w.grid.Swap()
	w.refreshActivity()
	w.stepped++
}

func (w *World) stepChunk(chunk int) {
	x0, y0, x1, y1 := w.chunks.bounds(chunk)
	w.cells = w.cells[:0]
	for y := y0; y < y1; y++ {
		row := y * w.w
		for x := x0; x < x1; x++ {
			w.cells = append(w.cells, row+x)
		}
	}
	w.rng.Shuffle(len(w.cells), func(i, j int) {
		w.cells[i], w.cells[j] = w.cells[j], w.cells[i]
	})
	for _, idx := range w.cells {
		w.updateCell(idx)
	}
}

// refreshActivity rescans the active chunks after the planes were swapped
// and drops the settled ones. Chunks that stay active get their write
// plane re-synced, so both planes match between ticks.
func (w *World) refreshActivity() {
	w.chunks.retain(w.chunkLive)
}

func (w *World) chunkLive(chunk int) bool {
	x0, y0, x1, y1 := w.chunks.bounds(chunk)
	cur, prev := w.grid.Cur(), w.grid.Next()
	for y := y0; y < y1; y++ {
		row := y * w.w
		for x := x0; x < x1; x++ {
			idx := row + x
			if cur[idx] != prev[idx] || w.restless(x, y, idx) {
				w.grid.SyncRect(x0, y0, x1, y1)
				return true
			}
		}
	}
	return false
}
