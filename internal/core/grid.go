package core

// DoubleGrid stores two equally sized planes of byte-sized cell values in
// row-major order. Cur is the authoritative plane; Next accumulates writes
// for the following generation until Swap promotes it.
type DoubleGrid struct {
	W, H int
	cur  []uint8
	nxt  []uint8
}

// NewDoubleGrid allocates both planes with the given dimensions.
func NewDoubleGrid(w, h int) *DoubleGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &DoubleGrid{W: w, H: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

// Cur exposes the current plane.
func (g *DoubleGrid) Cur() []uint8 { return g.cur }

// Next exposes the write plane.
func (g *DoubleGrid) Next() []uint8 { return g.nxt }

// Index returns the linear slice index for coordinates (x, y).
func (g *DoubleGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid. There is no wrapping.
func (g *DoubleGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Swap exchanges the planes in O(1).
func (g *DoubleGrid) Swap() { g.cur, g.nxt = g.nxt, g.cur }

// Sync copies the current plane into the write plane.
func (g *DoubleGrid) Sync() { copy(g.nxt, g.cur) }

// SyncRect copies the rectangle [x0,x1)×[y0,y1) of the current plane into
// the write plane. The rectangle must already be clipped to the grid.
func (g *DoubleGrid) SyncRect(x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		row := y * g.W
		copy(g.nxt[row+x0:row+x1], g.cur[row+x0:row+x1])
	}
}

// Set writes v into both planes at once.
func (g *DoubleGrid) Set(idx int, v uint8) {
	g.cur[idx] = v
	g.nxt[idx] = v
}

// Clear fills both planes with zeros.
func (g *DoubleGrid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}
