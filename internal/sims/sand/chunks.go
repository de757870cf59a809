package sand

// DefaultChunkSize is the side of a square activity chunk in cells.
const DefaultChunkSize = 32

// chunkTracker partitions the grid into square chunks and keeps the set of
// chunks that need processing. Membership is a flag per chunk plus a list
// in activation order, so the driver can iterate without scanning flags.
type chunkTracker struct {
	size       int
	w, h       int
	cols, rows int
	flags      []bool
	list       []int
}

func newChunkTracker(w, h, size int) *chunkTracker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	cols := (w + size - 1) / size
	rows := (h + size - 1) / size
	return &chunkTracker{
		size:  size,
		w:     w,
		h:     h,
		cols:  cols,
		rows:  rows,
		flags: make([]bool, cols*rows),
		list:  make([]int, 0, cols*rows),
	}
}

// markActive activates the chunk holding (x, y) and its eight neighbours.
// Cells outside the grid are ignored.
func (c *chunkTracker) markActive(x, y int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	cx := x / c.size
	cy := y / c.size
	for dy := -1; dy <= 1; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= c.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := cx + dx
			if nx < 0 || nx >= c.cols {
				continue
			}
			c.activate(ny*c.cols + nx)
		}
	}
}

func (c *chunkTracker) activate(idx int) {
	if c.flags[idx] {
		return
	}
	c.flags[idx] = true
	c.list = append(c.list, idx)
}

// markAll activates every chunk.
func (c *chunkTracker) markAll() {
	for i := range c.flags {
		c.activate(i)
	}
}

// retain drops every active chunk for which keep returns false.
func (c *chunkTracker) retain(keep func(idx int) bool) {
	kept := c.list[:0]
	for _, idx := range c.list {
		if keep(idx) {
			kept = append(kept, idx)
			continue
		}
		c.flags[idx] = false
	}
	c.list = kept
}

// reset deactivates everything.
func (c *chunkTracker) reset() {
	clear(c.flags)
	c.list = c.list[:0]
}

// bounds returns the clipped cell rectangle [x0,x1)×[y0,y1) of a chunk.
func (c *chunkTracker) bounds(idx int) (x0, y0, x1, y1 int) {
	x0 = (idx % c.cols) * c.size
	y0 = (idx / c.cols) * c.size
	x1 = min(x0+c.size, c.w)
	y1 = min(y0+c.size, c.h)
	return x0, y0, x1, y1
}

func (c *chunkTracker) isActive(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.flags[cy*c.cols+cx]
}

func (c *chunkTracker) count() int { return len(c.list) }
