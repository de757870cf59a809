package sand

// Rect is a half-open cell rectangle [X0,X1)×[Y0,Y1).
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// DirtyRegion returns the rectangle of cells written since the last
// TakeDirty. Renderers use it to limit redraws.
func (w *World) DirtyRegion() Rect { return w.dirty }

// TakeDirty returns the dirty region and resets it.
func (w *World) TakeDirty() Rect {
	r := w.dirty
	w.dirty = Rect{}
	return r
}

func (w *World) expandDirty(x, y int) {
	w.dirty = w.dirty.Union(Rect{X0: x, Y0: y, X1: x + 1, Y1: y + 1})
}

func (w *World) dirtyAll() {
	w.dirty = Rect{X1: w.w, Y1: w.h}
}
