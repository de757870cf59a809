package render

import (
	"image/color"

	"sandfall/internal/sims/sand"
)

// Source is what a Frame reads from: a grid that can color itself and
// reports which cells changed.
type Source interface {
	Cells() []uint8
	Palette() []color.RGBA
	FillRGBA(buf []byte, r sand.Rect)
	TakeDirty() sand.Rect
}

// Frame is a CPU-side RGBA image of the grid, 4 bytes per cell, updated
// only where the world reports changes.
type Frame struct {
	W, H int
	Pix  []byte

	// Flat draws the base palette without per-cell jitter or flame aging.
	Flat bool

	full bool
}

// NewFrame allocates a frame for a w*h grid. The first Refresh repaints
// every cell.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h), full: true}
}

// Resize reallocates the frame when the grid dimensions change.
func (f *Frame) Resize(w, h int) {
	if w == f.W && h == f.H {
		return
	}
	f.W, f.H = w, h
	f.Pix = make([]byte, 4*w*h)
	f.full = true
}

// Invalidate forces the next Refresh to repaint every cell.
func (f *Frame) Invalidate() { f.full = true }

// Refresh repaints the cells src marked dirty and returns the rectangle that
// was updated. An empty rectangle means nothing changed.
func (f *Frame) Refresh(src Source) sand.Rect {
	r := src.TakeDirty()
	if f.full {
		r = sand.Rect{X1: f.W, Y1: f.H}
		f.full = false
	}
	if r.Empty() {
		return r
	}
	if f.Flat {
		fillPaletteRGBA(f.Pix, src.Cells(), src.Palette(), f.W, r)
		return r
	}
	src.FillRGBA(f.Pix, r)
	return r
}

// fillPaletteRGBA converts the cells inside r into RGBA pixels using a
// palette. Values past the end of the palette use its last entry; an empty
// palette clears the rectangle to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA, stride int, r sand.Rect) {
	last := len(palette) - 1
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			i := y*stride + x
			base := i * 4
			if last < 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			col := palette[min(int(cells[i]), last)]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
