package sand

import "image/color"

var flameColors = [...]color.RGBA{
	{R: 255, G: 50, B: 0, A: 255},
	{R: 255, G: 120, B: 0, A: 255},
	{R: 255, G: 180, B: 0, A: 255},
}

const (
	grainJitter = 10
	flameJitter = 20
)

// Palette returns the base color of every material, indexed by material
// value. Renderers that only need flat colors can map Cells through it.
func (w *World) Palette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	for i := range palette {
		palette[i] = w.table[i].Color
	}
	return palette
}

// ColorAt returns the display color of the cell at (x, y): flames shift
// from red to yellow as they age, and every other non-empty cell gets a
// small per-cell brightness jitter so piles read as grains. The jitter is
// derived from the cell position and material, so a frame is reproducible.
func (w *World) ColorAt(x, y int) color.RGBA {
	if !w.grid.InBounds(x, y) {
		return color.RGBA{}
	}
	idx := w.grid.Index(x, y)
	return w.colorOf(idx, Material(w.grid.Cur()[idx]), w.age[idx])
}

// FillRGBA writes the display color of every cell in r into buf, which
// holds 4 bytes per cell for the whole grid.
func (w *World) FillRGBA(buf []byte, r Rect) {
	r = r.clip(w.w, w.h)
	cur := w.grid.Cur()
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			idx := y*w.w + x
			c := w.colorOf(idx, Material(cur[idx]), w.age[idx])
			base := idx * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

func (w *World) colorOf(idx int, m Material, age uint16) color.RGBA {
	switch m {
	case Empty:
		return w.table[Empty].Color
	case Fire:
		ratio := 0.0
		if burn := w.table[Fire].BurnTime; burn > 0 {
			ratio = float64(age) / float64(burn)
		}
		band := min(int(ratio*float64(len(flameColors))), len(flameColors)-1)
		return jitter(flameColors[band], cellNoise(idx, m, age), flameJitter)
	default:
		return jitter(w.table[m].Color, cellNoise(idx, m, 0), grainJitter)
	}
}

// cellNoise hashes a cell into 32 well-mixed bits.
func cellNoise(idx int, m Material, salt uint16) uint32 {
	h := uint32(idx)*0x9e3779b1 ^ uint32(m)<<24 ^ uint32(salt)*0x85ebca6b
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

// jitter offsets each channel by a value in [-amount, amount] taken from
// three bytes of noise.
func jitter(c color.RGBA, noise uint32, amount int) color.RGBA {
	span := 2*amount + 1
	shift := func(v uint8, b uint32) uint8 {
		out := int(v) + int(b%uint32(span)) - amount
		return uint8(max(0, min(255, out)))
	}
	return color.RGBA{
		R: shift(c.R, noise&0xff),
		G: shift(c.G, (noise>>8)&0xff),
		B: shift(c.B, (noise>>16)&0xff),
		A: c.A,
	}
}

func (r Rect) clip(w, h int) Rect {
	return Rect{
		X0: max(r.X0, 0),
		Y0: max(r.Y0, 0),
		X1: min(r.X1, w),
		Y1: min(r.Y1, h),
	}
}
