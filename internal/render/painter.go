//go:build ebiten

package render

import (
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a Frame mirrored into a single ebiten image.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{frame: NewFrame(w, h), img: ebiten.NewImage(w, h)}
}

// Frame exposes the CPU-side pixels, mostly so callers can toggle Flat.
func (gp *GridPainter) Frame() *Frame { return gp.frame }

// Blit refreshes the dirty part of the frame, uploads it when anything
// changed and draws the image scaled onto dst. It returns the refreshed
// rectangle.
func (gp *GridPainter) Blit(dst *ebiten.Image, src Source, w, h, scale int) sand.Rect {
	if w != gp.frame.W || h != gp.frame.H {
		gp.frame.Resize(w, h)
		gp.img.Dispose()
		gp.img = ebiten.NewImage(w, h)
	}
	r := gp.frame.Refresh(src)
	if !r.Empty() {
		gp.img.WritePixels(gp.frame.Pix)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
	return r
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.W, gp.frame.H }
