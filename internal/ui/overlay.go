//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	chunkTint = color.RGBA{R: 40, G: 220, B: 90, A: 160}
	dirtyTint = color.RGBA{R: 230, G: 60, B: 200, A: 200}
)

// Overlay outlines the chunks scheduled for the next tick and the region
// redrawn in the last frame.
type Overlay struct {
	world *sand.World
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for world drawn at the given scale.
func NewOverlay(world *sand.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the chunk outlines and the dirty rectangle onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, dirty sand.Rect) {
	size := o.world.Size()
	cs := o.world.ChunkSize()
	cols, rows := o.world.ChunkGrid()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if !o.world.ChunkActive(cx, cy) {
				continue
			}
			r := sand.Rect{X0: cx * cs, Y0: cy * cs, X1: min((cx+1)*cs, size.W), Y1: min((cy+1)*cs, size.H)}
			o.outline(screen, r, chunkTint)
		}
	}
	if !dirty.Empty() {
		o.outline(screen, dirty, dirtyTint)
	}
}

func (o *Overlay) outline(screen *ebiten.Image, r sand.Rect, col color.RGBA) {
	s := float64(o.scale)
	x0, y0 := float64(r.X0)*s, float64(r.Y0)*s
	w, h := float64(r.Dx())*s, float64(r.Dy())*s
	o.fill(screen, x0, y0, w, 1, col)
	o.fill(screen, x0, y0+h-1, w, 1, col)
	o.fill(screen, x0, y0, 1, h, col)
	o.fill(screen, x0+w-1, y0, 1, h, col)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
