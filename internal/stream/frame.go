// Package stream serves a running sand world over a websocket. Clients
// receive binary frames holding the cells that changed and send JSON
// commands that paint into the world.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"

	"sandfall/internal/sims/sand"
)

// HeaderSize is the length of the fixed frame header.
const HeaderSize = 32

// ErrShortFrame is returned for frames whose payload does not match the
// header.
var ErrShortFrame = errors.New("stream: short frame")

// Frame is one decoded update: the grid dimensions, the tick it was taken
// at and the material values of every cell in Rect, row by row.
type Frame struct {
	W, H  int
	Tick  uint64
	Rect  sand.Rect
	Cells []uint8
}

// At returns the material at (x, y), which must lie inside f.Rect.
func (f Frame) At(x, y int) sand.Material {
	return sand.Material(f.Cells[(y-f.Rect.Y0)*f.Rect.Dx()+(x-f.Rect.X0)])
}

// EncodeFrame serialises the cells of world inside r.
//
// Layout, little endian: width u32, height u32, tick u64, then x0 y0 x1 y1
// as u32, then the material bytes.
func EncodeFrame(world *sand.World, r sand.Rect) []byte {
	size := world.Size()
	r = sand.Rect{
		X0: max(r.X0, 0), Y0: max(r.Y0, 0),
		X1: min(r.X1, size.W), Y1: min(r.Y1, size.H),
	}
	if r.Empty() {
		r = sand.Rect{}
	}
	buf := make([]byte, HeaderSize, HeaderSize+r.Dx()*r.Dy())
	binary.LittleEndian.PutUint32(buf[0:], uint32(size.W))
	binary.LittleEndian.PutUint32(buf[4:], uint32(size.H))
	binary.LittleEndian.PutUint64(buf[8:], world.Ticks())
	binary.LittleEndian.PutUint32(buf[16:], uint32(r.X0))
	binary.LittleEndian.PutUint32(buf[20:], uint32(r.Y0))
	binary.LittleEndian.PutUint32(buf[24:], uint32(r.X1))
	binary.LittleEndian.PutUint32(buf[28:], uint32(r.Y1))
	cells := world.Cells()
	for y := r.Y0; y < r.Y1; y++ {
		buf = append(buf, cells[y*size.W+r.X0:y*size.W+r.X1]...)
	}
	return buf
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(data []byte) (Frame, error) {
	if len(data) < HeaderSize {
		return Frame{}, fmt.Errorf("%w: %d byte header", ErrShortFrame, len(data))
	}
	u32 := func(off int) int { return int(binary.LittleEndian.Uint32(data[off:])) }
	f := Frame{
		W:    u32(0),
		H:    u32(4),
		Tick: binary.LittleEndian.Uint64(data[8:]),
		Rect: sand.Rect{X0: u32(16), Y0: u32(20), X1: u32(24), Y1: u32(28)},
	}
	if f.Rect.X1 > f.W || f.Rect.Y1 > f.H || f.Rect.X0 > f.Rect.X1 || f.Rect.Y0 > f.Rect.Y1 {
		return Frame{}, fmt.Errorf("stream: rect %+v outside %dx%d grid", f.Rect, f.W, f.H)
	}
	if want := f.Rect.Dx() * f.Rect.Dy(); len(data)-HeaderSize != want {
		return Frame{}, fmt.Errorf("%w: %d cells, want %d", ErrShortFrame, len(data)-HeaderSize, want)
	}
	f.Cells = data[HeaderSize:]
	return f, nil
}

func fullRect(w, h int) sand.Rect { return sand.Rect{X1: w, Y1: h} }
