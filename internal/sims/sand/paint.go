package sand

import "math"

// PlaceMaterial paints m into every cell of the disk of the given radius
// centred on (x, y). A cell is overwritten when it is empty, when m is
// Empty (erasing), or when m can displace its occupant. Writes land in
// both planes so they are visible to the next tick. Cells off the grid are
// skipped.
func (w *World) PlaceMaterial(x, y int, m Material, radius int) {
	w.mustBeIdle()
	t := &w.table
	_ = t[m] // invalid materials panic even when the brush misses the grid
	w.eachInDisk(x, y, radius, func(nx, ny, idx int) {
		occupant := Material(w.grid.Cur()[idx])
		if m != Empty && occupant != Empty && !t.CanDisplace(m, occupant) {
			return
		}
		w.paint(nx, ny, idx, m)
	})
}

// Ignite sets every empty or flammable cell in the disk to fresh fire.
// Other materials are left as they are, but their chunks are still
// scheduled.
func (w *World) Ignite(x, y, radius int) {
	w.mustBeIdle()
	t := &w.table
	w.eachInDisk(x, y, radius, func(nx, ny, idx int) {
		occupant := Material(w.grid.Cur()[idx])
		if occupant == Empty || t.CanBurn(occupant) {
			w.paint(nx, ny, idx, Fire)
			return
		}
		w.chunks.markActive(nx, ny)
		w.expandDirty(nx, ny)
	})
}

// Kindle starts every static flammable cell in the disk smouldering: it
// keeps its type but ages each tick until it is consumed, throwing embers
// on the way. Cells already smouldering are left alone.
func (w *World) Kindle(x, y, radius int) {
	w.mustBeIdle()
	t := &w.table
	w.eachInDisk(x, y, radius, func(nx, ny, idx int) {
		m := Material(w.grid.Cur()[idx])
		if !t.IsStatic(m) || !t.CanBurn(m) || w.age[idx] > 0 {
			return
		}
		w.age[idx] = 1
		w.chunks.markActive(nx, ny)
		w.expandDirty(nx, ny)
	})
}

func (w *World) paint(x, y, idx int, m Material) {
	w.grid.Set(idx, uint8(m))
	w.age[idx] = 0
	w.chunks.markActive(x, y)
	w.expandDirty(x, y)
}

// MaxBrushRadius bounds every brush. Larger radii are clamped.
const MaxBrushRadius = 1024

// eachInDisk visits the cells of the disk that lie on the grid. The loops
// only cover the part of the bounding box that overlaps the grid.
func (w *World) eachInDisk(x, y, radius int, fn func(nx, ny, idx int)) {
	radius = max(0, min(radius, MaxBrushRadius))
	if x < -radius || x >= w.w+radius || y < -radius || y >= w.h+radius {
		return
	}
	r2 := radius * radius
	for dy := max(-radius, -y); dy <= min(radius, w.h-1-y); dy++ {
		ny := y + dy
		for dx := max(-radius, -x); dx <= min(radius, w.w-1-x); dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			nx := x + dx
			fn(nx, ny, ny*w.w+nx)
		}
	}
}

// ToolKind selects what a Tool does to the cells under the brush.
type ToolKind uint8

const (
	ToolDraw ToolKind = iota
	ToolErase
	ToolIgnite
	ToolKindle
)

func (k ToolKind) String() string {
	switch k {
	case ToolDraw:
		return "draw"
	case ToolErase:
		return "erase"
	case ToolIgnite:
		return "ignite"
	case ToolKindle:
		return "kindle"
	default:
		return "unknown"
	}
}

// Tool is a brush: what it does, which material it lays down, and its
// radius in cells.
type Tool struct {
	Kind     ToolKind
	Material Material
	Radius   int
}

// Apply uses the tool once at (x, y).
func (w *World) Apply(tool Tool, x, y int) {
	switch tool.Kind {
	case ToolErase:
		w.PlaceMaterial(x, y, Empty, tool.Radius)
	case ToolIgnite:
		w.Ignite(x, y, tool.Radius)
	case ToolKindle:
		w.Kindle(x, y, tool.Radius)
	default:
		w.PlaceMaterial(x, y, tool.Material, tool.Radius)
	}
}

// Stroke applies the tool at every point of the line from (x0, y0) to
// (x1, y1), so a fast drag leaves no gaps. Only the stretch of the line
// within brush reach of the grid is walked.
func (w *World) Stroke(tool Tool, x0, y0, x1, y1 int) {
	reach := max(0, min(tool.Radius, MaxBrushRadius))
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, -reach, -reach, w.w-1+reach, w.h-1+reach)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		w.Apply(tool, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine trims the segment to the inclusive box [minX,maxX]×[minY,maxY]
// (Liang-Barsky). Segments already inside are returned unchanged; ok is
// false when the segment misses the box.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY int) (int, int, int, int, bool) {
	inside := func(x, y int) bool { return x >= minX && x <= maxX && y >= minY && y <= maxY }
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - float64(minX)},
		{dx, float64(maxX) - fx0},
		{-dy, fy0 - float64(minY)},
		{dy, float64(maxY) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	clampX := func(v float64) int { return max(minX, min(maxX, int(math.Round(v)))) }
	clampY := func(v float64) int { return max(minY, min(maxY, int(math.Round(v)))) }
	return clampX(fx0 + t0*dx), clampY(fy0 + t0*dy), clampX(fx0 + t1*dx), clampY(fy0 + t1*dy), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
