package sand

import (
	"sandfall/internal/core"
)

// Rand is the randomness consumed by the tick driver and the rules.
// *core.RNG and *math/rand/v2.Rand both satisfy it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// World owns all per-cell simulation state: the material double buffer,
// the age plane, the chunk tracker and the dirty region. It is not safe for
// concurrent use.
type World struct {
	cfg   Config
	table Table

	w, h int

	grid   *core.DoubleGrid
	age    []uint16
	chunks *chunkTracker
	dirty  Rect

	rng     Rand
	seeded  *core.RNG
	scene   func(*World)
	stepped uint64

	stepping bool
	order    []int
	cells    []int
}

// New returns a sand simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// material table is copied out of cfg. A zero table or zero Params, as left
// by a bare Config literal, is replaced by the defaults.
func NewWithConfig(cfg Config) *World {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Materials == (Table{}) {
		cfg.Materials = DefaultTable()
	}
	if cfg.Params == (Params{}) {
		cfg.Params = DefaultParams()
	}
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:    cfg,
		table:  cfg.Materials,
		rng:    rng,
		seeded: rng,
	}
	w.allocate(cfg.Width, cfg.Height)
	return w
}

func (w *World) allocate(width, height int) {
	w.grid = core.NewDoubleGrid(width, height)
	w.w, w.h = w.grid.W, w.grid.H
	w.cfg.Width, w.cfg.Height = w.w, w.h
	w.age = make([]uint16, w.w*w.h)
	w.chunks = newChunkTracker(w.w, w.h, w.cfg.ChunkSize)
	w.order = make([]int, 0, len(w.chunks.flags))
	w.cells = make([]int, 0, w.cfg.ChunkSize*w.cfg.ChunkSize)
	w.dirty = Rect{}
}

// SetRand substitutes the random source, typically with a seeded one in
// tests. Reset no longer reseeds once a custom source is installed.
func (w *World) SetRand(r Rand) {
	if r == nil {
		w.rng = w.seeded
		return
	}
	w.rng = r
}

// SetScene installs a painter that Reset runs after clearing the grid.
func (w *World) SetScene(scene func(*World)) { w.scene = scene }

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Table returns the material table the world was built with.
func (w *World) Table() *Table { return &w.table }

// Cells exposes the current material plane. Callers must not modify it.
func (w *World) Cells() []uint8 { return w.grid.Cur() }

// Ages exposes the per-cell age plane. Callers must not modify it.
func (w *World) Ages() []uint16 { return w.age }

// Ticks reports how many ticks actually ran since the last reset.
func (w *World) Ticks() uint64 { return w.stepped }

// InBounds reports whether (x, y) lies on the grid.
func (w *World) InBounds(x, y int) bool { return w.grid.InBounds(x, y) }

// At returns the material at (x, y), or Empty outside the grid.
func (w *World) At(x, y int) Material {
	if !w.grid.InBounds(x, y) {
		return Empty
	}
	return Material(w.grid.Cur()[w.grid.Index(x, y)])
}

// AgeAt returns the age counter at (x, y), or 0 outside the grid.
func (w *World) AgeAt(x, y int) uint16 {
	if !w.grid.InBounds(x, y) {
		return 0
	}
	return w.age[w.grid.Index(x, y)]
}

// ChunkSize reports the side of an activity chunk.
func (w *World) ChunkSize() int { return w.chunks.size }

// ChunkGrid reports the number of chunk columns and rows.
func (w *World) ChunkGrid() (cols, rows int) { return w.chunks.cols, w.chunks.rows }

// ChunkActive reports whether the chunk at chunk coordinates (cx, cy) is
// scheduled for the next tick.
func (w *World) ChunkActive(cx, cy int) bool { return w.chunks.isActive(cx, cy) }

// ActiveChunks returns the number of chunks scheduled for the next tick.
func (w *World) ActiveChunks() int { return w.chunks.count() }

// ActiveChunkList appends the indices of the scheduled chunks to dst.
func (w *World) ActiveChunkList(dst []int) []int { return append(dst, w.chunks.list...) }

// MarkActive schedules the chunk holding (x, y) and its neighbours.
func (w *World) MarkActive(x, y int) { w.chunks.markActive(x, y) }

// MarkAllActive schedules every chunk.
func (w *World) MarkAllActive() { w.chunks.markAll() }

// Clear resets both planes to Empty, every age to zero and the active set
// to empty.
func (w *World) Clear() {
	w.mustBeIdle()
	w.grid.Clear()
	clear(w.age)
	w.chunks.reset()
	w.dirtyAll()
}

// Reset clears the world, reseeds the default random source and repaints
// the configured scene. A zero seed keeps the configured one.
func (w *World) Reset(seed int64) {
	w.Clear()
	w.stepped = 0
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seeded.Seed(effective)
	if w.cfg.Sandbox {
		PaintSandbox(w)
	}
	if w.scene != nil {
		w.scene(w)
	}
}

// Resize reinitialises every plane and the chunk tracker for the new
// dimensions. All content is discarded.
func (w *World) Resize(width, height int) {
	w.mustBeIdle()
	w.allocate(width, height)
	w.dirtyAll()
}

func (w *World) mustBeIdle() {
	if w.stepping {
		panic("sand: world mutated during Step")
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
