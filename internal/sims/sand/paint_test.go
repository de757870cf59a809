package sand

import "testing"

func TestIgniteRadiusZeroOnEmpty(t *testing.T) {
	world := newTestWorld(96, 96)
	world.Ignite(48, 48, 0)

	idx := world.grid.Index(48, 48)
	if Material(world.grid.Cur()[idx]) != Fire || Material(world.grid.Next()[idx]) != Fire {
		t.Fatal("ignite must write fire into both planes")
	}
	if world.AgeAt(48, 48) != 0 {
		t.Fatalf("fresh fire age %d, want 0", world.AgeAt(48, 48))
	}
	if countNonEmpty(world) != 1 {
		t.Fatal("radius 0 must only touch the centre cell")
	}
	if world.ActiveChunks() != 9 {
		t.Fatalf("expected the chunk and its 8 neighbours active, got %d", world.ActiveChunks())
	}
}

func TestIgniteLeavesIncombustibles(t *testing.T) {
	world := newTestWorld(20, 20)
	paintCell(world, 5, 5, Wall)
	paintCell(world, 6, 5, Sand)
	paintCell(world, 7, 5, Wood)
	world.chunks.reset()

	world.Ignite(6, 5, 1)
	if world.At(5, 5) != Wall || world.At(6, 5) != Sand {
		t.Fatal("wall and sand must not ignite")
	}
	if world.At(7, 5) != Fire || world.At(6, 4) != Fire {
		t.Fatal("wood and empty cells in the disk must ignite")
	}
	if world.ActiveChunks() == 0 {
		t.Fatal("ignite must schedule the chunks it touched")
	}
}

func TestPlaceMaterialDisk(t *testing.T) {
	world := newTestWorld(20, 20)
	world.PlaceMaterial(10, 10, Sand, 2)
	if n := countNonEmpty(world); n != 13 {
		t.Fatalf("radius 2 disk painted %d cells, want 13", n)
	}
	if world.At(12, 10) != Sand || world.At(12, 11) != Empty {
		t.Fatal("disk must use dx*dx+dy*dy <= r*r")
	}
}

func TestPlaceMaterialClipsAtEdges(t *testing.T) {
	world := newTestWorld(20, 20)
	world.PlaceMaterial(0, 0, Sand, 1)
	if n := countNonEmpty(world); n != 3 {
		t.Fatalf("corner brush painted %d cells, want 3", n)
	}

	world.Clear()
	world.PlaceMaterial(-10, -10, Sand, 3)
	world.Ignite(500, 5, 2)
	world.MarkActive(-1, 40)
	if countNonEmpty(world) != 0 || world.ActiveChunks() != 0 {
		t.Fatal("writes entirely off the grid must be ignored")
	}

	world.PlaceMaterial(5, -1, Wall, 1)
	if world.At(5, 0) != Wall || countNonEmpty(world) != 1 {
		t.Fatal("an off-grid centre still paints the cells of its disk that are on the grid")
	}

	world.PlaceMaterial(3, 3, Water, -4)
	if world.At(3, 3) != Water || countNonEmpty(world) != 2 {
		t.Fatal("negative radius must act as 0")
	}
}

func TestPlaceMaterialRespectsDensity(t *testing.T) {
	world := newTestWorld(10, 10)
	paintCell(world, 1, 1, Wall)
	paintCell(world, 2, 2, Water)
	paintCell(world, 3, 3, Sand)

	paintCell(world, 1, 1, Sand)
	if world.At(1, 1) != Wall {
		t.Fatal("sand must not overwrite wall")
	}
	paintCell(world, 2, 2, Sand)
	if world.At(2, 2) != Sand {
		t.Fatal("sand should overwrite the lighter water")
	}
	paintCell(world, 3, 3, Water)
	if world.At(3, 3) != Sand {
		t.Fatal("water must not overwrite the heavier sand")
	}
	paintCell(world, 1, 1, Empty)
	if world.At(1, 1) != Empty {
		t.Fatal("erasing must clear walls too")
	}
}

func TestPlaceMaterialResetsAge(t *testing.T) {
	world := newTestWorld(10, 10)
	paintCell(world, 4, 4, Fire)
	world.age[world.grid.Index(4, 4)] = 50
	paintCell(world, 4, 4, Sand)
	if world.At(4, 4) != Sand || world.AgeAt(4, 4) != 0 {
		t.Fatalf("painted cell = %s age %d, want sand age 0", world.At(4, 4), world.AgeAt(4, 4))
	}
}

func TestPlaceMaterialInvalidPanics(t *testing.T) {
	world := newTestWorld(10, 10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an invalid material")
		}
	}()
	world.PlaceMaterial(-50, -50, Material(200), 1)
}

func TestKindleOnlyStaticFuel(t *testing.T) {
	world := newTestWorld(10, 10)
	paintCell(world, 2, 2, Wood)
	paintCell(world, 3, 2, Wall)
	paintCell(world, 2, 3, Dirt)

	world.Kindle(2, 2, 1)
	if world.AgeAt(2, 2) != 1 {
		t.Fatal("wood should be smouldering")
	}
	if world.AgeAt(3, 2) != 0 || world.AgeAt(2, 3) != 0 {
		t.Fatal("only static flammable cells can smoulder")
	}
}

func TestStrokeLeavesNoGaps(t *testing.T) {
	world := newTestWorld(20, 10)
	world.Stroke(Tool{Kind: ToolDraw, Material: Wall}, 0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if world.At(x, 0) != Wall {
			t.Fatalf("gap at (%d,0)", x)
		}
	}

	world.Stroke(Tool{Kind: ToolDraw, Material: Wall}, 2, 9, 9, 2)
	for i := 0; i <= 7; i++ {
		if world.At(2+i, 9-i) != Wall {
			t.Fatalf("diagonal gap at (%d,%d)", 2+i, 9-i)
		}
	}

	world.Stroke(Tool{Kind: ToolErase, Radius: 1}, 0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if world.At(x, 0) != Empty {
			t.Fatalf("erase stroke left (%d,0) = %s", x, world.At(x, 0))
		}
	}
}

func TestHugeBrushOnlyTouchesTheGrid(t *testing.T) {
	world := newTestWorld(20, 10)
	world.PlaceMaterial(5, 5, Sand, 1<<40)
	if n := countNonEmpty(world); n != 200 {
		t.Fatalf("huge brush painted %d cells, want all 200", n)
	}

	world = newTestWorld(20, 10)
	world.PlaceMaterial(-1<<40, 0, Sand, 1<<40)
	world.Ignite(1<<40, 1<<40, 1<<40)
	if n := countNonEmpty(world); n != 0 {
		t.Fatalf("brush centred far off the grid painted %d cells", n)
	}

	world.PlaceMaterial(-MaxBrushRadius, 0, Wall, 1<<40)
	if world.At(0, 0) != Wall || countNonEmpty(world) != 1 {
		t.Fatal("clamped brush should just reach the corner cell")
	}
}

func TestStrokeClipsFarEndpoints(t *testing.T) {
	world := newTestWorld(20, 10)
	world.Stroke(Tool{Kind: ToolDraw, Material: Wall}, -1<<40, 5, 1<<40, 5)
	for x := 0; x < 20; x++ {
		if world.At(x, 5) != Wall {
			t.Fatalf("clipped stroke left a gap at (%d,5)", x)
		}
	}
	if n := countNonEmpty(world); n != 20 {
		t.Fatalf("clipped stroke painted %d cells, want 20", n)
	}

	world = newTestWorld(20, 10)
	world.Stroke(Tool{Kind: ToolDraw, Material: Wall}, -1000, -1000, 1000, 1000)
	for i := 0; i < 10; i++ {
		if world.At(i, i) != Wall {
			t.Fatalf("clipped diagonal gap at (%d,%d)", i, i)
		}
	}
	if n := countNonEmpty(world); n != 10 {
		t.Fatalf("clipped diagonal painted %d cells, want 10", n)
	}

	world.Stroke(Tool{Kind: ToolDraw, Material: Wall}, -50, -3, 80, -3)
	if n := countNonEmpty(world); n != 10 {
		t.Fatal("a stroke that misses the grid must paint nothing")
	}
}

func TestToolKindString(t *testing.T) {
	names := map[ToolKind]string{
		ToolDraw:     "draw",
		ToolErase:    "erase",
		ToolIgnite:   "ignite",
		ToolKindle:   "kindle",
		ToolKind(99): "unknown",
	}
	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Fatalf("ToolKind(%d).String()=%q, want %q", kind, got, want)
		}
	}
}
