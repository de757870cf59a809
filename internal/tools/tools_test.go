package tools

import (
	"slices"
	"testing"
	"time"

	"sandfall/internal/sims/sand"
)

func newWorld(w, h int) *sand.World {
	cfg := sand.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 3
	return sand.NewWithConfig(cfg)
}

func TestToolboxKeyBindings(t *testing.T) {
	tb := NewToolbox()
	if tool := tb.Tool(); tool.Kind != sand.ToolDraw || tool.Material != sand.Sand || tool.Radius != DefaultRadius {
		t.Fatalf("unexpected default tool %+v", tool)
	}

	for i, m := range Hotbar {
		tb.Key(rune('1' + i))
		if tb.Tool().Material != m {
			t.Fatalf("key %d selected %s, want %s", i+1, tb.Tool().Material, m)
		}
	}
	tb.Key('7')
	if tb.Tool().Material != sand.Wall {
		t.Fatal("unbound digit changed the material")
	}

	tb.Key('e')
	if tb.Tool().Kind != sand.ToolErase {
		t.Fatal("e should select erase")
	}
	tb.Key('f')
	if tb.Tool().Kind != sand.ToolIgnite {
		t.Fatal("f should select ignite")
	}
	tb.Key('k')
	if tb.Tool().Kind != sand.ToolKindle {
		t.Fatal("k should select kindle")
	}
	tb.Key('2')
	if tb.Tool().Kind != sand.ToolDraw {
		t.Fatal("picking a material should switch back to drawing")
	}

	actions := map[rune]Action{
		'c': ActionClear, ' ': ActionTogglePause, 'n': ActionStepOnce,
		'r': ActionReset, 's': ActionReseed, 'o': ActionToggleOverlay,
		'g': ActionToggleFlat, 'q': ActionQuit, 'x': ActionNone,
	}
	for r, want := range actions {
		if got := tb.Key(r); got != want {
			t.Fatalf("key %q returned %s, want %s", r, got, want)
		}
	}
}

func TestBrushRadiusClamped(t *testing.T) {
	tb := NewToolbox()
	for i := 0; i < 30; i++ {
		tb.Key(']')
	}
	if tb.Tool().Radius != MaxRadius {
		t.Fatalf("radius = %d, want %d", tb.Tool().Radius, MaxRadius)
	}
	for i := 0; i < 30; i++ {
		tb.Key('[')
	}
	if tb.Tool().Radius != MinRadius {
		t.Fatalf("radius = %d, want %d", tb.Tool().Radius, MinRadius)
	}
}

func TestDragInterpolates(t *testing.T) {
	world := newWorld(40, 10)
	tb := NewToolbox()
	tb.Key('6')
	tb.SetRadius(1)
	tb.Drag(world, 5, 5)
	if world.At(5, 5) != sand.Empty {
		t.Fatal("drag without press must not paint")
	}

	tb.Press(world, 0, 5)
	tb.Drag(world, 30, 5)
	tb.Release()
	for x := 0; x <= 30; x++ {
		if world.At(x, 5) != sand.Wall {
			t.Fatalf("stroke left a gap at (%d,5)", x)
		}
	}
	if tb.Drawing() {
		t.Fatal("release must end the stroke")
	}
}

func TestSessionActions(t *testing.T) {
	world := newWorld(32, 32)
	s := NewSession(world, 60, 11)
	s.now = func() time.Time { return time.Unix(0, 12345) }

	s.Press(10, 10)
	s.Release()
	if world.At(10, 10) != sand.Sand {
		t.Fatal("press should paint sand")
	}

	s.Key(' ')
	if !s.Paused() {
		t.Fatal("space should pause")
	}
	s.Key('n')
	if world.Ticks() != 1 {
		t.Fatalf("step once ran %d ticks", world.Ticks())
	}

	s.Key('c')
	if world.At(10, 11) != sand.Empty || world.ActiveChunks() != 0 {
		t.Fatal("clear should empty the world")
	}

	s.Key('s')
	if s.Seed() != 12345 {
		t.Fatalf("reseed used %d", s.Seed())
	}

	s.Key('o')
	s.Key('g')
	if !s.Overlay() || !s.Flat() {
		t.Fatal("overlay and flat toggles not applied")
	}
	if got := s.Key('q'); got != ActionQuit {
		t.Fatalf("q returned %s", got)
	}
	if s.Status() == "" {
		t.Fatal("empty status")
	}
}

func TestResetWithIsReusedByLaterResets(t *testing.T) {
	world := newWorld(24, 24)
	s := NewSession(world, 60, 11)
	run := func() []uint8 {
		for x := 2; x < 22; x++ {
			world.PlaceMaterial(x, 2, sand.Water, 0)
		}
		for i := 0; i < 30; i++ {
			world.Step()
		}
		return append([]uint8(nil), world.Cells()...)
	}

	s.ResetWith(77)
	if s.Seed() != 77 || world.Ticks() != 0 {
		t.Fatalf("seed %d ticks %d after ResetWith", s.Seed(), world.Ticks())
	}
	want := run()

	s.Do(ActionReset)
	if s.Seed() != 77 {
		t.Fatalf("reset fell back to seed %d", s.Seed())
	}
	if got := run(); !slices.Equal(got, want) {
		t.Fatal("reset after ResetWith did not replay the same run")
	}
}
