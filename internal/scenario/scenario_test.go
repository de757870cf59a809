package scenario

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

const sample = `
name: hourglass
width: 40
height: 30
seed: 12
chunk: 16
params:
  fire_spread_chance: 0.2
ops:
  - op: fill
    material: wall
    rect: [0, 29, 40, 30]
  - op: disk
    material: sand
    at: [20, 5]
    radius: 2
  - op: line
    material: wood
    at: [5, 20]
    to: [14, 20]
  - op: kindle
    at: [5, 20]
  - op: ignite
    at: [35, 25]
`

func TestParseAndPaint(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if s.Name != "hourglass" || len(s.Ops) != 5 {
		t.Fatalf("unexpected scenario %+v", s)
	}

	overrides := s.Overrides()
	for key, want := range map[string]string{
		"w": "40", "h": "30", "seed": "12", "chunk": "16", "fire_spread_chance": "0.2",
	} {
		if got := overrides[key]; got != want {
			t.Fatalf("override %q = %q, want %q", key, got, want)
		}
	}
	if _, ok := overrides["sandbox"]; ok {
		t.Fatal("sandbox must only be set when enabled")
	}

	cfg := sand.FromMap(s.Merge(map[string]string{"w": "999", "ember_chance": "0.5"}))
	if cfg.Width != 40 || cfg.Params.EmberChance != 0.5 || cfg.Params.FireSpreadChance != 0.2 {
		t.Fatalf("merge did not layer scenario over base config: %+v", cfg)
	}

	world := sand.NewWithConfig(cfg)
	world.SetScene(s.Paint)
	world.Reset(0)

	for x := 0; x < 40; x++ {
		if world.At(x, 29) != sand.Wall {
			t.Fatalf("fill missed (%d,29)", x)
		}
	}
	if world.At(20, 5) != sand.Sand || world.At(22, 5) != sand.Sand {
		t.Fatal("disk not painted")
	}
	for x := 5; x <= 14; x++ {
		if world.At(x, 20) != sand.Wood {
			t.Fatalf("line missed (%d,20)", x)
		}
	}
	if world.AgeAt(5, 20) != 1 || world.AgeAt(6, 20) != 0 {
		t.Fatal("kindle should only light the wood under its brush")
	}
	if world.At(35, 25) != sand.Fire {
		t.Fatal("ignite not applied")
	}
	cols, rows := world.ChunkGrid()
	if world.ActiveChunks() != cols*rows {
		t.Fatal("a painted scenario should schedule every chunk")
	}
}

func TestFillClipsToTheGrid(t *testing.T) {
	s, err := Parse([]byte(`
width: 12
height: 8
ops:
  - op: fill
    material: sand
    rect: [-1000000000, 6, 1000000000, 1000000000]
  - op: fill
    material: wall
    rect: [50, 0, 60, 4]
`))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	world := sand.NewWithConfig(sand.FromMap(s.Overrides()))
	world.SetScene(s.Paint)
	world.Reset(0)

	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			m := world.At(x, y)
			if y >= 6 && m != sand.Sand {
				t.Fatalf("(%d,%d) = %s, want sand", x, y, m)
			}
			if m != sand.Empty {
				n++
			}
		}
	}
	if n != 24 {
		t.Fatalf("clipped fills painted %d cells, want 24", n)
	}
}

func TestValidateRejectsBadScenarios(t *testing.T) {
	tests := map[string]string{
		"unknown op":       "ops: [{op: explode, at: [1, 1]}]",
		"unknown material": "ops: [{op: disk, material: lava, at: [1, 1]}]",
		"short point":      "ops: [{op: disk, material: sand, at: [1]}]",
		"short rect":       "ops: [{op: fill, material: sand, rect: [0, 0, 1]}]",
		"line without end": "ops: [{op: line, material: sand, at: [0, 0]}]",
		"negative radius":  "ops: [{op: ignite, at: [0, 0], radius: -1}]",
		"unknown param":    "params: {gravity: 0.5}",
		"param range":      "params: {ember_chance: 2}",
		"negative size":    "width: -5",
		"not yaml":         "ops: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("Parse() = nil error, want failure")
			}
		})
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if s.Width != 40 {
		t.Fatalf("Width = %d, want 40", s.Width)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want wrapped ErrNotExist", err)
	}
}

func TestScenarioThroughRegistry(t *testing.T) {
	s, err := Parse([]byte("width: 24\nheight: 12\nsandbox: false\n"))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	sim := core.Sims()["sand"](s.Overrides())
	if size := sim.Size(); size.W != 24 || size.H != 12 {
		t.Fatalf("size = %+v, want 24x12", size)
	}
}
