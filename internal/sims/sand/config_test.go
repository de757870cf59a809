package sand

import (
	"testing"

	"sandfall/internal/core"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "64",
		"h":                  "32",
		"seed":               "-9",
		"chunk":              "16",
		"sandbox":            "true",
		"direction_chance":   "0.25",
		"fire_spread_chance": "0.5",
		"ember_chance":       "0",
	})
	if cfg.Width != 64 || cfg.Height != 32 || cfg.Seed != -9 || cfg.ChunkSize != 16 {
		t.Fatalf("world keys not applied: %+v", cfg)
	}
	if !cfg.Sandbox {
		t.Fatal("sandbox flag not applied")
	}
	p := cfg.Params
	if p.DirectionChance != 0.25 || p.FireSpreadChance != 0.5 || p.EmberChance != 0 {
		t.Fatalf("rule keys not applied: %+v", p)
	}
	if p.FireRiseChance != DefaultParams().FireRiseChance {
		t.Fatal("unset keys must keep their defaults")
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "-3",
		"h":                "tall",
		"chunk":            "0",
		"sandbox":          "maybe",
		"fire_rise_chance": "1.5",
		"ember_chance":     "-0.1",
	})
	def := DefaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.ChunkSize != def.ChunkSize || cfg.Sandbox {
		t.Fatalf("malformed world keys changed the config: %+v", cfg)
	}
	if cfg.Params != def.Params {
		t.Fatalf("out-of-range probabilities must be ignored: %+v", cfg.Params)
	}
	if FromMap(nil).Params != def.Params {
		t.Fatal("nil map must yield defaults")
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := newTestWorld(64, 64)
	world.PlaceMaterial(10, 10, Sand, 0)
	snap := world.Parameters()

	for key, want := range map[string]string{
		"w":                  "64",
		"seed":               "42",
		"chunk":              "32",
		"fire_spread_chance": "0.05",
		"active_chunks":      "4",
		"ticks":              "0",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected parameter")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	world := newTestWorld(16, 16)
	if !world.SetFloatParameter("fire_spread_chance", 5) {
		t.Fatal("expected fire_spread_chance to be settable")
	}
	if got := world.Config().Params.FireSpreadChance; got != 1 {
		t.Fatalf("fire_spread_chance = %v, want clamp to 1", got)
	}
	if !world.SetFloatParameter("direction_chance", -2) {
		t.Fatal("expected direction_chance to be settable")
	}
	if got := world.Config().Params.DirectionChance; got != 0 {
		t.Fatalf("direction_chance = %v, want clamp to 0", got)
	}
	if world.SetFloatParameter("gravity", 0.3) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestSetChunkSizeRebuildsTracker(t *testing.T) {
	world := newTestWorld(64, 64)
	if world.SetIntParameter("chunk", 0) {
		t.Fatal("non-positive chunk size must be rejected")
	}
	if !world.SetIntParameter("chunk", 16) {
		t.Fatal("chunk size should be settable")
	}
	if world.ChunkSize() != 16 {
		t.Fatalf("chunk size = %d, want 16", world.ChunkSize())
	}
	if world.ActiveChunks() != 16 {
		t.Fatalf("expected all 16 chunks rescheduled, got %d", world.ActiveChunks())
	}
	world.Step()
	if world.ActiveChunks() != 0 {
		t.Fatal("empty grid should go quiet after the rebuild")
	}
	if world.SetIntParameter("seed", 3) {
		t.Fatal("seed is not an adjustable integer")
	}
}

func TestParameterControlsMatchSetters(t *testing.T) {
	world := newTestWorld(16, 16)
	for _, c := range world.ParameterControls() {
		switch c.Type {
		case core.ParamTypeFloat:
			if !world.SetFloatParameter(c.Key, c.Min) {
				t.Fatalf("control %q has no float setter", c.Key)
			}
		case core.ParamTypeInt:
			if !world.SetIntParameter(c.Key, int(c.Min)) {
				t.Fatalf("control %q has no int setter", c.Key)
			}
		}
	}
}
