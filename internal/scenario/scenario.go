// Package scenario loads sand scenes from YAML files. A scenario can size
// and seed the world, override rule probabilities and paint a list of
// shapes every time the world is reset.
package scenario

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sandfall/internal/sims/sand"
)

// Scenario is the on-disk description of a scene.
type Scenario struct {
	Name    string             `yaml:"name"`
	Width   int                `yaml:"width"`
	Height  int                `yaml:"height"`
	Seed    int64              `yaml:"seed"`
	Chunk   int                `yaml:"chunk"`
	Sandbox bool               `yaml:"sandbox"`
	Params  map[string]float64 `yaml:"params"`
	Ops     []Op               `yaml:"ops"`
}

// Op is a single painting operation.
type Op struct {
	Op       string `yaml:"op"`
	Material string `yaml:"material,omitempty"`
	// At is the centre of a disk, ignite or kindle, or the start of a line.
	At []int `yaml:"at,omitempty"`
	// To is the end of a line.
	To []int `yaml:"to,omitempty"`
	// Rect is x0, y0, x1, y1 of a fill, half-open.
	Rect   []int `yaml:"rect,omitempty"`
	Radius int   `yaml:"radius,omitempty"`

	material sand.Material
}

var paramKeys = map[string]bool{
	"direction_chance":   true,
	"fire_spread_chance": true,
	"fire_rise_chance":   true,
	"fire_drift_chance":  true,
	"ember_chance":       true,
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks sizes, parameter names and every operation, and resolves
// material names.
func (s *Scenario) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("width and height cannot be negative")
	}
	if s.Chunk < 0 {
		return fmt.Errorf("chunk cannot be negative")
	}
	for key, v := range s.Params {
		if !paramKeys[key] {
			return fmt.Errorf("params.%s is not a rule parameter", key)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("params.%s must be within [0, 1]", key)
		}
	}
	for i := range s.Ops {
		if err := s.Ops[i].validate(); err != nil {
			return fmt.Errorf("ops[%d]: %w", i, err)
		}
	}
	return nil
}

func (o *Op) validate() error {
	needPoint := func(name string, p []int) error {
		if len(p) != 2 {
			return fmt.Errorf("%s.%s needs two coordinates", o.Op, name)
		}
		return nil
	}
	needMaterial := func() error {
		m, err := sand.ParseMaterial(o.Material)
		if err != nil {
			return err
		}
		o.material = m
		return nil
	}
	if o.Radius < 0 {
		return fmt.Errorf("%s.radius cannot be negative", o.Op)
	}
	switch o.Op {
	case "fill":
		if len(o.Rect) != 4 {
			return fmt.Errorf("fill.rect needs x0, y0, x1, y1")
		}
		return needMaterial()
	case "disk":
		if err := needPoint("at", o.At); err != nil {
			return err
		}
		return needMaterial()
	case "line":
		if err := needPoint("at", o.At); err != nil {
			return err
		}
		if err := needPoint("to", o.To); err != nil {
			return err
		}
		return needMaterial()
	case "ignite", "kindle":
		return needPoint("at", o.At)
	default:
		return fmt.Errorf("unknown op %q", o.Op)
	}
}

// Overrides returns the scenario settings as factory configuration keys.
// Zero sizes, seeds and chunk sizes leave the defaults alone.
func (s *Scenario) Overrides() map[string]string {
	out := map[string]string{}
	if s.Width > 0 {
		out["w"] = strconv.Itoa(s.Width)
	}
	if s.Height > 0 {
		out["h"] = strconv.Itoa(s.Height)
	}
	if s.Seed != 0 {
		out["seed"] = strconv.FormatInt(s.Seed, 10)
	}
	if s.Chunk > 0 {
		out["chunk"] = strconv.Itoa(s.Chunk)
	}
	if s.Sandbox {
		out["sandbox"] = "true"
	}
	for key, v := range s.Params {
		out[key] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}

// Merge layers the scenario overrides on top of cfg and returns a new map.
func (s *Scenario) Merge(cfg map[string]string) map[string]string {
	out := make(map[string]string, len(cfg))
	for k, v := range cfg {
		out[k] = v
	}
	for k, v := range s.Overrides() {
		out[k] = v
	}
	return out
}

// Paint applies every operation in order. It has the signature of a
// sand.World scene so it can be installed with SetScene.
func (s *Scenario) Paint(w *sand.World) {
	for _, op := range s.Ops {
		op.apply(w)
	}
	w.MarkAllActive()
}

func (o Op) apply(w *sand.World) {
	switch o.Op {
	case "fill":
		size := w.Size()
		x0, y0 := max(o.Rect[0], 0), max(o.Rect[1], 0)
		x1, y1 := min(o.Rect[2], size.W), min(o.Rect[3], size.H)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				w.PlaceMaterial(x, y, o.material, 0)
			}
		}
	case "disk":
		w.PlaceMaterial(o.At[0], o.At[1], o.material, o.Radius)
	case "line":
		tool := sand.Tool{Kind: sand.ToolDraw, Material: o.material, Radius: o.Radius}
		if o.material == sand.Empty {
			tool.Kind = sand.ToolErase
		}
		w.Stroke(tool, o.At[0], o.At[1], o.To[0], o.To[1])
	case "ignite":
		w.Ignite(o.At[0], o.At[1], o.Radius)
	case "kindle":
		w.Kindle(o.At[0], o.At[1], o.Radius)
	}
}
