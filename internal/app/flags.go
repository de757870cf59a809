package app

import (
	"flag"
	"fmt"
	"strconv"

	"sandfall/internal/core"
	"sandfall/internal/scenario"
	"sandfall/internal/sims/sand"
)

// Config represents the command-line parameters shared by every frontend.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	Chunk    int
	Sandbox  bool
	Scenario string
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 3, TPS: 60, Seed: 42, Width: 320, Height: 240, Sandbox: true, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Chunk, "chunk", c.Chunk, "chunk edge length, 0 for the default")
	fs.BoolVar(&c.Sandbox, "sandbox", c.Sandbox, "paint the demo scene on reset")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "YAML scenario to load")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels, 0 to hide")
}

// Overrides converts the flags into factory configuration keys.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"sandbox": strconv.FormatBool(c.Sandbox),
	}
	if c.Chunk > 0 {
		out["chunk"] = strconv.Itoa(c.Chunk)
	}
	return out
}

// NewWorld builds the configured world through the simulation registry.
// A scenario file, when given, overrides the flags and is installed as the
// world's scene. The returned world has already been reset.
func (c *Config) NewWorld() (*sand.World, error) {
	opts := c.Overrides()
	var scene *scenario.Scenario
	if c.Scenario != "" {
		s, err := scenario.Load(c.Scenario)
		if err != nil {
			return nil, err
		}
		scene = s
		opts = s.Merge(opts)
	}

	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", c.Sim, core.Names())
	}
	world, ok := factory(opts).(*sand.World)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a sand world", c.Sim)
	}
	if scene != nil {
		world.SetScene(scene.Paint)
	}
	world.Reset(0)
	return world, nil
}
