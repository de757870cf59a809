package stream

import (
	"encoding/json"
	"fmt"

	"sandfall/internal/sims/sand"
	"sandfall/internal/tools"
)

// Command is a JSON request from a client.
//
//	{"op":"paint","material":"water","x":10,"y":4,"radius":3}
//	{"op":"line","material":"wall","x":0,"y":20,"x2":40,"y2":20}
//	{"op":"ignite","x":12,"y":30}
//	{"op":"pause"}
type Command struct {
	Op       string `json:"op"`
	Material string `json:"material,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	X2       int    `json:"x2,omitempty"`
	Y2       int    `json:"y2,omitempty"`
	Radius   int    `json:"radius,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
}

// maxCoord bounds the coordinates a client may send.
const maxCoord = 1 << 16

// ParseCommand decodes and validates a client message.
func ParseCommand(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	if c.Radius < 0 || c.Radius > tools.MaxRadius {
		return Command{}, fmt.Errorf("command %q: radius %d outside [0, %d]", c.Op, c.Radius, tools.MaxRadius)
	}
	for _, v := range [...]int{c.X, c.Y, c.X2, c.Y2} {
		if v < -maxCoord || v > maxCoord {
			return Command{}, fmt.Errorf("command %q: coordinate %d out of range", c.Op, v)
		}
	}
	switch c.Op {
	case "paint", "line":
		if _, err := sand.ParseMaterial(c.Material); err != nil {
			return Command{}, fmt.Errorf("command %q: %w", c.Op, err)
		}
	case "erase", "ignite", "kindle", "clear", "pause", "resume", "step", "reset":
	default:
		return Command{}, fmt.Errorf("unknown command %q", c.Op)
	}
	return c, nil
}

// apply runs a validated command against the session. The caller holds
// the server lock.
func (c Command) apply(s *tools.Session) {
	w := s.World
	switch c.Op {
	case "paint":
		m, _ := sand.ParseMaterial(c.Material)
		w.PlaceMaterial(c.X, c.Y, m, c.Radius)
	case "line":
		m, _ := sand.ParseMaterial(c.Material)
		tool := sand.Tool{Kind: sand.ToolDraw, Material: m, Radius: c.Radius}
		if m == sand.Empty {
			tool.Kind = sand.ToolErase
		}
		w.Stroke(tool, c.X, c.Y, c.X2, c.Y2)
	case "erase":
		w.PlaceMaterial(c.X, c.Y, sand.Empty, c.Radius)
	case "ignite":
		w.Ignite(c.X, c.Y, c.Radius)
	case "kindle":
		w.Kindle(c.X, c.Y, c.Radius)
	case "clear":
		s.Do(tools.ActionClear)
	case "pause":
		s.Ticker.SetPaused(true)
	case "resume":
		s.Ticker.SetPaused(false)
	case "step":
		s.Do(tools.ActionStepOnce)
	case "reset":
		if c.Seed != 0 {
			s.ResetWith(c.Seed)
			return
		}
		s.Do(tools.ActionReset)
	}
}
