// Package tools holds the frontend-neutral input layer of the sand
// sandbox: the selected brush, the key bindings and pointer strokes. Every
// frontend translates its own events into these calls.
package tools

import (
	"fmt"

	"sandfall/internal/sims/sand"
)

const (
	// DefaultRadius is the brush radius a new toolbox starts with.
	DefaultRadius = 5
	MinRadius     = 1
	MaxRadius     = 20
)

// Hotbar lists the materials bound to the digit keys 1 through 6.
var Hotbar = [...]sand.Material{sand.Sand, sand.Dirt, sand.Wood, sand.Water, sand.Fire, sand.Wall}

// Action is a request the toolbox cannot satisfy on its own and hands back
// to the frontend.
type Action int

const (
	ActionNone Action = iota
	ActionClear
	ActionTogglePause
	ActionStepOnce
	ActionReset
	ActionReseed
	ActionToggleOverlay
	ActionToggleFlat
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionClear:
		return "clear"
	case ActionTogglePause:
		return "pause"
	case ActionStepOnce:
		return "step"
	case ActionReset:
		return "reset"
	case ActionReseed:
		return "reseed"
	case ActionToggleOverlay:
		return "overlay"
	case ActionToggleFlat:
		return "flat"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Toolbox tracks the current brush and an in-progress pointer stroke.
type Toolbox struct {
	tool sand.Tool

	drawing      bool
	lastX, lastY int
}

// NewToolbox returns a toolbox drawing sand with the default radius.
func NewToolbox() *Toolbox {
	return &Toolbox{tool: sand.Tool{Kind: sand.ToolDraw, Material: sand.Sand, Radius: DefaultRadius}}
}

// Tool returns the current brush.
func (t *Toolbox) Tool() sand.Tool { return t.tool }

// SetKind selects draw, erase, ignite or kindle.
func (t *Toolbox) SetKind(kind sand.ToolKind) { t.tool.Kind = kind }

// SetMaterial selects the material laid down by the draw tool and switches
// back to drawing.
func (t *Toolbox) SetMaterial(m sand.Material) {
	if !m.Valid() || m == sand.Empty {
		return
	}
	t.tool.Material = m
	t.tool.Kind = sand.ToolDraw
}

// SetRadius changes the brush radius, clamped to [MinRadius, MaxRadius].
func (t *Toolbox) SetRadius(r int) {
	t.tool.Radius = max(MinRadius, min(MaxRadius, r))
}

// Key applies a key binding. Brush keys are handled in place; anything the
// frontend must do itself is returned as an Action.
func (t *Toolbox) Key(r rune) Action {
	if r >= '1' && r < '1'+rune(len(Hotbar)) {
		t.SetMaterial(Hotbar[r-'1'])
		return ActionNone
	}
	switch r {
	case 'd', 'D':
		t.SetKind(sand.ToolDraw)
	case 'e', 'E':
		t.SetKind(sand.ToolErase)
	case 'f', 'F':
		t.SetKind(sand.ToolIgnite)
	case 'k', 'K':
		t.SetKind(sand.ToolKindle)
	case '[':
		t.SetRadius(t.tool.Radius - 1)
	case ']':
		t.SetRadius(t.tool.Radius + 1)
	case 'c', 'C':
		return ActionClear
	case ' ':
		return ActionTogglePause
	case 'n', 'N':
		return ActionStepOnce
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionReseed
	case 'o', 'O':
		return ActionToggleOverlay
	case 'g', 'G':
		return ActionToggleFlat
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Press starts a stroke at (x, y) and applies the brush once.
func (t *Toolbox) Press(w *sand.World, x, y int) {
	t.drawing = true
	t.lastX, t.lastY = x, y
	w.Apply(t.tool, x, y)
}

// Drag continues the stroke to (x, y), filling the gap since the last
// point. It does nothing unless a stroke is in progress.
func (t *Toolbox) Drag(w *sand.World, x, y int) {
	if !t.drawing {
		return
	}
	if x == t.lastX && y == t.lastY {
		w.Apply(t.tool, x, y)
		return
	}
	w.Stroke(t.tool, t.lastX, t.lastY, x, y)
	t.lastX, t.lastY = x, y
}

// Release ends the stroke.
func (t *Toolbox) Release() { t.drawing = false }

// Drawing reports whether a stroke is in progress.
func (t *Toolbox) Drawing() bool { return t.drawing }

// Status summarises the brush for status lines.
func (t *Toolbox) Status() string {
	if t.tool.Kind == sand.ToolDraw {
		return fmt.Sprintf("%s %s r%d", t.tool.Kind, t.tool.Material, t.tool.Radius)
	}
	return fmt.Sprintf("%s r%d", t.tool.Kind, t.tool.Radius)
}
