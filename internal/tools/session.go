package tools

import (
	"fmt"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Session ties a world to its ticker and toolbox and carries out the
// actions every frontend shares.
type Session struct {
	World  *sand.World
	Ticker *core.Ticker
	Tools  *Toolbox

	seed int64
	now  func() time.Time

	overlay bool
	flat    bool
}

// NewSession wraps world with a ticker running at tps. seed is used by the
// reset action.
func NewSession(world *sand.World, tps int, seed int64) *Session {
	return &Session{
		World:  world,
		Ticker: core.NewTicker(world, tps),
		Tools:  NewToolbox(),
		seed:   seed,
		now:    time.Now,
	}
}

// Seed reports the seed the last reset used.
func (s *Session) Seed() int64 { return s.seed }

// Overlay reports whether the activity overlay is shown.
func (s *Session) Overlay() bool { return s.overlay }

// Flat reports whether cells are drawn in flat palette colors.
func (s *Session) Flat() bool { return s.flat }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.Ticker.Paused() }

// Key applies a key binding and returns the action it triggered. Only
// ActionQuit is left for the caller to act on.
func (s *Session) Key(r rune) Action {
	action := s.Tools.Key(r)
	s.Do(action)
	return action
}

// Do carries out a frontend action.
func (s *Session) Do(action Action) {
	switch action {
	case ActionClear:
		s.World.Clear()
	case ActionTogglePause:
		s.Ticker.TogglePause()
	case ActionStepOnce:
		s.Ticker.StepOnce()
	case ActionReset:
		s.World.Reset(s.seed)
	case ActionReseed:
		s.ResetWith(s.now().UnixNano())
	case ActionToggleOverlay:
		s.overlay = !s.overlay
	case ActionToggleFlat:
		s.flat = !s.flat
	}
}

// ResetWith reseeds the session and rebuilds the world from seed. Later
// resets reuse it.
func (s *Session) ResetWith(seed int64) {
	s.seed = seed
	s.World.Reset(seed)
}

// Press, Drag and Release forward pointer input in grid coordinates.
func (s *Session) Press(x, y int) { s.Tools.Press(s.World, x, y) }

func (s *Session) Drag(x, y int) { s.Tools.Drag(s.World, x, y) }

func (s *Session) Release() { s.Tools.Release() }

// Advance ticks the world when the fixed step allows it.
func (s *Session) Advance() bool { return s.Ticker.Advance() }

// Status is a one-line summary of brush, pause state and activity.
func (s *Session) Status() string {
	state := "running"
	if s.Ticker.Paused() {
		state = "paused"
	}
	cols, rows := s.World.ChunkGrid()
	return fmt.Sprintf("%s | %s | %d/%d chunks", s.Tools.Status(), state, s.World.ActiveChunks(), cols*rows)
}
