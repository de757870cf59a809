//go:build ebiten

package app

import (
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/tools"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand session to the ebiten.Game interface.
type Game struct {
	session *tools.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale     int
	hudWidth  int
	lastDirty sand.Rect
	flat      bool
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config) *Game {
	session := tools.NewSession(world, cfg.TPS, cfg.Seed)
	size := world.Size()
	scale := max(cfg.Scale, 1)
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session, cfg.HUDWidth),
		overlay:  ui.NewOverlay(world, scale),
		scale:    scale,
		hudWidth: max(cfg.HUDWidth, 0),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *tools.Session { return g.session }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if g.session.Key(r) == tools.ActionQuit {
			return ebiten.Termination
		}
	}

	size := g.session.World.Size()
	overHUD := g.hud.Update(size.W * g.scale)
	g.handleMouse(overHUD)

	g.session.Advance()
	return nil
}

func (g *Game) handleMouse(overHUD bool) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.Release()
		return
	}
	if overHUD || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.Press(x, y)
		return
	}
	g.session.Drag(x, y)
}

// Draw renders the grid, the optional overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.session.World
	if flat := g.session.Flat(); flat != g.flat {
		g.flat = flat
		g.painter.Frame().Flat = flat
		g.painter.Frame().Invalidate()
	}
	size := world.Size()
	g.lastDirty = g.painter.Blit(screen, world, size.W, size.H, g.scale)
	if g.session.Overlay() {
		g.overlay.Draw(screen, g.lastDirty)
	}
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size: the scaled grid plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
