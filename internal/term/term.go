// Package term is a terminal frontend for the sand world. Every character
// cell shows two grid cells stacked vertically with an upper half block,
// and the bottom row of the terminal carries the status line.
package term

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/sims/sand"
	"sandfall/internal/tools"
)

const halfBlock = '▀'

// App draws a session onto a tcell screen and feeds it terminal input.
type App struct {
	screen  tcell.Screen
	session *tools.Session

	full bool
}

// New wraps an initialised screen. The world is resized to fill it.
func New(screen tcell.Screen, session *tools.Session) *App {
	a := &App{screen: screen, session: session, full: true}
	a.fit()
	return a
}

// GridSize returns the world dimensions that fit a cols*rows terminal.
func GridSize(cols, rows int) (int, int) {
	return max(cols, 1), max(2*(rows-1), 2)
}

// fit resizes the world to the screen and repaints its scene. It reports
// whether the dimensions changed.
func (a *App) fit() bool {
	cols, rows := a.screen.Size()
	w, h := GridSize(cols, rows)
	size := a.session.World.Size()
	a.full = true
	if size.W == w && size.H == h {
		return false
	}
	a.session.World.Resize(w, h)
	a.session.World.Reset(a.session.Seed())
	return true
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			action := a.session.Key(ev.Rune())
			if action == tools.ActionQuit {
				return false
			}
			if action == tools.ActionToggleFlat {
				a.full = true
			}
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.fit()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	_, rows := a.screen.Size()
	drawing := a.session.Tools.Drawing()
	if ev.Buttons()&tcell.Button1 == 0 || row >= rows-1 {
		if drawing {
			a.session.Release()
		}
		return
	}
	x, y := col, 2*row
	if drawing {
		a.session.Drag(x, y)
		return
	}
	a.session.Press(x, y)
}

// Draw repaints the rows that changed since the last frame and the status
// line, then shows the screen.
func (a *App) Draw() {
	world := a.session.World
	size := world.Size()
	r := world.TakeDirty()
	if a.full {
		r = sand.Rect{X1: size.W, Y1: size.H}
		a.full = false
	}
	if !r.Empty() {
		palette := world.Palette()
		for row := r.Y0 / 2; row < (r.Y1+1)/2; row++ {
			for x := r.X0; x < r.X1; x++ {
				top := a.cellColor(palette, x, 2*row)
				bottom := a.cellColor(palette, x, 2*row+1)
				style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
				a.screen.SetContent(x, row, halfBlock, nil, style)
			}
		}
	}
	a.drawStatus()
	a.screen.Show()
}

func (a *App) cellColor(palette []color.RGBA, x, y int) color.RGBA {
	world := a.session.World
	if a.session.Flat() {
		return palette[world.At(x, y)]
	}
	return world.ColorAt(x, y)
}

func (a *App) drawStatus() {
	cols, rows := a.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	line := []rune(a.session.Status())
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		a.screen.SetContent(x, rows-1, ch, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run polls terminal events and ticks the session until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.session.Advance()
			a.Draw()
		}
	}
}
