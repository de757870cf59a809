//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
	"sandfall/internal/tools"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// HUD renders the status lines, the material hotbar and the parameter
// panel to the right of the simulation view.
type HUD struct {
	session    *tools.Session
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int

	pixel *ebiten.Image
}

type hudControlState struct {
	control core.ParameterControl
	controlLayout

	value    float64
	hasValue bool
}

// NewHUD constructs a HUD for the session and panel width.
func NewHUD(session *tools.Session, width int) *HUD {
	h := &HUD{session: session, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := session.World.ParameterControls()
	rows := layoutControls(h.width, len(controls))
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, controlLayout: rows[i]}
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks inside
// the panel. It reports whether the pointer is over the panel, in which
// case the caller must not paint with it.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.session.World.Parameters()
	h.refreshControlValues()

	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.click(mx-h.panelOffsetX, my)
	}
	return true
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.session.World.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawStatus()
	h.drawHotbar()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		state.value = parsed
		state.hasValue = err == nil
	}
}

func (h *HUD) click(px, py int) {
	for i, m := range tools.Hotbar {
		if pointInRect(px, py, swatchRect(i)) {
			h.session.Tools.SetMaterial(m)
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, py, state.minusRect) {
			h.apply(state, -1)
			return
		}
		if pointInRect(px, py, state.plusRect) {
			h.apply(state, 1)
			return
		}
	}
}

func (h *HUD) apply(state *hudControlState, direction int) {
	target, ok := adjust(state.control, state.value, direction)
	if !ok {
		return
	}
	world := h.session.World
	var applied bool
	switch state.control.Type {
	case core.ParamTypeInt:
		applied = world.SetIntParameter(state.control.Key, int(target))
	case core.ParamTypeFloat:
		applied = world.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.value = target
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Sand Controls", face, panelPadding, y, titleColor)

	world := h.session.World
	state := "running"
	if h.session.Paused() {
		state = "paused"
	}
	cols, rows := world.ChunkGrid()
	lines := [statusLines]string{
		h.session.Tools.Status(),
		fmt.Sprintf("%s  tick %d", state, world.Ticks()),
		fmt.Sprintf("chunks %d/%d", world.ActiveChunks(), cols*rows),
	}
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y+10+(i+1)*statusLine, dimColor)
	}
}

func (h *HUD) drawHotbar() {
	tool := h.session.Tools.Tool()
	palette := h.session.World.Palette()
	for i, m := range tools.Hotbar {
		rect := swatchRect(i)
		if tool.Kind == sand.ToolDraw && tool.Material == m {
			h.fillRect(h.panel, rect.Inset(-2), selectedColor)
		}
		h.fillRect(h.panel, rect, palette[m])
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		value, valueColor := "--", dimColor
		if state.hasValue {
			value, valueColor = formatValue(state.control, state.value), labelColor
		}
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canLower := adjust(state.control, state.value, -1)
		_, canRaise := adjust(state.control, state.value, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canLower)
		h.drawButton(state.plusRect, "+", state.hasValue && canRaise)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(h.panel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(h.pixel, op)
}
