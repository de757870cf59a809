package ui

import (
	"image"
	"math"
	"strconv"

	"sandfall/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLine     = 16
	statusLines    = 3
	swatchSize     = 20
	swatchGap      = 6
	swatchTop      = panelPadding + headerBaseline + 10 + statusLines*statusLine
	controlsTop    = swatchTop + swatchSize + 14
)

// controlLayout positions one adjustable parameter row inside the panel.
type controlLayout struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutControls lays out n parameter rows for a panel of the given width,
// each with a minus and a plus button on the right edge.
func layoutControls(width, n int) []controlLayout {
	rows := make([]controlLayout, n)
	for i := range rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlLayout{top: top, minusRect: minus, plusRect: plus}
	}
	return rows
}

// swatchRect returns the hotbar square of slot i.
func swatchRect(i int) image.Rectangle {
	x := panelPadding + i*(swatchSize+swatchGap)
	return image.Rect(x, swatchTop, x+swatchSize, swatchTop+swatchSize)
}

// adjust returns the value one step from current in direction, clamped to
// the control bounds, and whether it differs from current.
func adjust(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	} else if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// formatValue renders a parameter value with a precision that matches the
// control step.
func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
