package ui

import (
	"testing"

	"sandfall/internal/core"
)

func TestAdjustClampsToBounds(t *testing.T) {
	chance := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true}
	if v, ok := adjust(chance, 0.995, 1); !ok || v != 1 {
		t.Fatalf("adjust up = %v, %v", v, ok)
	}
	if _, ok := adjust(chance, 1, 1); ok {
		t.Fatal("adjusting past the maximum should report no change")
	}
	if v, ok := adjust(chance, 0.5, -1); !ok || v < 0.489 || v > 0.491 {
		t.Fatalf("adjust down = %v, %v", v, ok)
	}

	chunk := core.ParameterControl{Type: core.ParamTypeInt, Step: 8, Min: 8, Max: 128, HasMin: true, HasMax: true}
	if v, ok := adjust(chunk, 32, 1); !ok || v != 40 {
		t.Fatalf("chunk up = %v, %v", v, ok)
	}
	if _, ok := adjust(chunk, 8, -1); ok {
		t.Fatal("chunk below minimum")
	}
	free := core.ParameterControl{Type: core.ParamTypeInt}
	if v, _ := adjust(free, 3, -1); v != 2 {
		t.Fatalf("default int step gave %v", v)
	}
}

func TestLayoutControlsStaysInsidePanel(t *testing.T) {
	rows := layoutControls(220, 6)
	for i, row := range rows {
		if row.plusRect.Max.X != 220-panelPadding {
			t.Fatalf("row %d plus button ends at %d", i, row.plusRect.Max.X)
		}
		if row.minusRect.Max.X > row.plusRect.Min.X {
			t.Fatalf("row %d buttons overlap", i)
		}
		if i > 0 && row.top-rows[i-1].top != lineHeight {
			t.Fatalf("row %d spacing %d", i, row.top-rows[i-1].top)
		}
	}
	if rows[0].top <= swatchRect(0).Max.Y {
		t.Fatal("controls overlap the hotbar")
	}
	if !pointInRect(rows[2].plusRect.Min.X, rows[2].plusRect.Min.Y, rows[2].plusRect) {
		t.Fatal("rect should contain its min corner")
	}
}

func TestFormatValue(t *testing.T) {
	float := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.01}
	if got := formatValue(float, 0.05); got != "0.05" {
		t.Fatalf("float = %q", got)
	}
	coarse := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5}
	if got := formatValue(coarse, 0.25); got != "0.2" && got != "0.3" {
		t.Fatalf("coarse = %q", got)
	}
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeInt}, 31.6); got != "32" {
		t.Fatalf("int = %q", got)
	}
}
