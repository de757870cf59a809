package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the tunables and activity counters for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("chunk", "Chunk size", w.chunks.size),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("direction_chance", "Left-first chance", params.DirectionChance),
				floatParam("fire_spread_chance", "Fire spread chance", params.FireSpreadChance),
				floatParam("fire_rise_chance", "Fire rise chance", params.FireRiseChance),
				floatParam("fire_drift_chance", "Fire drift chance", params.FireDriftChance),
				floatParam("ember_chance", "Ember chance", params.EmberChance),
			},
		},
		{
			Name:    "Activity",
			Summary: "read only",
			Params: []core.Parameter{
				uintParam("ticks", "Ticks", w.stepped),
				intParam("active_chunks", "Active chunks", w.chunks.count()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{
			Key: "chunk", Label: "Chunk size", Type: core.ParamTypeInt,
			Step: 8, Min: 8, Max: 128, HasMin: true, HasMax: true,
		},
	}
	for _, key := range ruleKeys {
		controls = append(controls, core.ParameterControl{
			Key:    key,
			Label:  ruleLabels[key],
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

var ruleKeys = []string{
	"direction_chance",
	"fire_spread_chance",
	"fire_rise_chance",
	"fire_drift_chance",
	"ember_chance",
}

var ruleLabels = map[string]string{
	"direction_chance":   "Left-first chance",
	"fire_spread_chance": "Fire spread chance",
	"fire_rise_chance":   "Fire rise chance",
	"fire_drift_chance":  "Fire drift chance",
	"ember_chance":       "Ember chance",
}

// SetFloatParameter updates a rule probability, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	dst, ok := w.cfg.Params.fields()[key]
	if !ok {
		return false
	}
	*dst = max(0, min(1, value))
	return true
}

// SetIntParameter updates integer tunables. Changing the chunk size rebuilds
// the activity tracker and schedules every chunk.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "chunk":
		if value <= 0 {
			return false
		}
		w.mustBeIdle()
		w.cfg.ChunkSize = value
		w.chunks = newChunkTracker(w.w, w.h, value)
		w.order = make([]int, 0, len(w.chunks.flags))
		w.chunks.markAll()
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
