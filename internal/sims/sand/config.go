package sand

import "strconv"

// Params holds the tunable probabilities of the rule set.
type Params struct {
	// DirectionChance is the probability of trying the left-hand option
	// first when a move can go either way.
	DirectionChance  float64
	FireSpreadChance float64
	FireRiseChance   float64
	// FireDriftChance is the chance that fire which neither spread nor rose
	// tries a one-cell sideways hop.
	FireDriftChance float64
	// EmberChance is the per-tick chance that a burning solid spawns fire in
	// the empty cell above it.
	EmberChance float64
}

// Config controls the sand simulation.
type Config struct {
	Width  int
	Height int

	Seed      int64
	ChunkSize int

	// Sandbox paints the demo scene on every Reset.
	Sandbox bool

	// Materials is copied into the world at construction and never changed
	// afterwards.
	Materials Table

	Params Params
}

// DefaultParams returns the reference rule constants.
func DefaultParams() Params {
	return Params{
		DirectionChance:  0.5,
		FireSpreadChance: 0.05,
		FireRiseChance:   0.8,
		FireDriftChance:  0.3,
		EmberChance:      0.05,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     320,
		Height:    240,
		Seed:      1337,
		ChunkSize: DefaultChunkSize,
		Materials: DefaultTable(),
		Params:    DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["chunk"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["sandbox"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Sandbox = parsed
		}
	}
	for key, dst := range c.Params.fields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			*dst = parsed
		}
	}
	return c
}

// fields maps parameter keys to the probabilities they control.
func (p *Params) fields() map[string]*float64 {
	return map[string]*float64{
		"direction_chance":   &p.DirectionChance,
		"fire_spread_chance": &p.FireSpreadChance,
		"fire_rise_chance":   &p.FireRiseChance,
		"fire_drift_chance":  &p.FireDriftChance,
		"ember_chance":       &p.EmberChance,
	}
}
