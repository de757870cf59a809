package sand

import (
	"fmt"
	"image/color"
	"strings"
)

// Material enumerates the cell payloads. The set is closed; every value
// fits in one byte and indexes the property table directly.
type Material uint8

const (
	Empty Material = iota
	Sand
	Dirt
	Wood
	Water
	Fire
	Wall

	materialCount
)

var materialNames = [materialCount]string{
	Empty: "empty",
	Sand:  "sand",
	Dirt:  "dirt",
	Wood:  "wood",
	Water: "water",
	Fire:  "fire",
	Wall:  "wall",
}

// Materials lists every material in enumeration order.
func Materials() []Material {
	out := make([]Material, materialCount)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// Valid reports whether m belongs to the enumeration.
func (m Material) Valid() bool { return m < materialCount }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

// ParseMaterial resolves a material by its case-insensitive name.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown material %q", name)
}

// Properties holds the static attributes of one material.
type Properties struct {
	// Density orders displacement: a heavier cell sinks through a lighter one.
	Density uint8
	// Gravity is the per-tick fall bias. Negative values rise.
	Gravity int8
	// Viscosity 255 marks the material immovable.
	Viscosity    uint8
	DisperseRate uint8
	Flammability uint8
	// BurnTime is the age in ticks at which fire goes out or a burning solid
	// is consumed.
	BurnTime uint16
	Color    color.RGBA
}

// Table maps every material to its properties. It is a fixed-size array so
// an out-of-range material is a bounds panic rather than a silent zero row.
type Table [materialCount]Properties

// DefaultTable returns the reference material properties.
func DefaultTable() Table {
	return Table{
		Empty: {},
		Sand: {
			Density: 160, Gravity: 9, Viscosity: 1, DisperseRate: 3,
			Color: color.RGBA{R: 230, G: 210, B: 150, A: 255},
		},
		Dirt: {
			Density: 180, Gravity: 7, Viscosity: 2, DisperseRate: 1,
			Flammability: 5, BurnTime: 300,
			Color: color.RGBA{R: 140, G: 100, B: 80, A: 255},
		},
		Wood: {
			Density: 255, Viscosity: 255,
			Flammability: 200, BurnTime: 1000,
			Color: color.RGBA{R: 160, G: 120, B: 90, A: 255},
		},
		Water: {
			Density: 120, Gravity: 5, Viscosity: 5, DisperseRate: 10,
			Color: color.RGBA{R: 50, G: 150, B: 230, A: 255},
		},
		Fire: {
			Density: 1, Gravity: -2, Viscosity: 1, DisperseRate: 8,
			BurnTime: 100,
			Color: color.RGBA{R: 255, G: 100, B: 50, A: 255},
		},
		Wall: {
			Density: 255, Viscosity: 255,
			Color: color.RGBA{R: 80, G: 80, B: 80, A: 255},
		},
	}
}

// Props returns the row for m.
func (t *Table) Props(m Material) Properties { return t[m] }

// CanFall reports whether m is moved by gravity.
func (t *Table) CanFall(m Material) bool {
	p := &t[m]
	return p.Density > 0 && p.Density < 255 && p.Gravity != 0
}

// CanFlow reports whether m spreads diagonally or sideways when blocked.
func (t *Table) CanFlow(m Material) bool {
	return t.CanFall(m) && t[m].DisperseRate > 0
}

// IsStatic reports whether m never moves.
func (t *Table) IsStatic(m Material) bool { return t[m].Viscosity == 255 }

// CanBurn reports whether m can catch fire.
func (t *Table) CanBurn(m Material) bool { return t[m].Flammability > 0 }

// CanDisplace reports whether a may take the place of b.
func (t *Table) CanDisplace(a, b Material) bool {
	switch {
	case b == Empty:
		return true
	case a == Empty:
		return false
	case b == Wall:
		return false
	}
	return t[a].Density > t[b].Density
}
