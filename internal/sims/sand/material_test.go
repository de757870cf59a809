package sand

import "testing"

func TestDefaultTablePredicates(t *testing.T) {
	table := DefaultTable()

	cases := []struct {
		m                        Material
		fall, flow, static, burn bool
	}{
		{Empty, false, false, false, false},
		{Sand, true, true, false, false},
		{Dirt, true, true, false, true},
		{Wood, false, false, true, true},
		{Water, true, true, false, false},
		{Fire, true, true, false, false},
		{Wall, false, false, true, false},
	}
	for _, tc := range cases {
		if got := table.CanFall(tc.m); got != tc.fall {
			t.Fatalf("CanFall(%s)=%v, want %v", tc.m, got, tc.fall)
		}
		if got := table.CanFlow(tc.m); got != tc.flow {
			t.Fatalf("CanFlow(%s)=%v, want %v", tc.m, got, tc.flow)
		}
		if got := table.IsStatic(tc.m); got != tc.static {
			t.Fatalf("IsStatic(%s)=%v, want %v", tc.m, got, tc.static)
		}
		if got := table.CanBurn(tc.m); got != tc.burn {
			t.Fatalf("CanBurn(%s)=%v, want %v", tc.m, got, tc.burn)
		}
	}
}

func TestCanDisplace(t *testing.T) {
	table := DefaultTable()

	for _, m := range Materials() {
		if !table.CanDisplace(m, Empty) {
			t.Fatalf("%s must be able to move into empty cells", m)
		}
		if m != Empty && table.CanDisplace(Empty, m) {
			t.Fatalf("empty must never displace %s", m)
		}
		if table.CanDisplace(m, Wall) {
			t.Fatalf("%s must not displace wall", m)
		}
	}
	if !table.CanDisplace(Sand, Water) {
		t.Fatal("sand should sink through water")
	}
	if table.CanDisplace(Water, Sand) {
		t.Fatal("water must not sink through sand")
	}
	if table.CanDisplace(Sand, Sand) {
		t.Fatal("equal densities must not displace each other")
	}
}

func TestZeroGravityCannotFall(t *testing.T) {
	table := DefaultTable()
	table[Water].Gravity = 0
	if table.CanFall(Water) || table.CanFlow(Water) {
		t.Fatal("a material without gravity must neither fall nor flow")
	}
}

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		got, err := ParseMaterial(" " + m.String() + " ")
		if err != nil {
			t.Fatalf("ParseMaterial(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMaterial(%q)=%s, want %s", m.String(), got, m)
		}
	}
	if m, err := ParseMaterial("WATER"); err != nil || m != Water {
		t.Fatalf("ParseMaterial is case-insensitive, got %s, %v", m, err)
	}
	if _, err := ParseMaterial("lava"); err == nil {
		t.Fatal("expected error for unknown material")
	}
	if s := Material(42).String(); s != "material(42)" {
		t.Fatalf("unexpected name for invalid material: %q", s)
	}
}

func TestInvalidMaterialPanics(t *testing.T) {
	table := DefaultTable()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a material outside the enumeration")
		}
	}()
	table.CanFall(materialCount)
}
