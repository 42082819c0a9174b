package units

import (
	"math"
	"testing"
)

var allUnits = []Unit{Count, Ounce, Pound, Gram, Kilogram, Milliliter, Liter, FluidOunce, Gallon, Quart, Pint}

func TestDimensionOf(t *testing.T) {
	cases := []struct {
		unit Unit
		want Dimension
	}{
		{Count, DimensionCount},
		{Ounce, DimensionWeight},
		{Pound, DimensionWeight},
		{Gram, DimensionWeight},
		{Kilogram, DimensionWeight},
		{Milliliter, DimensionVolume},
		{Liter, DimensionVolume},
		{FluidOunce, DimensionVolume},
		{Gallon, DimensionVolume},
		{Quart, DimensionVolume},
		{Pint, DimensionVolume},
		{"bushel", DimensionCount},
		{"l", DimensionCount},
		{"", DimensionCount},
	}

	for _, tc := range cases {
		t.Run(string(tc.unit), func(t *testing.T) {
			if got := DimensionOf(tc.unit); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestBaseUnitSharesDimension(t *testing.T) {
	for _, u := range allUnits {
		if DimensionOf(u) != DimensionOf(BaseUnitOf(u)) {
			t.Fatalf("%q: base unit %q has different dimension", u, BaseUnitOf(u))
		}
	}
	if got := BaseUnitOf("bushel"); got != Count {
		t.Fatalf("expected count base for unknown unit, got %s", got)
	}
}

func TestToBaseUnits(t *testing.T) {
	cases := []struct {
		name     string
		quantity float64
		unit     Unit
		want     float64
	}{
		{"count unchanged", 12, Count, 12},
		{"unknown unchanged", 3, "crate", 3},
		{"pound", 1, Pound, 16},
		{"kilogram", 2, Kilogram, 70.548},
		{"gram", 100, Gram, 3.5274},
		{"liter", 2, Liter, 2000},
		{"gallon", 1, Gallon, 3785.41},
		{"fluid ounce", 2, FluidOunce, 59.147},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToBaseUnits(tc.quantity, tc.unit)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	quantities := []float64{0.25, 1, 16, 1234.5}
	for _, u := range append(allUnits, "crate") {
		for _, q := range quantities {
			got := FromBaseUnits(ToBaseUnits(q, u), u)
			if math.Abs(got-q) > 1e-9*q {
				t.Fatalf("%q: round trip of %v gave %v", u, q, got)
			}
		}
	}
}

func TestAreComparable(t *testing.T) {
	for _, u := range allUnits {
		if !AreComparable(u, u) {
			t.Fatalf("%q should be comparable with itself", u)
		}
	}

	cases := []struct {
		a, b Unit
		want bool
	}{
		{Ounce, Milliliter, false},
		{Pound, Kilogram, true},
		{Gallon, Liter, true},
		{Count, Gram, false},
		{"crate", Count, true},
	}
	for _, tc := range cases {
		if got := AreComparable(tc.a, tc.b); got != tc.want {
			t.Fatalf("AreComparable(%q, %q): expected %v got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestIsKnownAndCatalog(t *testing.T) {
	for _, u := range allUnits {
		if !IsKnown(u) {
			t.Fatalf("%q should be known", u)
		}
	}
	if IsKnown("crate") {
		t.Fatalf("crate should not be known")
	}

	entries := Catalog()
	if len(entries) != len(allUnits) {
		t.Fatalf("expected %d catalog entries, got %d", len(allUnits), len(entries))
	}
	if entries[2].Value != Pound || entries[2].BaseUnit != Ounce || entries[2].Dimension != DimensionWeight {
		t.Fatalf("unexpected pound entry: %#v", entries[2])
	}
}

func TestNormalizedLabel(t *testing.T) {
	if got := NormalizedLabel(Kilogram); got != "per oz" {
		t.Fatalf("expected per oz got %s", got)
	}
	if got := NormalizedLabel(Quart); got != "per ml" {
		t.Fatalf("expected per ml got %s", got)
	}
	if got := NormalizedLabel("crate"); got != "per item" {
		t.Fatalf("expected per item got %s", got)
	}
}
