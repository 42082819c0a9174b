package units

import (
	"math"
	"testing"
)

func TestPricing(t *testing.T) {
	cases := []struct {
		name       string
		price      float64
		quantity   float64
		unit       Unit
		unitPrice  float64
		normalized float64
		display    string
	}{
		{"count", 15.99, 12, Count, 1.3325, 1.3325, "$1.33/item"},
		{"ounce is base", 4.99, 16, Ounce, 0.3119, 0.3119, "$0.31/oz"},
		{"pound", 3.49, 1, Pound, 3.49, 0.2181, "$3.49/lb ($0.2181/oz)"},
		{"liter", 2.50, 2, Liter, 1.25, 0.0013, "$1.25/L ($0.0013/ml)"},
		{"milliliter is base", 3, 500, Milliliter, 0.006, 0.006, "$0.01/ml"},
		{"unknown falls back to count", 6, 4, "crate", 1.5, 1.5, "$1.50/item"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UnitPrice(tc.price, tc.quantity); got != tc.unitPrice {
				t.Fatalf("unit price: expected %v got %v", tc.unitPrice, got)
			}
			if got := NormalizedUnitPrice(tc.price, tc.quantity, tc.unit); got != tc.normalized {
				t.Fatalf("normalized: expected %v got %v", tc.normalized, got)
			}
			if got := FormatComparison(tc.price, tc.quantity, tc.unit); got != tc.display {
				t.Fatalf("display: expected %q got %q", tc.display, got)
			}
		})
	}
}

func TestRoundedUnitPricePrecision(t *testing.T) {
	if got := RoundedUnitPrice(15.99, 12, 2); got != 1.33 {
		t.Fatalf("expected 1.33 got %v", got)
	}
	if got := RoundedUnitPrice(15.99, 12, 4); got != 1.3325 {
		t.Fatalf("expected 1.3325 got %v", got)
	}
	if got := RoundedUnitPrice(1, 3, -1); got != 1.0/3 {
		t.Fatalf("expected unrounded third, got %v", got)
	}
}

func TestZeroQuantityDoesNotPanic(t *testing.T) {
	if got := NormalizedUnitPrice(5, 0, Pound); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf got %v", got)
	}
	if got := NormalizedUnitPrice(0, 0, Count); !math.IsNaN(got) {
		t.Fatalf("expected NaN got %v", got)
	}
	if got := FormatComparison(5, 0, Liter); got != "$+Inf/L ($+Inf/ml)" {
		t.Fatalf("unexpected display %q", got)
	}
}

func TestPricingIsDeterministic(t *testing.T) {
	a := NormalizedUnitPrice(7.77, 3.3, Kilogram)
	b := NormalizedUnitPrice(7.77, 3.3, Kilogram)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Fatalf("expected identical results, got %v and %v", a, b)
	}
	if FormatComparison(7.77, 3.3, Kilogram) != FormatComparison(7.77, 3.3, Kilogram) {
		t.Fatalf("expected identical display strings")
	}
}
