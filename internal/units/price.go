package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places kept for stored prices.
const DefaultPrecision int32 = 4

// DisplayPrecision is used for the headline figure of a comparison string.
const DisplayPrecision int32 = 2

// Round rounds v to places decimals, half away from zero, working on the
// shortest decimal representation of v. NaN and infinities are returned as is.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// UnitPrice is price per declared unit at DefaultPrecision.
func UnitPrice(price, quantity float64) float64 {
	return RoundedUnitPrice(price, quantity, DefaultPrecision)
}

// RoundedUnitPrice is price per declared unit at the given precision.
// A negative precision disables rounding.
func RoundedUnitPrice(price, quantity float64, precision int32) float64 {
	up := price / quantity
	if precision < 0 {
		return up
	}
	return Round(up, precision)
}

// NormalizedUnitPrice is price per base unit, rounded to 4 places.
// Callers must reject non-positive quantities first.
func NormalizedUnitPrice(price, quantity float64, u Unit) float64 {
	return Round(price/ToBaseUnits(quantity, u), DefaultPrecision)
}

// FormatComparison renders the per-unit cost, adding the per-base-unit
// figure when u is not already its dimension's base unit.
//
//	15.99 for 12 count -> "$1.33/item"
//	2.50 for 2 L       -> "$1.25/L ($0.0013/ml)"
func FormatComparison(price, quantity float64, u Unit) string {
	up := formatFixed(price/quantity, DisplayPrecision)
	base := BaseUnitOf(u)

	if base == Count {
		return fmt.Sprintf("$%s/item", up)
	}
	if u == base {
		return fmt.Sprintf("$%s/%s", up, u)
	}
	norm := formatFixed(NormalizedUnitPrice(price, quantity, u), DefaultPrecision)
	return fmt.Sprintf("$%s/%s ($%s/%s)", up, u, norm, base)
}

func formatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
