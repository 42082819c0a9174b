// Package units converts purchase quantities into comparable base units and
// derives unit and normalized prices from them.
package units

// Unit is a measurement unit token as entered by the user.
type Unit string

const (
	Count Unit = "count"

	Ounce    Unit = "oz"
	Pound    Unit = "lb"
	Gram     Unit = "g"
	Kilogram Unit = "kg"

	Milliliter Unit = "ml"
	Liter      Unit = "L"
	FluidOunce Unit = "fl oz"
	Gallon     Unit = "gal"
	Quart      Unit = "qt"
	Pint       Unit = "pt"
)

// Dimension is the physical quantity a unit measures.
type Dimension string

const (
	DimensionCount  Dimension = "count"
	DimensionWeight Dimension = "weight"
	DimensionVolume Dimension = "volume"
)

// 1 unit = factor oz.
var weightFactors = map[Unit]float64{
	Ounce:    1,
	Pound:    16,
	Gram:     0.035274,
	Kilogram: 35.274,
}

// 1 unit = factor ml.
var volumeFactors = map[Unit]float64{
	Milliliter: 1,
	Liter:      1000,
	FluidOunce: 29.5735,
	Gallon:     3785.41,
	Quart:      946.353,
	Pint:       473.176,
}

// DimensionOf reports the dimension of u. Unrecognized units are counted.
func DimensionOf(u Unit) Dimension {
	if _, ok := weightFactors[u]; ok {
		return DimensionWeight
	}
	if _, ok := volumeFactors[u]; ok {
		return DimensionVolume
	}
	return DimensionCount
}

// BaseUnitOf returns oz for weight units, ml for volume units and count otherwise.
func BaseUnitOf(u Unit) Unit {
	switch DimensionOf(u) {
	case DimensionWeight:
		return Ounce
	case DimensionVolume:
		return Milliliter
	default:
		return Count
	}
}

// IsKnown reports whether u is one of the supported unit tokens.
func IsKnown(u Unit) bool {
	if u == Count {
		return true
	}
	return DimensionOf(u) != DimensionCount
}

// AreComparable reports whether prices in a and b can be ranked against each other.
func AreComparable(a, b Unit) bool {
	return DimensionOf(a) == DimensionOf(b)
}

func factorOf(u Unit) (float64, bool) {
	if f, ok := weightFactors[u]; ok {
		return f, true
	}
	if f, ok := volumeFactors[u]; ok {
		return f, true
	}
	return 0, false
}

// ToBaseUnits expresses quantity of u in its base unit. No rounding is applied.
func ToBaseUnits(quantity float64, u Unit) float64 {
	f, ok := factorOf(u)
	if !ok {
		return quantity
	}
	return quantity * f
}

// FromBaseUnits is the inverse of ToBaseUnits.
func FromBaseUnits(baseQuantity float64, u Unit) float64 {
	f, ok := factorOf(u)
	if !ok {
		return baseQuantity
	}
	return baseQuantity / f
}

// NormalizedLabel is the short caption shown next to a normalized price.
func NormalizedLabel(u Unit) string {
	switch BaseUnitOf(u) {
	case Ounce:
		return "per oz"
	case Milliliter:
		return "per ml"
	default:
		return "per item"
	}
}

// CatalogEntry describes a unit for pickers.
type CatalogEntry struct {
	Value     Unit      `json:"value"`
	Label     string    `json:"label"`
	Dimension Dimension `json:"dimension"`
	BaseUnit  Unit      `json:"base_unit"`
}

var catalog = []struct {
	unit  Unit
	label string
}{
	{Count, "Count (items)"},
	{Ounce, "Ounces (oz)"},
	{Pound, "Pounds (lb)"},
	{Gram, "Grams (g)"},
	{Kilogram, "Kilograms (kg)"},
	{Milliliter, "Milliliters (ml)"},
	{Liter, "Liters (L)"},
	{FluidOunce, "Fluid Ounces (fl oz)"},
	{Gallon, "Gallons (gal)"},
	{Quart, "Quarts (qt)"},
	{Pint, "Pints (pt)"},
}

// Catalog lists every supported unit in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, CatalogEntry{
			Value:     c.unit,
			Label:     c.label,
			Dimension: DimensionOf(c.unit),
			BaseUnit:  BaseUnitOf(c.unit),
		})
	}
	return out
}
