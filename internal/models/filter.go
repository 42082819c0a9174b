package models

type SortField string

const (
	SortUnitPrice SortField = "unit_price"
	SortPrice     SortField = "price"
	SortQuantity  SortField = "quantity"
	SortCreatedAt SortField = "created_at"
	SortTitle     SortField = "title"
)

// sortAliases accepts the camelCase names used by the web client.
var sortAliases = map[string]SortField{
	"unitPrice": SortUnitPrice,
	"price":     SortPrice,
	"quantity":  SortQuantity,
	"createdAt": SortCreatedAt,
	"title":     SortTitle,

	"unit_price": SortUnitPrice,
	"created_at": SortCreatedAt,
}

// ParseSortField falls back to SortUnitPrice for empty or unknown values.
func ParseSortField(s string) SortField {
	if f, ok := sortAliases[s]; ok {
		return f
	}
	return SortUnitPrice
}

// ItemFilter narrows the item listing.
type ItemFilter struct {
	Category   Category
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Store      string
	Tags       []string
	SortBy     SortField
	Descending bool
}
