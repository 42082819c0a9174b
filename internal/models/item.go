package models

import (
	"time"

	"compatron/internal/units"
)

type Category string

const (
	CategoryGroceries    Category = "groceries"
	CategoryBeverages    Category = "beverages"
	CategoryHousehold    Category = "household"
	CategoryPersonalCare Category = "personal-care"
	CategoryElectronics  Category = "electronics"
	CategorySnacks       Category = "snacks"
	CategoryProduce      Category = "produce"
	CategoryDairy        Category = "dairy"
	CategoryFrozen       Category = "frozen"
	CategoryOther        Category = "other"
)

var categories = map[Category]bool{
	CategoryGroceries:    true,
	CategoryBeverages:    true,
	CategoryHousehold:    true,
	CategoryPersonalCare: true,
	CategoryElectronics:  true,
	CategorySnacks:       true,
	CategoryProduce:      true,
	CategoryDairy:        true,
	CategoryFrozen:       true,
	CategoryOther:        true,
}

// Valid reports whether c is empty or a known category.
func (c Category) Valid() bool {
	return c == "" || categories[c]
}

// Item is one recorded purchase.
type Item struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Quantity            float64    `json:"quantity"`
	Unit                units.Unit `json:"unit"`
	Price               float64    `json:"price"`
	UnitPrice           float64    `json:"unit_price"`
	NormalizedUnitPrice float64    `json:"normalized_unit_price"`
	Display             string     `json:"display,omitempty"`
	OwnerID             int64      `json:"owner_id"`
	Username            string     `json:"username"`
	Private             bool       `json:"private"`
	Category            Category   `json:"category,omitempty"`
	Tags                []string   `json:"tags"`
	Notes               string     `json:"notes,omitempty"`
	Store               string     `json:"store,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// CreateItemRequest is the body of POST /items. Quantity and price arrive as
// numbers or numeric strings.
type CreateItemRequest struct {
	Title    string     `json:"title"`
	Quantity FlexFloat  `json:"quantity"`
	Price    FlexFloat  `json:"price"`
	Unit     units.Unit `json:"unit"`
	Category Category   `json:"category"`
	Tags     []string   `json:"tags"`
	Notes    string     `json:"notes"`
	Store    string     `json:"store"`
}

type SetPrivateRequest struct {
	Private *bool `json:"private"`
}

// PriceHistoryEntry is a snapshot of an item's price taken when it was recorded.
type PriceHistoryEntry struct {
	ID         int64      `json:"id"`
	ItemID     int64      `json:"item_id"`
	ItemTitle  string     `json:"item_title"`
	Price      float64    `json:"price"`
	UnitPrice  float64    `json:"unit_price"`
	Quantity   float64    `json:"quantity"`
	Unit       units.Unit `json:"unit"`
	OwnerID    int64      `json:"owner_id"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// ComparisonGroup holds items of one dimension ranked by normalized price.
type ComparisonGroup struct {
	Dimension units.Dimension `json:"dimension"`
	BaseUnit  units.Unit      `json:"base_unit"`
	Label     string          `json:"label"`
	Items     []Item          `json:"items"`
}
