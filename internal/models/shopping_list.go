package models

import (
	"time"

	"compatron/internal/units"
)

type ShoppingListItem struct {
	ItemID         *int64     `json:"item_id,omitempty"`
	Title          string     `json:"title"`
	Quantity       float64    `json:"quantity"`
	Unit           units.Unit `json:"unit"`
	EstimatedPrice *float64   `json:"estimated_price,omitempty"`
	Checked        bool       `json:"checked"`
	Notes          string     `json:"notes,omitempty"`
}

type ShoppingList struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Items              []ShoppingListItem `json:"items"`
	TotalEstimatedCost float64            `json:"total_estimated_cost"`
	TotalDisplay       string             `json:"total_display,omitempty"`
	OwnerID            int64              `json:"owner_id"`
	Username           string             `json:"username"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type CreateShoppingListRequest struct {
	Name  string             `json:"name"`
	Items []ShoppingListItem `json:"items"`
}

// UpdateShoppingListRequest leaves fields that are nil untouched.
type UpdateShoppingListRequest struct {
	Name  *string             `json:"name"`
	Items *[]ShoppingListItem `json:"items"`
}
