package entity

import "ahoy_market/internal/domain/value"

// Item is a catalog entry.
type Item struct {
	ID            value.ItemID
	Name          string
	LocalizedName string
	Category      value.Category
	Color         value.Color
}
