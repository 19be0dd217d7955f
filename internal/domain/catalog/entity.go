package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Product is a sellable catalog item. StockLevel is decremented by sales and
// adjusted by restocks; it never goes below zero.
type Product struct {
	ID         string
	Name       string
	SKU        string
	CategoryID string
	Price      decimal.Decimal
	StockLevel int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	CategoryName *string
}
