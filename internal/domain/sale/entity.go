package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed point-of-sale transaction. TotalAmount is the sum of
// item price-at-sale times quantity, captured at checkout so later price edits
// never rewrite history.
type Sale struct {
	ID          string
	EmployeeID  string
	TotalAmount decimal.Decimal
	Timestamp   time.Time
	CreatedAt   time.Time
	Items       []SaleItem

	// Joined fields
	EmployeeName *string
}

type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int
	PriceAtSale decimal.Decimal

	// Joined fields
	ProductName *string
}
