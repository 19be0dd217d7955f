package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SaleRepository interface {
	// Create persists the sale and its items in one statement batch. Callers
	// run it inside the checkout transaction.
	Create(ctx context.Context, s Sale) (Sale, error)

	GetByID(ctx context.Context, id string) (Sale, error)
	ListAll(ctx context.Context) ([]Sale, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Sale, error)

	// GetSalesTotal sums total_amount for one employee over [start, end).
	GetSalesTotal(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error)

	// GetTotalSales sums total_amount across all employees over [start, end).
	GetTotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

type Service interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	GetSale(ctx context.Context, id string) (SaleResponse, error)
	ListSales(ctx context.Context) ([]SaleResponse, error)
	ListMySales(ctx context.Context, employeeID string) ([]SaleResponse, error)
}
