package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/domain/catalog"
	"github.com/staffline/backoffice-go/internal/domain/sale"
	"github.com/staffline/backoffice-go/internal/pkg/database"
	"github.com/staffline/backoffice-go/internal/repository/postgresql"
)

type SaleServiceImpl struct {
	db       *database.DB
	sales    sale.SaleRepository
	products catalog.ProductRepository

	now func() time.Time
}

func NewService(db *database.DB, sales sale.SaleRepository, products catalog.ProductRepository) *SaleServiceImpl {
	return &SaleServiceImpl{
		db:       db,
		sales:    sales,
		products: products,
		now:      time.Now,
	}
}

// CreateSale implements sale.Service. Stock checks, decrements and the sale
// insert run in one transaction holding each product row lock, so concurrent
// checkouts cannot oversell.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	var created sale.Sale
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		total := decimal.Zero
		items := make([]sale.SaleItem, 0, len(req.Items))

		for _, item := range req.Items {
			p, err := s.products.GetByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if p.StockLevel < item.Quantity {
				return &catalog.InsufficientStockError{
					ProductName: p.Name,
					Available:   p.StockLevel,
					Requested:   item.Quantity,
				}
			}

			if _, err := s.products.AdjustStock(ctx, p.ID, -item.Quantity); err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}

			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			items = append(items, sale.SaleItem{
				ProductID:   p.ID,
				Quantity:    item.Quantity,
				PriceAtSale: p.Price,
			})
		}

		var err error
		created, err = s.sales.Create(ctx, sale.Sale{
			EmployeeID:  req.EmployeeID,
			TotalAmount: total,
			Timestamp:   s.now(),
			Items:       items,
		})
		if err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return sale.NewSaleResponse(created), nil
}

// GetSale implements sale.Service.
func (s *SaleServiceImpl) GetSale(ctx context.Context, id string) (sale.SaleResponse, error) {
	found, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, err
	}
	return sale.NewSaleResponse(found), nil
}

// ListSales implements sale.Service.
func (s *SaleServiceImpl) ListSales(ctx context.Context) ([]sale.SaleResponse, error) {
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return toResponses(sales), nil
}

// ListMySales implements sale.Service.
func (s *SaleServiceImpl) ListMySales(ctx context.Context, employeeID string) ([]sale.SaleResponse, error) {
	sales, err := s.sales.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return toResponses(sales), nil
}

func toResponses(sales []sale.Sale) []sale.SaleResponse {
	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, sale.NewSaleResponse(s))
	}
	return responses
}
