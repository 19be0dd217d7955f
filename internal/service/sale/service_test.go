package sale

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/backoffice-go/internal/domain/catalog"
	"github.com/staffline/backoffice-go/internal/domain/sale"
)

type fakeProductRepo struct {
	products []*catalog.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	copied := p
	f.products = append(f.products, &copied)
	return p, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return *p, nil
		}
	}
	return catalog.Product{}, catalog.ErrProductNotFound
}

func (f *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (catalog.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(ctx context.Context, categoryID string) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range f.products {
		if categoryID == "" || p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	for _, existing := range f.products {
		if existing.ID == p.ID {
			*existing = p
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func (f *fakeProductRepo) AdjustStock(ctx context.Context, id string, delta int) (catalog.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p.StockLevel += delta
			return *p, nil
		}
	}
	return catalog.Product{}, catalog.ErrProductNotFound
}

type fakeSaleRepo struct {
	sales  []sale.Sale
	nextID int
}

func (f *fakeSaleRepo) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	f.nextID++
	s.ID = fmt.Sprintf("sale-%d", f.nextID)
	f.sales = append(f.sales, s)
	return s, nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return sale.Sale{}, sale.ErrSaleNotFound
}

func (f *fakeSaleRepo) ListAll(ctx context.Context) ([]sale.Sale, error) {
	return append([]sale.Sale(nil), f.sales...), nil
}

func (f *fakeSaleRepo) ListByEmployee(ctx context.Context, employeeID string) ([]sale.Sale, error) {
	var out []sale.Sale
	for _, s := range f.sales {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) GetSalesTotal(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeSaleRepo) GetTotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newTestService() (*SaleServiceImpl, *fakeSaleRepo, *fakeProductRepo) {
	sales := &fakeSaleRepo{}
	products := &fakeProductRepo{
		products: []*catalog.Product{
			{ID: "prod-1", Name: "Espresso", SKU: "ESP-001", Price: decimal.NewFromFloat(3.50), StockLevel: 10},
			{ID: "prod-2", Name: "Croissant", SKU: "CRO-001", Price: decimal.NewFromFloat(2.25), StockLevel: 2},
		},
	}
	svc := NewService(nil, sales, products)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	}
	return svc, sales, products
}

func TestCreateSale_DecrementsStockAndCapturesPrices(t *testing.T) {
	svc, _, products := newTestService()

	resp, err := svc.CreateSale(context.Background(), sale.CreateSaleRequest{
		EmployeeID: "emp-1",
		Items: []sale.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2 * 3.50 + 1 * 2.25
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(9.25)), "total %s", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].PriceAtSale.Equal(decimal.NewFromFloat(3.50)))

	assert.Equal(t, 8, products.products[0].StockLevel)
	assert.Equal(t, 1, products.products[1].StockLevel)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	svc, sales, products := newTestService()

	_, err := svc.CreateSale(context.Background(), sale.CreateSaleRequest{
		EmployeeID: "emp-1",
		Items: []sale.SaleItemRequest{
			{ProductID: "prod-2", Quantity: 3},
		},
	})
	require.ErrorIs(t, err, catalog.ErrInsufficientStock)

	var stockErr *catalog.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Croissant", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 3, stockErr.Requested)

	assert.Empty(t, sales.sales)
	assert.Equal(t, 2, products.products[1].StockLevel)
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSale(context.Background(), sale.CreateSaleRequest{
		EmployeeID: "emp-1",
		Items: []sale.SaleItemRequest{
			{ProductID: "missing", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCreateSale_RejectsEmptyItems(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSale(context.Background(), sale.CreateSaleRequest{
		EmployeeID: "emp-1",
	})
	assert.Error(t, err)
}

func TestListMySales(t *testing.T) {
	svc, sales, _ := newTestService()

	sales.sales = append(sales.sales,
		sale.Sale{ID: "sale-a", EmployeeID: "emp-1", TotalAmount: decimal.NewFromInt(10)},
		sale.Sale{ID: "sale-b", EmployeeID: "emp-2", TotalAmount: decimal.NewFromInt(20)},
	)

	mine, err := svc.ListMySales(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "sale-a", mine[0].ID)
}
