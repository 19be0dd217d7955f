package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/domain/sale"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

// Create implements sale.SaleRepository.
func (r *saleRepositoryImpl) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	saleQuery := `
		INSERT INTO sales (id, employee_id, total_amount, timestamp, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	s.ID = uuid.NewString()
	err := q.QueryRow(ctx, saleQuery, s.ID, s.EmployeeID, s.TotalAmount, s.Timestamp).
		Scan(&s.CreatedAt)
	if err != nil {
		return sale.Sale{}, err
	}

	itemQuery := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_sale)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i := range s.Items {
		s.Items[i].ID = uuid.NewString()
		s.Items[i].SaleID = s.ID
		item := s.Items[i]
		if _, err := q.Exec(ctx, itemQuery,
			item.ID, item.SaleID, item.ProductID, item.Quantity, item.PriceAtSale,
		); err != nil {
			return sale.Sale{}, err
		}
	}

	return s, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT s.id, s.employee_id, s.total_amount, s.timestamp, s.created_at, e.name
		FROM sales s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var s sale.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.TotalAmount, &s.Timestamp, &s.CreatedAt, &s.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, err
	}

	items, err := r.loadItems(ctx, []string{s.ID})
	if err != nil {
		return sale.Sale{}, err
	}
	s.Items = items[s.ID]

	return s, nil
}

// ListAll implements sale.SaleRepository.
func (r *saleRepositoryImpl) ListAll(ctx context.Context) ([]sale.Sale, error) {
	return r.list(ctx, "")
}

// ListByEmployee implements sale.SaleRepository.
func (r *saleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]sale.Sale, error) {
	return r.list(ctx, employeeID)
}

func (r *saleRepositoryImpl) list(ctx context.Context, employeeID string) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT s.id, s.employee_id, s.total_amount, s.timestamp, s.created_at, e.name
		FROM sales s
		JOIN employees e ON e.id = s.employee_id
		WHERE $1 = '' OR s.employee_id = $1
		ORDER BY s.timestamp DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []sale.Sale
	var ids []string
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.TotalAmount, &s.Timestamp, &s.CreatedAt, &s.EmployeeName,
		); err != nil {
			return nil, err
		}
		sales = append(sales, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return sales, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = items[sales[i].ID]
	}

	return sales, nil
}

func (r *saleRepositoryImpl) loadItems(ctx context.Context, saleIDs []string) (map[string][]sale.SaleItem, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.price_at_sale, p.name
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = ANY($1)
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]sale.SaleItem)
	for rows.Next() {
		var item sale.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
			&item.PriceAtSale, &item.ProductName,
		); err != nil {
			return nil, err
		}
		items[item.SaleID] = append(items[item.SaleID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetSalesTotal implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetSalesTotal(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE employee_id = $1
		  AND timestamp >= $2 AND timestamp < $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// GetTotalSales implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetTotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE timestamp >= $1 AND timestamp < $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
