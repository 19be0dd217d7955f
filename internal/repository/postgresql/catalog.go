package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/catalog"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) catalog.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) Create(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO categories (id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	c.ID = uuid.NewString()
	if err := q.QueryRow(ctx, query, c.ID, c.Name).Scan(&c.CreatedAt); err != nil {
		return catalog.Category{}, err
	}

	return c, nil
}

// GetByID implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Category, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE id = $1
	`

	var c catalog.Category
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Category{}, catalog.ErrCategoryNotFound
		}
		return catalog.Category{}, err
	}
	return c, nil
}

// GetByName implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) GetByName(ctx context.Context, name string) (*catalog.Category, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE name = $1
	`

	var c catalog.Category
	err := q.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]catalog.Category, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM categories
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

// CountProducts implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) CountProducts(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE category_id = $1
	`

	var count int
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) catalog.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productColumns = `
	p.id, p.name, p.sku, p.category_id, p.price, p.stock_level,
	p.created_at, p.updated_at, c.name`

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.CategoryID, &p.Price, &p.StockLevel,
		&p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	return p, err
}

// Create implements catalog.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO products (
			id, name, sku, category_id, price, stock_level, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.CategoryID, p.Price, p.StockLevel,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return catalog.Product{}, err
	}

	return p, nil
}

// GetByID implements catalog.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	p, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

// GetByIDForUpdate implements catalog.ProductRepository. The row lock covers
// only the products row, so the category join is skipped here.
func (r *productRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, sku, category_id, price, stock_level, created_at, updated_at
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	var p catalog.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.CategoryID, &p.Price, &p.StockLevel,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

// GetBySKU implements catalog.ProductRepository.
func (r *productRepositoryImpl) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.sku = $1
	`

	p, err := scanProduct(q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List implements catalog.ProductRepository. An empty categoryID matches all.
func (r *productRepositoryImpl) List(ctx context.Context, categoryID string) ([]catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE $1 = '' OR p.category_id = $1
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Update implements catalog.ProductRepository.
func (r *productRepositoryImpl) Update(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE products
		SET name = $2, sku = $3, category_id = $4, price = $5, updated_at = $6
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, p.ID, p.Name, p.SKU, p.CategoryID, p.Price, time.Now()).
		Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, err
	}

	return r.GetByID(ctx, updatedID)
}

// Delete implements catalog.ProductRepository.
func (r *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return catalog.ErrProductNotFound
	}
	return nil
}

// AdjustStock implements catalog.ProductRepository.
func (r *productRepositoryImpl) AdjustStock(ctx context.Context, id string, delta int) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE products
		SET stock_level = stock_level + $2, updated_at = $3
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, delta, time.Now()).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, err
	}

	return r.GetByID(ctx, updatedID)
}
