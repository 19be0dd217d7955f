package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

type CreateProductRequest struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	CategoryID string          `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
	StockLevel int             `json:"stock_level"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidSKU(r.SKU) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku must contain only letters, digits and dashes",
		})
	}

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	if r.StockLevel < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stock_level",
			Message: "stock_level must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProductRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name"`
	SKU        *string          `json:"sku"`
	CategoryID *string          `json:"category_id"`
	Price      *decimal.Decimal `json:"price"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.SKU != nil && !validator.IsValidSKU(*r.SKU) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku must contain only letters, digits and dashes",
		})
	}

	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustStockRequest moves a product's stock level by Delta, which may be
// negative for shrinkage corrections.
type AdjustStockRequest struct {
	ProductID string `json:"-"`
	Delta     int    `json:"delta"`
}

func (r *AdjustStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id is required",
		})
	}

	if r.Delta == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta",
			Message: "delta must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   string          `json:"category_id"`
	CategoryName *string         `json:"category_name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	StockLevel   int             `json:"stock_level"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		StockLevel:   p.StockLevel,
		CreatedAt:    p.CreatedAt,
	}
}
