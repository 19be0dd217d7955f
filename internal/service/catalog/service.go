package catalog

import (
	"context"
	"fmt"

	"github.com/staffline/backoffice-go/internal/domain/catalog"
)

type CatalogServiceImpl struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
}

func NewService(categories catalog.CategoryRepository, products catalog.ProductRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		categories: categories,
		products:   products,
	}
}

// CreateCategory implements catalog.Service.
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (catalog.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.CategoryResponse{}, err
	}

	existing, err := s.categories.GetByName(ctx, req.Name)
	if err != nil {
		return catalog.CategoryResponse{}, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return catalog.CategoryResponse{}, catalog.ErrCategoryNameTaken
	}

	created, err := s.categories.Create(ctx, catalog.Category{Name: req.Name})
	if err != nil {
		return catalog.CategoryResponse{}, fmt.Errorf("failed to create category: %w", err)
	}

	return catalog.NewCategoryResponse(created), nil
}

// ListCategories implements catalog.Service.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]catalog.CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]catalog.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, catalog.NewCategoryResponse(c))
	}
	return responses, nil
}

// DeleteCategory implements catalog.Service. A category with products stays.
func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.categories.CountProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return catalog.ErrCategoryInUse
	}

	return s.categories.Delete(ctx, id)
}

// CreateProduct implements catalog.Service.
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		return catalog.ProductResponse{}, err
	}

	existing, err := s.products.GetBySKU(ctx, req.SKU)
	if err != nil {
		return catalog.ProductResponse{}, fmt.Errorf("failed to check sku: %w", err)
	}
	if existing != nil {
		return catalog.ProductResponse{}, catalog.ErrSKUTaken
	}

	created, err := s.products.Create(ctx, catalog.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		StockLevel: req.StockLevel,
	})
	if err != nil {
		return catalog.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	return catalog.NewProductResponse(created), nil
}

// GetProduct implements catalog.Service.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (catalog.ProductResponse, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return catalog.ProductResponse{}, err
	}
	return catalog.NewProductResponse(p), nil
}

// ListProducts implements catalog.Service.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, categoryID string) ([]catalog.ProductResponse, error) {
	products, err := s.products.List(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]catalog.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, catalog.NewProductResponse(p))
	}
	return responses, nil
}

// UpdateProduct implements catalog.Service.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	current, err := s.products.GetByID(ctx, req.ID)
	if err != nil {
		return catalog.ProductResponse{}, err
	}

	if req.SKU != nil && *req.SKU != current.SKU {
		existing, err := s.products.GetBySKU(ctx, *req.SKU)
		if err != nil {
			return catalog.ProductResponse{}, fmt.Errorf("failed to check sku: %w", err)
		}
		if existing != nil {
			return catalog.ProductResponse{}, catalog.ErrSKUTaken
		}
		current.SKU = *req.SKU
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return catalog.ProductResponse{}, err
		}
		current.CategoryID = *req.CategoryID
	}
	if req.Price != nil {
		current.Price = *req.Price
	}

	updated, err := s.products.Update(ctx, current)
	if err != nil {
		return catalog.ProductResponse{}, fmt.Errorf("failed to update product: %w", err)
	}

	return catalog.NewProductResponse(updated), nil
}

// DeleteProduct implements catalog.Service.
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// AdjustStock implements catalog.Service. Negative deltas never push stock
// below zero.
func (s *CatalogServiceImpl) AdjustStock(ctx context.Context, req catalog.AdjustStockRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	current, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return catalog.ProductResponse{}, err
	}

	if current.StockLevel+req.Delta < 0 {
		return catalog.ProductResponse{}, &catalog.InsufficientStockError{
			ProductName: current.Name,
			Available:   current.StockLevel,
			Requested:   -req.Delta,
		}
	}

	updated, err := s.products.AdjustStock(ctx, req.ProductID, req.Delta)
	if err != nil {
		return catalog.ProductResponse{}, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return catalog.NewProductResponse(updated), nil
}
