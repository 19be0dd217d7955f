package catalog

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, c Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)

	// GetByName returns nil when no category has the name.
	GetByName(ctx context.Context, name string) (*Category, error)

	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id string) error
	CountProducts(ctx context.Context, id string) (int, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)

	// GetByIDForUpdate locks the product row for the enclosing transaction.
	// Checkout holds this lock across the stock check and decrement.
	GetByIDForUpdate(ctx context.Context, id string) (Product, error)

	// GetBySKU returns nil when no product has the SKU.
	GetBySKU(ctx context.Context, sku string) (*Product, error)

	List(ctx context.Context, categoryID string) ([]Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) error

	// AdjustStock moves stock_level by delta and returns the updated row.
	AdjustStock(ctx context.Context, id string, delta int) (Product, error)
}

type Service interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context, categoryID string) ([]ProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, req AdjustStockRequest) (ProductResponse, error)
}
