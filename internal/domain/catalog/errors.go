package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already in use")
	ErrCategoryInUse     = errors.New("category has products assigned")
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUTaken          = errors.New("sku already in use")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the product that could not cover the requested
// quantity. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
