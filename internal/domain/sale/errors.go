package sale

import "errors"

var (
	ErrSaleNotFound = errors.New("sale not found")
	ErrEmptySale    = errors.New("sale must contain at least one item")
)
