package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateSaleRequest struct {
	EmployeeID string            `json:"-"`
	Items      []SaleItemRequest `json:"items"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "items must contain at least one entry",
		})
	}

	for _, item := range r.Items {
		if validator.IsEmpty(item.ProductID) {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item needs a product_id",
			})
			break
		}
		if item.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item quantity must be positive",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName *string         `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

type SaleResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName *string            `json:"employee_name,omitempty"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Timestamp    time.Time          `json:"timestamp"`
	Items        []SaleItemResponse `json:"items"`
}

func NewSaleResponse(s Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		})
	}
	return SaleResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		TotalAmount:  s.TotalAmount,
		Timestamp:    s.Timestamp,
		Items:        items,
	}
}
