package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	RoleID       string
	Salary       decimal.Decimal
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	RoleName    *string
	Permissions []string
}
