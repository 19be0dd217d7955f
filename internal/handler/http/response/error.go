package response

import (
	"errors"
	"net/http"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/domain/auth"
	"github.com/staffline/backoffice-go/internal/domain/catalog"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/leave"
	"github.com/staffline/backoffice-go/internal/domain/payroll"
	"github.com/staffline/backoffice-go/internal/domain/role"
	"github.com/staffline/backoffice-go/internal/domain/sale"
	"github.com/staffline/backoffice-go/internal/domain/settings"
	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "An open session already exists for today")
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active session to clock out of", nil)
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid or inactive leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be approved or rejected", nil)
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeNameTaken):
		Conflict(w, "Leave type name already in use")

	// Employee and role domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailTaken):
		Conflict(w, "Email already in use")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameTaken):
		Conflict(w, "Role name already in use")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role is assigned to one or more employees")

	// Catalog and sale domain errors
	case errors.Is(err, catalog.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, catalog.ErrCategoryNameTaken):
		Conflict(w, "Category name already in use")
	case errors.Is(err, catalog.ErrCategoryInUse):
		Conflict(w, "Category has products assigned")
	case errors.Is(err, catalog.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, catalog.ErrSKUTaken):
		Conflict(w, "SKU already in use")
	case errors.Is(err, catalog.ErrInsufficientStock):
		Conflict(w, err.Error())
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrEmptySale):
		BadRequest(w, "Sale must contain at least one item", nil)

	// Settings and payroll domain errors
	case errors.Is(err, settings.ErrInvalidWorkHours):
		BadRequest(w, "Work start time must be earlier than work end time", nil)
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid reporting period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
