package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange    = errors.New("start date cannot be later than end date")
	ErrInvalidLeaveType    = errors.New("invalid or inactive leave type")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInvalidStatus       = errors.New("status must be approved or rejected")
	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrLeaveTypeNameTaken  = errors.New("leave type name already in use")
)

// InsufficientBalanceError carries the balance detail the caller reports back
// to the employee. errors.Is(err, ErrInsufficientBalance) matches it.
type InsufficientBalanceError struct {
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: remaining %d days, requested %d days", e.Remaining, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
