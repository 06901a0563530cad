package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds  = 4001
	CodeInvalidAmount      = 4002
	CodeStreamNotActive    = 4003
	CodeInvalidTaxRate     = 4004
	CodeDuplicateEmail     = 4005
	CodeLedgerHistory      = 4006
	CodeInvalidCredentials = 4010
	CodeEmployeeNotFound   = 4040
	CodeUserNotFound       = 4041
	CodeTaxSlabNotFound    = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a debit would drive the treasury balance negative
	ErrInsufficientFunds = errors.New("insufficient treasury funds")

	// ErrInvalidAmount is returned when a monetary input is non-positive or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrStreamNotActive is returned when a salary payment targets a paused employee
	ErrStreamNotActive = errors.New("stream is not active for this employee")

	// ErrInvalidTaxRate is returned when a tax rate is outside [0,100]
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 100")

	// ErrEmployeeNotFound is returned when the requested employee doesn't exist
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmail is returned when an employee email collides with an existing one
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrEmployeeHasLedgerHistory is returned when deleting an employee who owns
	// recorded transactions or bonuses without forcing the cascade
	ErrEmployeeHasLedgerHistory = errors.New("employee has recorded ledger history")

	// ErrTaxSlabNotFound is returned when the requested tax slab doesn't exist
	ErrTaxSlabNotFound = errors.New("tax slab not found")

	// ErrUserNotFound is returned when the requested auth user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser is returned when trying to register an existing user email
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrStreamNotActive):
		return CodeStreamNotActive
	case errors.Is(err, ErrInvalidTaxRate):
		return CodeInvalidTaxRate
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrEmployeeHasLedgerHistory):
		return CodeLedgerHistory
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrEmployeeNotFound):
		return CodeEmployeeNotFound
	case errors.Is(err, ErrTaxSlabNotFound):
		return CodeTaxSlabNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	Requested string
	Balance   string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient treasury funds: required %s, available %s",
		e.Requested, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"requested":       e.Requested,
		"current_balance": e.Balance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(requested, balance string) error {
	return &InsufficientFundsError{
		Requested: requested,
		Balance:   balance,
	}
}

// PayoutError represents a failure while processing a salary or bonus payout
type PayoutError struct {
	EmployeeID uint64
	Kind       string
	Gross      string
	Reason     string
	Err        error
}

// Error implements the error interface for PayoutError
func (e *PayoutError) Error() string {
	return fmt.Sprintf("%s payout failed for employee %d (gross: %s): %s - %v",
		e.Kind, e.EmployeeID, e.Gross, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PayoutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PayoutError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "payout_error",
		"employee_id": e.EmployeeID,
		"payout_kind": e.Kind,
		"gross":       e.Gross,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewPayoutError creates a detailed payout error
func NewPayoutError(employeeID uint64, kind, gross, reason string, err error) *PayoutError {
	return &PayoutError{
		EmployeeID: employeeID,
		Kind:       kind,
		Gross:      gross,
		Reason:     reason,
		Err:        err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient treasury funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsEmployeeNotFoundError checks if the error is an employee not found error
func IsEmployeeNotFoundError(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrTaxSlabNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsInvalidAmountError checks if the error is a malformed or non-positive amount error
func IsInvalidAmountError(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// IsStreamNotActiveError checks if the error is a paused-stream rejection
func IsStreamNotActiveError(err error) bool {
	return errors.Is(err, ErrStreamNotActive)
}

// IsDuplicateEmailError checks if the error is an employee email collision
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}
