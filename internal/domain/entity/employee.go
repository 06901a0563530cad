package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// Default role label for newly created employees
const DefaultEmployeeRole = "employee"

// Employee represents a payroll employee. The streaming flag gates whether
// salary payments are admitted; the optional custom tax rate overrides the
// company default when UseCustomTax is set.
type Employee struct {
	ID            uint64
	Name          string
	Email         string
	Role          string
	WalletAddress string

	IsStreaming bool

	UseCustomTax  bool
	CustomTaxRate *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEmployee creates a new employee with streaming paused and no tax override
func NewEmployee(name, email, role string, now time.Time) (*Employee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name is required", errs.ErrInvalidRequest)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", errs.ErrInvalidRequest)
	}
	if role == "" {
		role = DefaultEmployeeRole
	}

	return &Employee{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetTaxOverride enables or disables the employee's custom withholding rate.
// Invariant: CustomTaxRate is present only while UseCustomTax is true.
func (e *Employee) SetTaxOverride(useCustomTax bool, rate *decimal.Decimal, now time.Time) error {
	if !useCustomTax {
		e.UseCustomTax = false
		e.CustomTaxRate = nil
		e.UpdatedAt = now
		return nil
	}

	if rate == nil {
		return fmt.Errorf("%w: custom tax rate is required", errs.ErrInvalidTaxRate)
	}
	if err := ValidateTaxRate(*rate); err != nil {
		return err
	}

	r := *rate
	e.UseCustomTax = true
	e.CustomTaxRate = &r
	e.UpdatedAt = now
	return nil
}

// TaxOverride returns the custom rate and whether it applies
func (e *Employee) TaxOverride() (decimal.Decimal, bool) {
	if e.UseCustomTax && e.CustomTaxRate != nil {
		return *e.CustomTaxRate, true
	}
	return decimal.Zero, false
}

// StartStreaming marks the employee as eligible for salary payments.
// Idempotent: starting an already-active stream is a no-op.
func (e *Employee) StartStreaming(now time.Time) {
	if !e.IsStreaming {
		e.IsStreaming = true
		e.UpdatedAt = now
	}
}

// PauseStreaming marks the employee as ineligible for salary payments
func (e *Employee) PauseStreaming(now time.Time) {
	if e.IsStreaming {
		e.IsStreaming = false
		e.UpdatedAt = now
	}
}

// SetWalletAddress records the employee's on-chain wallet address.
// Reserved for future settlement; nothing in the ledger consumes it yet.
func (e *Employee) SetWalletAddress(address string, now time.Time) {
	e.WalletAddress = strings.TrimSpace(address)
	e.UpdatedAt = now
}
