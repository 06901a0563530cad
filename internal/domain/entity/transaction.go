package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// Transaction is an immutable ledger entry recording the net amount paid to an
// employee and the tax withheld from the gross. Rows are append-only: nothing
// in the system updates or deletes a transaction after creation (except a
// forced employee cascade delete).
type Transaction struct {
	ID         uint64
	EmployeeID uint64

	NetAmount decimal.Decimal
	TaxAmount decimal.Decimal

	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a ledger entry for a payout. Net and tax must be the
// rounded values produced by the tax calculator so that net + tax equals the
// gross exactly.
func NewTransaction(employeeID uint64, net, tax decimal.Decimal, description string, now time.Time) (*Transaction, error) {
	if employeeID == 0 {
		return nil, errs.ErrEmployeeNotFound
	}
	if net.IsNegative() || tax.IsNegative() {
		return nil, fmt.Errorf("%w: ledger amounts cannot be negative", errs.ErrInvalidAmount)
	}

	return &Transaction{
		EmployeeID:  employeeID,
		NetAmount:   RoundMoney(net),
		TaxAmount:   RoundMoney(tax),
		Description: description,
		CreatedAt:   now.UTC(),
	}, nil
}

// Gross reconstructs the gross amount the transaction was computed from
func (t *Transaction) Gross() decimal.Decimal {
	return t.NetAmount.Add(t.TaxAmount)
}
