package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// EmployeeNetTotal is one row of the top-earners rollup
type EmployeeNetTotal struct {
	EmployeeID uint64
	Name       string
	TotalNet   decimal.Decimal
}

// LedgerRepository persists the append-only transaction log and bonus records,
// and answers the read-only aggregation queries over them
type LedgerRepository interface {
	// CreateTransaction appends a ledger entry. Append-only: there is no
	// update or single-row delete on transactions.
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error

	// CreateBonus persists a bonus record alongside its companion transaction
	CreateBonus(ctx context.Context, bonus *entity.Bonus) error

	// ListByEmployee returns an employee's transactions, newest first
	ListByEmployee(ctx context.Context, employeeID uint64) ([]*entity.Transaction, error)

	// ListAll returns every transaction ordered by creation time ascending
	ListAll(ctx context.Context) ([]*entity.Transaction, error)

	// HasHistory reports whether the employee owns any transactions or bonuses
	HasHistory(ctx context.Context, employeeID uint64) (bool, error)

	// TotalNet sums all net amounts in the ledger
	TotalNet(ctx context.Context) (decimal.Decimal, error)

	// TotalTax sums all withheld tax amounts in the ledger
	TotalTax(ctx context.Context) (decimal.Decimal, error)

	// NetTotalsByEmployee returns per-employee net sums, highest first,
	// ties broken by employee ID ascending
	NetTotalsByEmployee(ctx context.Context) ([]EmployeeNetTotal, error)
}
