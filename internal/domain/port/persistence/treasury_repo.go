package persistence

import (
	"context"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// TreasuryRepository manages the singleton treasury row
type TreasuryRepository interface {
	// GetOrCreate returns the treasury row, creating it with zero balances on
	// first access. The upsert is idempotent under concurrent callers: the
	// fixed primary key makes a losing insert fall back to a read.
	GetOrCreate(ctx context.Context) (*entity.Treasury, error)

	// GetForUpdate returns the treasury row under an exclusive row lock.
	// Must be called inside an open unit-of-work transaction; the lock is
	// what serializes concurrent balance mutations.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database connection fails
	GetForUpdate(ctx context.Context) (*entity.Treasury, error)

	// Save persists a mutated treasury balance
	Save(ctx context.Context, treasury *entity.Treasury) error
}
