package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-repository mutations inside one database
// transaction so a payout's balance debit and its ledger rows commit or roll
// back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetEmployeeRepository returns an employee repository bound to the current transaction
	GetEmployeeRepository(ctx context.Context) EmployeeRepository

	// GetTreasuryRepository returns a treasury repository bound to the current transaction
	GetTreasuryRepository(ctx context.Context) TreasuryRepository

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetSettingsRepository returns a settings repository bound to the current transaction
	GetSettingsRepository(ctx context.Context) SettingsRepository
}
