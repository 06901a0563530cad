package treasury

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Ledger owns the treasury balance operations. Every mutation runs inside a
// unit-of-work transaction that locks the treasury row, so two concurrent
// operations can never both validate against a balance neither has committed.
type Ledger struct {
	uow          persistence.UnitOfWork
	treasuryRepo persistence.TreasuryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a treasury ledger
func NewLedger(
	uow persistence.UnitOfWork,
	treasuryRepo persistence.TreasuryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		treasuryRepo: treasuryRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Get returns the treasury singleton, creating it with zero balances on first access
func (l *Ledger) Get(ctx context.Context) (*entity.Treasury, error) {
	return l.treasuryRepo.GetOrCreate(ctx)
}

// Deposit adds a positive amount to the spendable balance
func (l *Ledger) Deposit(ctx context.Context, amount decimal.Decimal) (*entity.Treasury, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	treasury, err := l.mutate(ctx, func(t *entity.Treasury, now time.Time) error {
		return t.Deposit(amount, now)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Treasury deposit completed", map[string]any{
		"amount":      entity.FormatMoney(amount),
		"new_balance": entity.FormatMoney(treasury.TotalBalance),
	})
	return treasury, nil
}

// Withdraw removes a positive amount from the spendable balance, failing with
// ErrInsufficientFunds when the balance is too small
func (l *Ledger) Withdraw(ctx context.Context, amount decimal.Decimal) (*entity.Treasury, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	treasury, err := l.mutate(ctx, func(t *entity.Treasury, now time.Time) error {
		return t.Withdraw(amount, now)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Treasury withdrawal completed", map[string]any{
		"amount":      entity.FormatMoney(amount),
		"new_balance": entity.FormatMoney(treasury.TotalBalance),
	})
	return treasury, nil
}

// mutate runs one balance mutation under the treasury row lock
func (l *Ledger) mutate(ctx context.Context, apply func(*entity.Treasury, time.Time) error) (*entity.Treasury, error) {
	txCtx, err := l.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	repo := l.uow.GetTreasuryRepository(txCtx)

	// Ensure the singleton exists before locking it
	if _, err := repo.GetOrCreate(txCtx); err != nil {
		l.rollback(txCtx)
		return nil, err
	}

	treasury, err := repo.GetForUpdate(txCtx)
	if err != nil {
		l.rollback(txCtx)
		return nil, err
	}

	if err := apply(treasury, l.timeProvider.Now()); err != nil {
		l.rollback(txCtx)
		return nil, err
	}

	if err := repo.Save(txCtx, treasury); err != nil {
		l.rollback(txCtx)
		return nil, err
	}

	if err := l.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return treasury, nil
}

func (l *Ledger) rollback(ctx context.Context) {
	if err := l.uow.Rollback(ctx); err != nil {
		l.logger.Error("Failed to roll back treasury transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
