package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// TaxCalculator computes the withholding for a gross amount
type TaxCalculator interface {
	Calculate(ctx context.Context, employee *entity.Employee, gross decimal.Decimal) (decimal.Decimal, error)
}

// Engine orchestrates salary and bonus payouts. Each payout is one atomic
// unit: the treasury debit, the ledger entry and (for bonuses) the bonus row
// commit together or not at all.
type Engine struct {
	uow          persistence.UnitOfWork
	calculator   TaxCalculator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a payroll engine
func NewEngine(
	uow persistence.UnitOfWork,
	calculator TaxCalculator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		calculator:   calculator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PaySalary pays gross to the employee: withholds tax, debits the treasury by
// the net amount and appends the ledger entry. The employee's stream must be
// active.
//
// Possible errors: ErrEmployeeNotFound, ErrStreamNotActive, ErrInvalidAmount,
// ErrInsufficientFunds.
func (e *Engine) PaySalary(ctx context.Context, employeeID uint64, gross decimal.Decimal, description string) (*entity.Transaction, error) {
	return e.payout(ctx, employeeID, gross, description, true, "")
}

// GiveBonus pays a discretionary gross bonus: same flow as a salary payment
// except the streaming gate does not apply and a Bonus row recording the gross
// is created together with the net-effect transaction.
//
// Possible errors: ErrEmployeeNotFound, ErrInvalidAmount, ErrInsufficientFunds.
func (e *Engine) GiveBonus(ctx context.Context, employeeID uint64, gross decimal.Decimal, reason string) (*entity.Transaction, error) {
	return e.payout(ctx, employeeID, gross, "", false, reason)
}

func (e *Engine) payout(
	ctx context.Context,
	employeeID uint64,
	gross decimal.Decimal,
	description string,
	requireStream bool,
	bonusReason string,
) (*entity.Transaction, error) {
	kind := "bonus"
	if requireStream {
		kind = "salary"
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	employeeRepo := e.uow.GetEmployeeRepository(txCtx)
	treasuryRepo := e.uow.GetTreasuryRepository(txCtx)
	ledgerRepo := e.uow.GetLedgerRepository(txCtx)

	employee, err := employeeRepo.GetByID(txCtx, employeeID)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if requireStream && !employee.IsStreaming {
		e.rollback(txCtx)
		e.logger.Warn("Salary payment rejected, stream not active", map[string]any{
			"employee_id": employeeID,
		})
		return nil, errs.ErrStreamNotActive
	}

	if !gross.IsPositive() {
		e.rollback(txCtx)
		return nil, errs.ErrInvalidAmount
	}

	taxAmount, err := e.calculator.Calculate(txCtx, employee, gross)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}
	netAmount := gross.Sub(taxAmount)

	// Ensure the singleton exists, then take the row lock for the
	// check-then-debit sequence
	if _, err := treasuryRepo.GetOrCreate(txCtx); err != nil {
		e.rollback(txCtx)
		return nil, err
	}
	treasury, err := treasuryRepo.GetForUpdate(txCtx)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	now := e.timeProvider.Now()

	if err := treasury.DebitForPayout(netAmount, now); err != nil {
		e.rollback(txCtx)
		payoutErr := errs.NewPayoutError(employeeID, kind, entity.FormatMoney(gross), "treasury debit rejected", err)
		e.logger.Warn("Payout rejected", payoutErr.LogFields())
		return nil, payoutErr
	}

	if err := treasuryRepo.Save(txCtx, treasury); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if !requireStream {
		bonus, err := entity.NewBonus(employeeID, gross, bonusReason, now)
		if err != nil {
			e.rollback(txCtx)
			return nil, err
		}
		if err := ledgerRepo.CreateBonus(txCtx, bonus); err != nil {
			e.rollback(txCtx)
			return nil, err
		}
		description = bonus.Description()
	}

	transaction, err := entity.NewTransaction(employeeID, netAmount, taxAmount, description, now)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}
	if err := ledgerRepo.CreateTransaction(txCtx, transaction); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	e.logger.Info("Payout processed", map[string]any{
		"employee_id":      employeeID,
		"payout_kind":      kind,
		"gross":            entity.FormatMoney(gross),
		"tax":              entity.FormatMoney(taxAmount),
		"net":              entity.FormatMoney(netAmount),
		"treasury_balance": entity.FormatMoney(treasury.TotalBalance),
	})

	return transaction, nil
}

func (e *Engine) rollback(ctx context.Context) {
	if err := e.uow.Rollback(ctx); err != nil {
		e.logger.Error("Failed to roll back payout transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
