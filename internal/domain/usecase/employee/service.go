package employee

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Service handles employee lifecycle operations
type Service struct {
	uow          persistence.UnitOfWork
	employeeRepo persistence.EmployeeRepository
	ledgerRepo   persistence.LedgerRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an employee service
func NewService(
	uow persistence.UnitOfWork,
	employeeRepo persistence.EmployeeRepository,
	ledgerRepo persistence.LedgerRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create registers a new employee with streaming paused and no tax override
func (s *Service) Create(ctx context.Context, name, email, role string) (*entity.Employee, error) {
	employee, err := entity.NewEmployee(name, email, role, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("Employee created", map[string]any{
		"employee_id": employee.ID,
		"email":       employee.Email,
	})
	return employee, nil
}

// Get retrieves an employee by ID
func (s *Service) Get(ctx context.Context, employeeID uint64) (*entity.Employee, error) {
	return s.employeeRepo.GetByID(ctx, employeeID)
}

// List returns all employees
func (s *Service) List(ctx context.Context) ([]*entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Transactions returns the employee's ledger entries, newest first
func (s *Service) Transactions(ctx context.Context, employeeID uint64) ([]*entity.Transaction, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListByEmployee(ctx, employeeID)
}

// SelfProfile is what an employee sees about their own record. Employee is
// nil when no employee row carries the login email; auth users without a
// payroll record still get a profile with a zero total.
type SelfProfile struct {
	Employee    *entity.Employee
	TotalEarned decimal.Decimal
}

// ProfileByEmail returns the profile for the employee matching the login
// email, with the lifetime net amount paid out to them
func (s *Service) ProfileByEmail(ctx context.Context, email string) (*SelfProfile, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return &SelfProfile{TotalEarned: decimal.Zero}, nil
		}
		return nil, err
	}

	transactions, err := s.ledgerRepo.ListByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, transaction := range transactions {
		total = total.Add(transaction.NetAmount)
	}

	return &SelfProfile{Employee: employee, TotalEarned: total}, nil
}

// TransactionsByEmail returns the ledger entries for the employee matching
// the login email, newest first. An auth user without an employee record gets
// an empty list, not an error.
func (s *Service) TransactionsByEmail(ctx context.Context, email string) ([]*entity.Transaction, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return []*entity.Transaction{}, nil
		}
		return nil, err
	}
	return s.ledgerRepo.ListByEmployee(ctx, employee.ID)
}

// UpdateTaxOverride sets or clears the employee's custom withholding rate
func (s *Service) UpdateTaxOverride(ctx context.Context, employeeID uint64, useCustomTax bool, rate *decimal.Decimal) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := employee.SetTaxOverride(useCustomTax, rate, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("Employee tax override updated", map[string]any{
		"employee_id":    employeeID,
		"use_custom_tax": useCustomTax,
	})
	return employee, nil
}

// UpdateWallet records the employee's on-chain wallet address
func (s *Service) UpdateWallet(ctx context.Context, employeeID uint64, address string) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	employee.SetWalletAddress(address, s.timeProvider.Now())

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes an employee. An employee with recorded transactions or
// bonuses is rejected unless force is set; a forced delete removes the
// dependents in the same database transaction so no orphaned ledger rows can
// be observed.
func (s *Service) Delete(ctx context.Context, employeeID uint64, force bool) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	employeeRepo := s.uow.GetEmployeeRepository(txCtx)
	ledgerRepo := s.uow.GetLedgerRepository(txCtx)

	if _, err := employeeRepo.GetByID(txCtx, employeeID); err != nil {
		s.rollback(txCtx)
		return err
	}

	hasHistory, err := ledgerRepo.HasHistory(txCtx, employeeID)
	if err != nil {
		s.rollback(txCtx)
		return err
	}
	if hasHistory && !force {
		s.rollback(txCtx)
		return errs.ErrEmployeeHasLedgerHistory
	}

	if err := employeeRepo.Delete(txCtx, employeeID); err != nil {
		s.rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Employee deleted", map[string]any{
		"employee_id": employeeID,
		"forced":      force,
		"had_history": hasHistory,
	})
	return nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back employee transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
