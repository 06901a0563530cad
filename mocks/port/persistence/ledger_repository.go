package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// MockLedgerRepository is a mock implementation of the LedgerRepository port
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreateBonus(ctx context.Context, bonus *entity.Bonus) error {
	args := m.Called(ctx, bonus)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) HasHistory(ctx context.Context, employeeID uint64) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) TotalNet(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) TotalTax(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) NetTotalsByEmployee(ctx context.Context) ([]persistence.EmployeeNetTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.EmployeeNetTotal), args.Error(1)
}
