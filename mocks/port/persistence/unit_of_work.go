package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetEmployeeRepository(ctx context.Context) persistence.EmployeeRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.EmployeeRepository)
}

func (m *MockUnitOfWork) GetTreasuryRepository(ctx context.Context) persistence.TreasuryRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TreasuryRepository)
}

func (m *MockUnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.LedgerRepository)
}

func (m *MockUnitOfWork) GetSettingsRepository(ctx context.Context) persistence.SettingsRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.SettingsRepository)
}
