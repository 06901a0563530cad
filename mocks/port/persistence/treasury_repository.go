package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// MockTreasuryRepository is a mock implementation of the TreasuryRepository port
type MockTreasuryRepository struct {
	mock.Mock
}

func (m *MockTreasuryRepository) GetOrCreate(ctx context.Context) (*entity.Treasury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) GetForUpdate(ctx context.Context) (*entity.Treasury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) Save(ctx context.Context, treasury *entity.Treasury) error {
	args := m.Called(ctx, treasury)
	return args.Error(0)
}
