package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// MockSettingsRepository is a mock implementation of the SettingsRepository port
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context) (*entity.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CompanySettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *entity.CompanySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockTaxSlabRepository is a mock implementation of the TaxSlabRepository port
type MockTaxSlabRepository struct {
	mock.Mock
}

func (m *MockTaxSlabRepository) List(ctx context.Context) ([]*entity.TaxSlab, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TaxSlab), args.Error(1)
}

func (m *MockTaxSlabRepository) Create(ctx context.Context, slab *entity.TaxSlab) error {
	args := m.Called(ctx, slab)
	return args.Error(0)
}

func (m *MockTaxSlabRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
