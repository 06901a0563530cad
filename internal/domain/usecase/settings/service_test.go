package settings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	mockcore "github.com/corepay/payroll-ledger/mocks/port/core"
	mockpersistence "github.com/corepay/payroll-ledger/mocks/port/persistence"
)

type serviceFixture struct {
	settingsRepo *mockpersistence.MockSettingsRepository
	slabRepo     *mockpersistence.MockTaxSlabRepository
	timeProvider *mockcore.MockTimeProvider
	service      *Service
	now          time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		settingsRepo: new(mockpersistence.MockSettingsRepository),
		slabRepo:     new(mockpersistence.MockTaxSlabRepository),
		timeProvider: new(mockcore.MockTimeProvider),
		now:          time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	f.timeProvider.On("Now").Return(f.now).Maybe()
	f.service = NewService(f.settingsRepo, f.slabRepo, f.timeProvider, mockcore.NoopLogger{})
	return f
}

func TestServiceSetDefaultTaxRate(t *testing.T) {
	t.Run("persists the new rate", func(t *testing.T) {
		f := newServiceFixture(t)
		companySettings := entity.NewCompanySettings(f.now.Add(-time.Hour))
		f.settingsRepo.On("GetOrCreate", mock.Anything).Return(companySettings, nil)
		f.settingsRepo.On("Save", mock.Anything, companySettings).Return(nil)

		updated, err := f.service.SetDefaultTaxRate(context.Background(), decimal.RequireFromString("15.00"))

		require.NoError(t, err)
		assert.Equal(t, "15.00", updated.DefaultTaxRate.StringFixed(2))
		assert.Equal(t, f.now, updated.UpdatedAt)
		f.settingsRepo.AssertExpectations(t)
	})

	t.Run("rejects an out-of-range rate without saving", func(t *testing.T) {
		f := newServiceFixture(t)
		companySettings := entity.NewCompanySettings(f.now)
		f.settingsRepo.On("GetOrCreate", mock.Anything).Return(companySettings, nil)

		_, err := f.service.SetDefaultTaxRate(context.Background(), decimal.NewFromInt(150))

		assert.ErrorIs(t, err, errs.ErrInvalidTaxRate)
		f.settingsRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestServiceCreateSlab(t *testing.T) {
	t.Run("stores a valid bracket", func(t *testing.T) {
		f := newServiceFixture(t)
		f.slabRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.TaxSlab")).Return(nil)

		max := decimal.RequireFromString("50000.00")
		slab, err := f.service.CreateSlab(context.Background(), decimal.Zero, &max, decimal.NewFromInt(20))

		require.NoError(t, err)
		assert.Equal(t, f.now, slab.CreatedAt)
		f.slabRepo.AssertExpectations(t)
	})

	t.Run("rejects an invalid bracket before touching the repository", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.CreateSlab(context.Background(), decimal.NewFromInt(-1), nil, decimal.NewFromInt(20))

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.slabRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
