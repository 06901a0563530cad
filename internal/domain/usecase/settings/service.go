package settings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	"github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Service manages the company-wide default tax rate and the progressive tax
// slab table
type Service struct {
	settingsRepo persistence.SettingsRepository
	slabRepo     persistence.TaxSlabRepository
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewService creates a new settings service
func NewService(
	settingsRepo persistence.SettingsRepository,
	slabRepo persistence.TaxSlabRepository,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		slabRepo:     slabRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Get returns the company settings, creating the row on first access
func (s *Service) Get(ctx context.Context) (*entity.CompanySettings, error) {
	return s.settingsRepo.GetOrCreate(ctx)
}

// SetDefaultTaxRate updates the company default withholding rate
func (s *Service) SetDefaultTaxRate(ctx context.Context, rate decimal.Decimal) (*entity.CompanySettings, error) {
	companySettings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if err := companySettings.SetDefaultTaxRate(rate, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, companySettings); err != nil {
		return nil, err
	}

	s.logger.Info("Default tax rate updated", map[string]any{
		"rate": companySettings.DefaultTaxRate.String(),
	})
	return companySettings, nil
}

// ListSlabs returns all configured tax brackets
func (s *Service) ListSlabs(ctx context.Context) ([]*entity.TaxSlab, error) {
	return s.slabRepo.List(ctx)
}

// CreateSlab adds a tax bracket to the table
func (s *Service) CreateSlab(ctx context.Context, minIncome decimal.Decimal, maxIncome *decimal.Decimal, rate decimal.Decimal) (*entity.TaxSlab, error) {
	slab, err := entity.NewTaxSlab(minIncome, maxIncome, rate, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := s.slabRepo.Create(ctx, slab); err != nil {
		return nil, err
	}
	return slab, nil
}

// DeleteSlab removes a tax bracket by ID
func (s *Service) DeleteSlab(ctx context.Context, id uint64) error {
	return s.slabRepo.Delete(ctx, id)
}
