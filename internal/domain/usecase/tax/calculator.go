package tax

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Calculator computes withholding tax for a gross amount. Rate precedence:
// employee custom override, then the company default from the settings
// singleton, then the static fallback from configuration. Pure aside from the
// settings read; the same bankers rounding is applied wherever tax is computed
// since the result feeds directly into balance arithmetic.
type Calculator struct {
	settingsRepo persistence.SettingsRepository
	fallbackRate decimal.Decimal
	logger       coreport.Logger
}

// NewCalculator creates a tax calculator with the given static fallback rate
func NewCalculator(
	settingsRepo persistence.SettingsRepository,
	fallbackRate decimal.Decimal,
	logger coreport.Logger,
) *Calculator {
	return &Calculator{
		settingsRepo: settingsRepo,
		fallbackRate: fallbackRate,
		logger:       logger,
	}
}

// Calculate returns the tax to withhold from gross for the given employee.
// The caller guarantees gross is positive.
func (c *Calculator) Calculate(ctx context.Context, employee *entity.Employee, gross decimal.Decimal) (decimal.Decimal, error) {
	if employee == nil {
		return decimal.Zero, errs.ErrEmployeeNotFound
	}

	if rate, ok := employee.TaxOverride(); ok {
		if err := entity.ValidateTaxRate(rate); err != nil {
			return decimal.Zero, err
		}
		return entity.PercentOf(gross, rate), nil
	}

	rate := c.fallbackRate
	settings, err := c.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		// Settings singleton unavailable: fall back to the configured rate
		// rather than failing the payout
		c.logger.Warn("Company settings unavailable, using fallback tax rate", map[string]any{
			"fallback_rate": rate.String(),
			"error":         err.Error(),
		})
	} else {
		rate = settings.DefaultTaxRate
	}

	if err := entity.ValidateTaxRate(rate); err != nil {
		return decimal.Zero, err
	}

	return entity.PercentOf(gross, rate), nil
}
