package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettingsID is the fixed primary key of the singleton settings row
const CompanySettingsID uint64 = 1

// DefaultTaxRate is the rate the settings singleton is lazily created with
var DefaultTaxRate = decimal.NewFromInt(10)

// CompanySettings holds the company-wide default withholding rate applied when
// an employee has no custom override
type CompanySettings struct {
	ID             uint64
	DefaultTaxRate decimal.Decimal
	UpdatedAt      time.Time
}

// NewCompanySettings creates the singleton settings row with the fixed default
func NewCompanySettings(now time.Time) *CompanySettings {
	return &CompanySettings{
		ID:             CompanySettingsID,
		DefaultTaxRate: DefaultTaxRate,
		UpdatedAt:      now,
	}
}

// SetDefaultTaxRate updates the company default rate, enforcing [0,100]
func (s *CompanySettings) SetDefaultTaxRate(rate decimal.Decimal, now time.Time) error {
	if err := ValidateTaxRate(rate); err != nil {
		return err
	}
	s.DefaultTaxRate = rate
	s.UpdatedAt = now
	return nil
}
