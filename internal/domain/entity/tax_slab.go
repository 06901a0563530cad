package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// TaxSlab is one bracket of a progressive tax table. The table is CRUD-managed
// but the flat-rate calculator never consults it; the shape exists so other
// subsystems can adopt it later.
type TaxSlab struct {
	ID        uint64
	MinIncome decimal.Decimal
	MaxIncome *decimal.Decimal // nil means open-ended
	TaxRate   decimal.Decimal
	CreatedAt time.Time
}

// NewTaxSlab creates a tax bracket. MaxIncome may be nil for the top bracket.
func NewTaxSlab(minIncome decimal.Decimal, maxIncome *decimal.Decimal, rate decimal.Decimal, now time.Time) (*TaxSlab, error) {
	if minIncome.IsNegative() {
		return nil, fmt.Errorf("%w: minimum income cannot be negative", errs.ErrInvalidAmount)
	}
	if maxIncome != nil && maxIncome.LessThanOrEqual(minIncome) {
		return nil, fmt.Errorf("%w: maximum income must exceed minimum income", errs.ErrInvalidAmount)
	}
	if err := ValidateTaxRate(rate); err != nil {
		return nil, err
	}

	slab := &TaxSlab{
		MinIncome: minIncome,
		TaxRate:   rate,
		CreatedAt: now,
	}
	if maxIncome != nil {
		m := *maxIncome
		slab.MaxIncome = &m
	}
	return slab, nil
}
