package dto

import (
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// UpdateSettingsRequest changes the company default withholding rate
type UpdateSettingsRequest struct {
	DefaultTaxRate string `json:"defaultTaxRate" binding:"required"`
}

// SettingsResponse represents company settings in API responses
type SettingsResponse struct {
	DefaultTaxRate string    `json:"defaultTaxRate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewSettingsResponse maps domain settings to the API shape
func NewSettingsResponse(settings *entity.CompanySettings) SettingsResponse {
	return SettingsResponse{
		DefaultTaxRate: settings.DefaultTaxRate.String(),
		UpdatedAt:      settings.UpdatedAt,
	}
}

// CreateTaxSlabRequest adds a bracket to the progressive tax table
type CreateTaxSlabRequest struct {
	MinIncome string  `json:"minIncome" binding:"required"`
	MaxIncome *string `json:"maxIncome"`
	TaxRate   string  `json:"taxRate" binding:"required"`
}

// TaxSlabResponse represents one tax bracket in API responses
type TaxSlabResponse struct {
	ID        uint64  `json:"id"`
	MinIncome string  `json:"minIncome"`
	MaxIncome *string `json:"maxIncome,omitempty"`
	TaxRate   string  `json:"taxRate"`
}

// NewTaxSlabResponse maps a domain tax slab to its API shape
func NewTaxSlabResponse(slab *entity.TaxSlab) TaxSlabResponse {
	resp := TaxSlabResponse{
		ID:        slab.ID,
		MinIncome: entity.FormatMoney(slab.MinIncome),
		TaxRate:   slab.TaxRate.String(),
	}
	if slab.MaxIncome != nil {
		max := entity.FormatMoney(*slab.MaxIncome)
		resp.MaxIncome = &max
	}
	return resp
}
