package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettings represents the database model for the singleton settings row
type CompanySettings struct {
	ID             uint64          `gorm:"primaryKey"`
	DefaultTaxRate decimal.Decimal `gorm:"type:numeric(5,2);not null;default:10.00"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName specifies the table name for CompanySettings
func (CompanySettings) TableName() string {
	return "company_settings"
}

// TaxSlab represents the database model for progressive tax brackets
type TaxSlab struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement"`
	MinIncome decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	MaxIncome *decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxRate   decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	CreatedAt time.Time        `gorm:"not null"`
}

// TableName specifies the table name for TaxSlab
func (TaxSlab) TableName() string {
	return "tax_slabs"
}
