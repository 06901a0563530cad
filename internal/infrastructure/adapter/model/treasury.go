package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Treasury represents the database model for the singleton treasury row
type Treasury struct {
	ID uint64 `gorm:"primaryKey"`

	TotalBalance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OnchainBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	LastTxHash   string `gorm:"size:255"`
	LastSyncedAt *time.Time

	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Treasury
func (Treasury) TableName() string {
	return "treasury"
}
