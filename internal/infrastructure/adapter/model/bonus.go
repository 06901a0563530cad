package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bonus represents the database model for bonus records. Amount is the gross
// value; the net effect lives in the companion transaction row.
type Bonus struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	EmployeeID uint64 `gorm:"not null;index"`

	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason string          `gorm:"size:255"`
	TxHash string          `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Bonus
func (Bonus) TableName() string {
	return "bonuses"
}
