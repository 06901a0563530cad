package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	EmployeeID uint64 `gorm:"not null;index"`

	NetAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
