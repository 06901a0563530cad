package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents the database model for employees
type Employee struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null;size:100"`
	Email         string `gorm:"uniqueIndex;not null;size:150"`
	Role          string `gorm:"not null;size:50;default:employee"`
	WalletAddress string `gorm:"size:255"`

	IsStreaming bool `gorm:"not null;default:false"`

	UseCustomTax  bool             `gorm:"not null;default:false"`
	CustomTaxRate *decimal.Decimal `gorm:"type:numeric(5,2)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Transactions []Transaction `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Bonuses      []Bonus       `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
