package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the ledger persistence port using GORM
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		NetAmount:   m.NetAmount,
		TaxAmount:   m.TaxAmount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *LedgerRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// CreateTransaction appends a ledger entry
func (r *LedgerRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	m := model.Transaction{
		EmployeeID:  transaction.EmployeeID,
		NetAmount:   transaction.NetAmount,
		TaxAmount:   transaction.TaxAmount,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.wrapError("creating transaction", err)
	}
	transaction.ID = m.ID
	return nil
}

// CreateBonus persists a bonus record
func (r *LedgerRepository) CreateBonus(ctx context.Context, bonus *entity.Bonus) error {
	m := model.Bonus{
		EmployeeID: bonus.EmployeeID,
		Amount:     bonus.Amount,
		Reason:     bonus.Reason,
		TxHash:     bonus.TxHash,
		CreatedAt:  bonus.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.wrapError("creating bonus", err)
	}
	bonus.ID = m.ID
	return nil
}

// ListByEmployee returns an employee's transactions, newest first
func (r *LedgerRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.wrapError("listing employee transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions, nil
}

// ListAll returns every transaction ordered by creation time ascending
func (r *LedgerRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.wrapError("listing transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions, nil
}

// HasHistory reports whether the employee owns any transactions or bonuses
func (r *LedgerRepository) HasHistory(ctx context.Context, employeeID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error; err != nil {
		return false, r.wrapError("counting employee transactions", err)
	}
	if count > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).Model(&model.Bonus{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error; err != nil {
		return false, r.wrapError("counting employee bonuses", err)
	}
	return count > 0, nil
}

func (r *LedgerRepository) sumColumn(ctx context.Context, column string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, r.wrapError("summing "+column, err)
	}
	return total, nil
}

// TotalNet sums all net amounts in the ledger
func (r *LedgerRepository) TotalNet(ctx context.Context) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "net_amount")
}

// TotalTax sums all withheld tax amounts in the ledger
func (r *LedgerRepository) TotalTax(ctx context.Context) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "tax_amount")
}

// NetTotalsByEmployee returns per-employee net sums, highest first, ties broken
// by employee ID ascending
func (r *LedgerRepository) NetTotalsByEmployee(ctx context.Context) ([]persistence.EmployeeNetTotal, error) {
	rows, err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("transactions.employee_id, employees.name, SUM(transactions.net_amount) AS total_net").
		Joins("JOIN employees ON employees.id = transactions.employee_id").
		Group("transactions.employee_id, employees.name").
		Order("total_net DESC, transactions.employee_id ASC").
		Rows()
	if err != nil {
		return nil, r.wrapError("ranking earners", err)
	}
	defer rows.Close()

	var totals []persistence.EmployeeNetTotal
	for rows.Next() {
		var row persistence.EmployeeNetTotal
		if err := rows.Scan(&row.EmployeeID, &row.Name, &row.TotalNet); err != nil {
			return nil, r.wrapError("scanning earner row", err)
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrapError("ranking earners", err)
	}
	return totals, nil
}
