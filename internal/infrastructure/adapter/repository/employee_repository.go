package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/model"
)

// EmployeeRepository implements the employee persistence port using GORM
type EmployeeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEmployeeRepository creates a new EmployeeRepository instance
func NewEmployeeRepository(db *gorm.DB, logger coreport.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func employeeToEntity(m *model.Employee) *entity.Employee {
	e := &entity.Employee{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Role:          m.Role,
		WalletAddress: m.WalletAddress,
		IsStreaming:   m.IsStreaming,
		UseCustomTax:  m.UseCustomTax,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CustomTaxRate != nil {
		rate := *m.CustomTaxRate
		e.CustomTaxRate = &rate
	}
	return e
}

func employeeToModel(e *entity.Employee) *model.Employee {
	m := &model.Employee{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Role:          e.Role,
		WalletAddress: e.WalletAddress,
		IsStreaming:   e.IsStreaming,
		UseCustomTax:  e.UseCustomTax,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.CustomTaxRate != nil {
		rate := *e.CustomTaxRate
		m.CustomTaxRate = &rate
	}
	return m
}

func (r *EmployeeRepository) handleDatabaseError(operation string, err error, employeeID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrEmployeeNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"employee_id": employeeID,
		"error":       err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id uint64) (*entity.Employee, error) {
	var m model.Employee
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting employee", result.Error, id)
	}
	return employeeToEntity(&m), nil
}

// GetByEmail retrieves the employee matching the login email
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var m model.Employee
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting employee by email", result.Error, 0)
	}
	return employeeToEntity(&m), nil
}

// List returns all employees ordered by ID
func (r *EmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var models []model.Employee
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing employees", result.Error, 0)
	}

	employees := make([]*entity.Employee, 0, len(models))
	for i := range models {
		employees = append(employees, employeeToEntity(&models[i]))
	}
	return employees, nil
}

// Create persists a new employee and assigns its ID
func (r *EmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	m := employeeToModel(employee)
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		return r.handleDatabaseError("creating employee", result.Error, 0)
	}

	employee.ID = m.ID
	return nil
}

// Update persists changes to an existing employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	updates := map[string]any{
		"name":           employee.Name,
		"email":          employee.Email,
		"role":           employee.Role,
		"wallet_address": employee.WalletAddress,
		"is_streaming":   employee.IsStreaming,
		"use_custom_tax": employee.UseCustomTax,
		"updated_at":     employee.UpdatedAt,
	}
	if employee.CustomTaxRate != nil {
		updates["custom_tax_rate"] = *employee.CustomTaxRate
	} else {
		updates["custom_tax_rate"] = nil
	}

	result := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", employee.ID).
		Updates(updates)
	if result.Error != nil {
		return r.handleDatabaseError("updating employee", result.Error, employee.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes an employee and its ledger rows. The dependents are removed
// explicitly so the cascade behaves identically on every dialect; the caller's
// unit of work makes the three deletes atomic.
func (r *EmployeeRepository) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Where("employee_id = ?", id).Delete(&model.Bonus{}).Error; err != nil {
		return r.handleDatabaseError("deleting employee bonuses", err, id)
	}
	if err := r.db.WithContext(ctx).Where("employee_id = ?", id).Delete(&model.Transaction{}).Error; err != nil {
		return r.handleDatabaseError("deleting employee transactions", err, id)
	}

	result := r.db.WithContext(ctx).Delete(&model.Employee{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting employee", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrEmployeeNotFound
	}
	return nil
}

// CountStreaming returns the number of employees with an active stream
func (r *EmployeeRepository) CountStreaming(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("is_streaming = ?", true).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting active streams", result.Error, 0)
	}
	return count, nil
}
