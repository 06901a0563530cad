package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/model"
)

// SettingsRepository implements the settings persistence port using GORM
type SettingsRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *SettingsRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetOrCreate returns the singleton settings row, creating it with the fixed
// default rate on first access. Same guarded-upsert discipline as the
// treasury: insert on the fixed key ignoring conflicts, then read.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*entity.CompanySettings, error) {
	var m model.CompanySettings
	result := r.db.WithContext(ctx).First(&m, entity.CompanySettingsID)
	if result.Error == nil {
		return settingsToEntity(&m), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, r.wrapError("getting company settings", result.Error)
	}

	fresh := entity.NewCompanySettings(r.timeProvider.Now())
	m = model.CompanySettings{
		ID:             fresh.ID,
		DefaultTaxRate: fresh.DefaultTaxRate,
		UpdatedAt:      fresh.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error; err != nil && !r.errorClassifier.IsDuplicateKeyError(err) {
		return nil, r.wrapError("creating company settings", err)
	}

	result = r.db.WithContext(ctx).First(&m, entity.CompanySettingsID)
	if result.Error != nil {
		return nil, r.wrapError("re-reading company settings", result.Error)
	}
	return settingsToEntity(&m), nil
}

// Save persists an updated default tax rate
func (r *SettingsRepository) Save(ctx context.Context, settings *entity.CompanySettings) error {
	result := r.db.WithContext(ctx).Model(&model.CompanySettings{}).
		Where("id = ?", settings.ID).
		Updates(map[string]any{
			"default_tax_rate": settings.DefaultTaxRate,
			"updated_at":       settings.UpdatedAt,
		})
	if result.Error != nil {
		return r.wrapError("saving company settings", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.wrapError("saving company settings", gorm.ErrRecordNotFound)
	}
	return nil
}

func settingsToEntity(m *model.CompanySettings) *entity.CompanySettings {
	return &entity.CompanySettings{
		ID:             m.ID,
		DefaultTaxRate: m.DefaultTaxRate,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TaxSlabRepository implements the tax slab persistence port using GORM
type TaxSlabRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTaxSlabRepository creates a new TaxSlabRepository instance
func NewTaxSlabRepository(db *gorm.DB, logger coreport.Logger) *TaxSlabRepository {
	return &TaxSlabRepository{
		db:     db,
		logger: logger,
	}
}

func taxSlabToEntity(m *model.TaxSlab) *entity.TaxSlab {
	slab := &entity.TaxSlab{
		ID:        m.ID,
		MinIncome: m.MinIncome,
		TaxRate:   m.TaxRate,
		CreatedAt: m.CreatedAt,
	}
	if m.MaxIncome != nil {
		maxIncome := *m.MaxIncome
		slab.MaxIncome = &maxIncome
	}
	return slab
}

// List returns all tax slabs ordered by minimum income
func (r *TaxSlabRepository) List(ctx context.Context) ([]*entity.TaxSlab, error) {
	var models []model.TaxSlab
	result := r.db.WithContext(ctx).Order("min_income ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	slabs := make([]*entity.TaxSlab, 0, len(models))
	for i := range models {
		slabs = append(slabs, taxSlabToEntity(&models[i]))
	}
	return slabs, nil
}

// Create persists a new tax slab
func (r *TaxSlabRepository) Create(ctx context.Context, slab *entity.TaxSlab) error {
	m := model.TaxSlab{
		MinIncome: slab.MinIncome,
		TaxRate:   slab.TaxRate,
		CreatedAt: slab.CreatedAt,
	}
	if slab.MaxIncome != nil {
		maxIncome := *slab.MaxIncome
		m.MaxIncome = &maxIncome
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	slab.ID = m.ID
	return nil
}

// Delete removes a slab by ID
func (r *TaxSlabRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.TaxSlab{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTaxSlabNotFound
	}
	return nil
}
