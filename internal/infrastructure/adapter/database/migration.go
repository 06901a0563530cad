package database

import (
	"errors"

	"gorm.io/gorm"

	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.0.0"

// Migrator manages schema migrations
type Migrator struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrator creates a migration manager
func NewMigrator(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Migrator {
	return &Migrator{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll applies the schema and records the version
func (m *Migrator) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		return err
	}

	current, err := m.currentVersion()
	if err != nil {
		return err
	}
	if current == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": current,
		})
		return nil
	}

	if err := m.db.AutoMigrate(
		&model.Employee{},
		&model.Transaction{},
		&model.Bonus{},
		&model.Treasury{},
		&model.CompanySettings{},
		&model.TaxSlab{},
		&model.User{},
	); err != nil {
		m.logger.Error("Failed to migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	record := model.SchemaVersion{
		Version:   CurrentSchemaVersion,
		AppliedAt: m.timeProvider.Now(),
	}
	if err := m.db.Create(&record).Error; err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

func (m *Migrator) currentVersion() (string, error) {
	var record model.SchemaVersion
	err := m.db.Order("id DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return record.Version, nil
}
