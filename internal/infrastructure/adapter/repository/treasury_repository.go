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

// TreasuryRepository implements the treasury persistence port using GORM
type TreasuryRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTreasuryRepository creates a new TreasuryRepository instance
func NewTreasuryRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TreasuryRepository {
	return &TreasuryRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func treasuryToEntity(m *model.Treasury) *entity.Treasury {
	t := &entity.Treasury{
		ID:             m.ID,
		TotalBalance:   m.TotalBalance,
		OnchainBalance: m.OnchainBalance,
		LastTxHash:     m.LastTxHash,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.LastSyncedAt != nil {
		at := *m.LastSyncedAt
		t.LastSyncedAt = &at
	}
	return t
}

func (r *TreasuryRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetOrCreate returns the singleton treasury row, creating it with zero
// balances on first access. The insert targets the fixed primary key and
// ignores conflicts, so concurrent first accesses cannot produce a duplicate
// row: the loser of the race falls through to the read.
func (r *TreasuryRepository) GetOrCreate(ctx context.Context) (*entity.Treasury, error) {
	var m model.Treasury
	result := r.db.WithContext(ctx).First(&m, entity.TreasuryID)
	if result.Error == nil {
		return treasuryToEntity(&m), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, r.wrapError("getting treasury", result.Error)
	}

	fresh := entity.NewTreasury(r.timeProvider.Now())
	m = model.Treasury{
		ID:             fresh.ID,
		TotalBalance:   fresh.TotalBalance,
		OnchainBalance: fresh.OnchainBalance,
		UpdatedAt:      fresh.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error; err != nil && !r.errorClassifier.IsDuplicateKeyError(err) {
		return nil, r.wrapError("creating treasury", err)
	}

	result = r.db.WithContext(ctx).First(&m, entity.TreasuryID)
	if result.Error != nil {
		return nil, r.wrapError("re-reading treasury", result.Error)
	}

	r.logger.Info("Treasury singleton initialized", map[string]any{
		"balance": entity.FormatMoney(m.TotalBalance),
	})
	return treasuryToEntity(&m), nil
}

// GetForUpdate returns the treasury row under an exclusive row lock. Callers
// must run inside an open transaction: the lock is released at commit or
// rollback and is what serializes concurrent balance mutations.
func (r *TreasuryRepository) GetForUpdate(ctx context.Context) (*entity.Treasury, error) {
	var m model.Treasury
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, entity.TreasuryID)
	if result.Error != nil {
		if r.errorClassifier.IsLockError(result.Error) {
			r.logger.Warn("Treasury row locked by another operation", map[string]any{
				"error": result.Error.Error(),
			})
		}
		return nil, r.wrapError("locking treasury", result.Error)
	}
	return treasuryToEntity(&m), nil
}

// Save persists a mutated treasury balance
func (r *TreasuryRepository) Save(ctx context.Context, treasury *entity.Treasury) error {
	updates := map[string]any{
		"total_balance":   treasury.TotalBalance,
		"onchain_balance": treasury.OnchainBalance,
		"last_tx_hash":    treasury.LastTxHash,
		"updated_at":      treasury.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Model(&model.Treasury{}).
		Where("id = ?", treasury.ID).
		Updates(updates)
	if result.Error != nil {
		return r.wrapError("saving treasury", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.wrapError("saving treasury", gorm.ErrRecordNotFound)
	}
	return nil
}
