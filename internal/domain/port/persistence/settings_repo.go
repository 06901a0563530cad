package persistence

import (
	"context"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// SettingsRepository manages the singleton company settings row
type SettingsRepository interface {
	// GetOrCreate returns the settings row, creating it with the fixed
	// default tax rate on first access (idempotent upsert on the fixed key)
	GetOrCreate(ctx context.Context) (*entity.CompanySettings, error)

	// Save persists an updated default tax rate
	Save(ctx context.Context, settings *entity.CompanySettings) error
}

// TaxSlabRepository manages the progressive tax table. CRUD only; no
// calculation path consumes these rows.
type TaxSlabRepository interface {
	List(ctx context.Context) ([]*entity.TaxSlab, error)
	Create(ctx context.Context, slab *entity.TaxSlab) error

	// Delete removes a slab by ID
	//
	// Possible errors:
	// - ErrTaxSlabNotFound: If the slab doesn't exist
	Delete(ctx context.Context, id uint64) error
}
