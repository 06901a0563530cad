package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// Bonus records the gross amount and reason of a discretionary payment. A bonus
// is always paired with exactly one Transaction carrying its net effect on the
// treasury; the two are created in the same atomic unit.
type Bonus struct {
	ID         uint64
	EmployeeID uint64

	Amount decimal.Decimal // gross
	Reason string

	// Settlement hash, reserved for future on-chain payout
	TxHash string

	CreatedAt time.Time
}

// NewBonus creates a bonus record for the given gross amount
func NewBonus(employeeID uint64, gross decimal.Decimal, reason string, now time.Time) (*Bonus, error) {
	if employeeID == 0 {
		return nil, errs.ErrEmployeeNotFound
	}
	if !gross.IsPositive() {
		return nil, fmt.Errorf("%w: bonus must be positive", errs.ErrInvalidAmount)
	}

	return &Bonus{
		EmployeeID: employeeID,
		Amount:     RoundMoney(gross),
		Reason:     reason,
		CreatedAt:  now.UTC(),
	}, nil
}

// Description synthesizes the ledger description for the companion transaction
func (b *Bonus) Description() string {
	return "Bonus: " + b.Reason
}
