package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// TreasuryID is the fixed primary key of the singleton treasury row
const TreasuryID uint64 = 1

// Treasury holds the company-wide spendable balance all payouts are debited
// from. Exactly one row exists; the on-chain balance is a static placeholder
// for future settlement and is never mutated by the ledger.
type Treasury struct {
	ID uint64

	TotalBalance   decimal.Decimal
	OnchainBalance decimal.Decimal

	LastTxHash   string
	LastSyncedAt *time.Time

	UpdatedAt time.Time
}

// NewTreasury creates the singleton treasury with zero balances
func NewTreasury(now time.Time) *Treasury {
	return &Treasury{
		ID:             TreasuryID,
		TotalBalance:   decimal.Zero,
		OnchainBalance: decimal.Zero,
		UpdatedAt:      now,
	}
}

// Deposit increases the spendable balance. Amount must be positive.
func (t *Treasury) Deposit(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	t.TotalBalance = RoundMoney(t.TotalBalance.Add(amount))
	t.UpdatedAt = now
	return nil
}

// Withdraw decreases the spendable balance. Fails with ErrInvalidAmount for
// non-positive amounts and ErrInsufficientFunds when the balance is too small.
func (t *Treasury) Withdraw(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	return t.debit(amount, now)
}

// DebitForPayout removes the net amount of a salary or bonus payment.
// The caller must hold the treasury row lock: the sufficient-funds check and
// the mutation here are only safe inside a serialized transaction.
func (t *Treasury) DebitForPayout(net decimal.Decimal, now time.Time) error {
	if net.IsNegative() {
		return errs.ErrInvalidAmount
	}
	return t.debit(net, now)
}

func (t *Treasury) debit(amount decimal.Decimal, now time.Time) error {
	if amount.GreaterThan(t.TotalBalance) {
		return errs.NewInsufficientFundsError(FormatMoney(amount), FormatMoney(t.TotalBalance))
	}
	t.TotalBalance = RoundMoney(t.TotalBalance.Sub(amount))
	t.UpdatedAt = now
	return nil
}
