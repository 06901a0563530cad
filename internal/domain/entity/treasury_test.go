package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

func TestNewTreasury(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	treasury := NewTreasury(now)

	assert.Equal(t, TreasuryID, treasury.ID)
	assert.True(t, treasury.TotalBalance.IsZero())
	assert.True(t, treasury.OnchainBalance.IsZero())
	assert.Equal(t, now, treasury.UpdatedAt)
}

func TestTreasuryDeposit(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("adds to the balance", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.RequireFromString("1000.00"), now))
		require.NoError(t, treasury.Deposit(decimal.RequireFromString("0.50"), now))
		assert.Equal(t, "1000.50", FormatMoney(treasury.TotalBalance))
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		treasury := NewTreasury(now)
		assert.ErrorIs(t, treasury.Deposit(decimal.Zero, now), errs.ErrInvalidAmount)
		assert.ErrorIs(t, treasury.Deposit(decimal.NewFromInt(-5), now), errs.ErrInvalidAmount)
		assert.True(t, treasury.TotalBalance.IsZero())
	})
}

func TestTreasuryWithdraw(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("removes from the balance", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.NewFromInt(100), now))
		require.NoError(t, treasury.Withdraw(decimal.RequireFromString("40.25"), now))
		assert.Equal(t, "59.75", FormatMoney(treasury.TotalBalance))
	})

	t.Run("allows withdrawing the exact balance", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.NewFromInt(100), now))
		require.NoError(t, treasury.Withdraw(decimal.NewFromInt(100), now))
		assert.True(t, treasury.TotalBalance.IsZero())
	})

	t.Run("fails when balance is too small", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.NewFromInt(50), now))

		err := treasury.Withdraw(decimal.RequireFromString("50.01"), now)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		// Balance unchanged after the rejected debit
		assert.Equal(t, "50.00", FormatMoney(treasury.TotalBalance))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		treasury := NewTreasury(now)
		assert.ErrorIs(t, treasury.Withdraw(decimal.Zero, now), errs.ErrInvalidAmount)
	})
}

func TestTreasuryDebitForPayout(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("debits the net amount", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.NewFromInt(1000), now))
		require.NoError(t, treasury.DebitForPayout(decimal.RequireFromString("80.00"), now))
		assert.Equal(t, "920.00", FormatMoney(treasury.TotalBalance))
	})

	t.Run("allows a zero net debit", func(t *testing.T) {
		// A 100% tax rate produces net zero; the payout is still recorded
		treasury := NewTreasury(now)
		require.NoError(t, treasury.DebitForPayout(decimal.Zero, now))
		assert.True(t, treasury.TotalBalance.IsZero())
	})

	t.Run("fails with detail when funds are insufficient", func(t *testing.T) {
		treasury := NewTreasury(now)
		require.NoError(t, treasury.Deposit(decimal.NewFromInt(50), now))

		err := treasury.DebitForPayout(decimal.RequireFromString("90.00"), now)
		require.Error(t, err)
		assert.True(t, errs.IsInsufficientFundsError(err))

		var detail *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "90.00", detail.Requested)
		assert.Equal(t, "50.00", detail.Balance)
	})

	t.Run("rejects negative net", func(t *testing.T) {
		treasury := NewTreasury(now)
		assert.ErrorIs(t, treasury.DebitForPayout(decimal.NewFromInt(-1), now), errs.ErrInvalidAmount)
	})
}
