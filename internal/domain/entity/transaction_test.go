package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))

	t.Run("stores rounded amounts in UTC", func(t *testing.T) {
		txn, err := NewTransaction(1,
			decimal.RequireFromString("80.005"), decimal.RequireFromString("19.995"),
			"Salary payment", now)
		require.NoError(t, err)

		assert.Equal(t, "80.00", FormatMoney(txn.NetAmount))
		assert.Equal(t, "20.00", FormatMoney(txn.TaxAmount))
		assert.Equal(t, time.UTC, txn.CreatedAt.Location())
	})

	t.Run("gross reconstructs net plus tax", func(t *testing.T) {
		txn, err := NewTransaction(1,
			decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"),
			"Salary payment", now)
		require.NoError(t, err)
		assert.Equal(t, "100.00", FormatMoney(txn.Gross()))
	})

	t.Run("rejects a zero employee ID", func(t *testing.T) {
		_, err := NewTransaction(0, decimal.NewFromInt(1), decimal.Zero, "", now)
		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewTransaction(1, decimal.NewFromInt(-1), decimal.Zero, "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewTransaction(1, decimal.Zero, decimal.NewFromInt(-1), "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("allows a zero net with full withholding", func(t *testing.T) {
		txn, err := NewTransaction(1, decimal.Zero, decimal.NewFromInt(100), "Salary payment", now)
		require.NoError(t, err)
		assert.True(t, txn.NetAmount.IsZero())
	})
}

func TestNewBonus(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

	t.Run("records the gross amount and reason", func(t *testing.T) {
		bonus, err := NewBonus(2, decimal.RequireFromString("50.00"), "Q1 performance", now)
		require.NoError(t, err)

		assert.Equal(t, "50.00", FormatMoney(bonus.Amount))
		assert.Equal(t, "Q1 performance", bonus.Reason)
		assert.Equal(t, "Bonus: Q1 performance", bonus.Description())
	})

	t.Run("rejects a non-positive gross", func(t *testing.T) {
		_, err := NewBonus(2, decimal.Zero, "x", now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rejects a zero employee ID", func(t *testing.T) {
		_, err := NewBonus(0, decimal.NewFromInt(10), "x", now)
		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
	})
}
