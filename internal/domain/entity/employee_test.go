package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

func TestNewEmployee(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates with streaming paused and no override", func(t *testing.T) {
		employee, err := NewEmployee("Alice Smith", "alice@corepay.io", "engineer", now)
		require.NoError(t, err)

		assert.Equal(t, "Alice Smith", employee.Name)
		assert.Equal(t, "alice@corepay.io", employee.Email)
		assert.Equal(t, "engineer", employee.Role)
		assert.False(t, employee.IsStreaming)
		assert.False(t, employee.UseCustomTax)
		assert.Nil(t, employee.CustomTaxRate)
	})

	t.Run("defaults the role", func(t *testing.T) {
		employee, err := NewEmployee("Bob", "bob@corepay.io", "", now)
		require.NoError(t, err)
		assert.Equal(t, DefaultEmployeeRole, employee.Role)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		employee, err := NewEmployee("  Carol  ", " carol@corepay.io ", "", now)
		require.NoError(t, err)
		assert.Equal(t, "Carol", employee.Name)
		assert.Equal(t, "carol@corepay.io", employee.Email)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := NewEmployee("   ", "x@corepay.io", "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewEmployee("Dave", "not-an-email", "", now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestEmployeeSetTaxOverride(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	newEmployee := func(t *testing.T) *Employee {
		employee, err := NewEmployee("Alice", "alice@corepay.io", "", now)
		require.NoError(t, err)
		return employee
	}

	t.Run("enables the override", func(t *testing.T) {
		employee := newEmployee(t)
		rate := decimal.NewFromInt(20)

		require.NoError(t, employee.SetTaxOverride(true, &rate, now))

		got, ok := employee.TaxOverride()
		require.True(t, ok)
		assert.True(t, got.Equal(rate))
	})

	t.Run("requires a rate when enabling", func(t *testing.T) {
		employee := newEmployee(t)
		assert.ErrorIs(t, employee.SetTaxOverride(true, nil, now), errs.ErrInvalidTaxRate)
	})

	t.Run("rejects an out-of-range rate", func(t *testing.T) {
		employee := newEmployee(t)
		rate := decimal.NewFromInt(101)
		assert.ErrorIs(t, employee.SetTaxOverride(true, &rate, now), errs.ErrInvalidTaxRate)
	})

	t.Run("disabling clears the stored rate", func(t *testing.T) {
		employee := newEmployee(t)
		rate := decimal.NewFromInt(20)
		require.NoError(t, employee.SetTaxOverride(true, &rate, now))

		require.NoError(t, employee.SetTaxOverride(false, nil, now))

		assert.False(t, employee.UseCustomTax)
		assert.Nil(t, employee.CustomTaxRate)
		_, ok := employee.TaxOverride()
		assert.False(t, ok)
	})
}

func TestEmployeeStreamingTransitions(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	employee, err := NewEmployee("Alice", "alice@corepay.io", "", created)
	require.NoError(t, err)

	employee.StartStreaming(later)
	assert.True(t, employee.IsStreaming)
	assert.Equal(t, later, employee.UpdatedAt)

	// Starting again is a no-op and doesn't touch UpdatedAt
	evenLater := later.Add(time.Hour)
	employee.StartStreaming(evenLater)
	assert.True(t, employee.IsStreaming)
	assert.Equal(t, later, employee.UpdatedAt)

	employee.PauseStreaming(evenLater)
	assert.False(t, employee.IsStreaming)
	assert.Equal(t, evenLater, employee.UpdatedAt)

	// Pausing an already-paused stream is also a no-op
	employee.PauseStreaming(evenLater.Add(time.Hour))
	assert.Equal(t, evenLater, employee.UpdatedAt)
}
