package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no rounding needed", "100.25", "100.25"},
		{"rounds half to even down", "0.125", "0.12"},
		{"rounds half to even up", "0.135", "0.14"},
		{"rounds up past half", "2.675999", "2.68"},
		{"negative half to even", "-0.125", "-0.12"},
		{"integer untouched", "5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, RoundMoney(input).Equal(expected),
				"RoundMoney(%s) = %s, want %s", tt.input, RoundMoney(input), expected)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "100.00", FormatMoney(decimal.NewFromInt(100)))
	assert.Equal(t, "0.50", FormatMoney(decimal.RequireFromString("0.5")))
	assert.Equal(t, "1234.56", FormatMoney(decimal.RequireFromString("1234.56")))
}

func TestParseAmount(t *testing.T) {
	t.Run("accepts valid amounts", func(t *testing.T) {
		for _, value := range []string{"0", "0.00", "100", "100.5", "100.55"} {
			_, err := ParseAmount(value)
			assert.NoError(t, err, "value %q", value)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, value := range []string{"", "abc", "10.0.0", "1e"} {
			_, err := ParseAmount(value)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, "value %q", value)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := ParseAmount("-1.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		_, err := ParseAmount("10.001")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("accepts positive", func(t *testing.T) {
		amount, err := ParsePositiveAmount("42.50")
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.RequireFromString("42.50")))
	})
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rate     string
		expected string
	}{
		{"ten percent of 1000", "1000.00", "10", "100.00"},
		{"twenty percent of 100", "100.00", "20", "20.00"},
		{"zero rate", "100.00", "0", "0.00"},
		{"full rate", "100.00", "100", "100.00"},
		{"rounds half to even", "35.25", "15", "5.29"},
		{"small amount", "0.01", "10", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentOf(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"PercentOf(%s, %s) = %s, want %s", tt.amount, tt.rate, got, tt.expected)
		})
	}
}

func TestPercentOfNetPlusTaxEqualsGross(t *testing.T) {
	// Net is derived as gross minus rounded tax, so the identity holds exactly
	gross := decimal.RequireFromString("333.33")
	tax := PercentOf(gross, decimal.NewFromInt(15))
	net := gross.Sub(tax)
	assert.True(t, net.Add(tax).Equal(gross))
}

func TestValidateTaxRate(t *testing.T) {
	assert.NoError(t, ValidateTaxRate(decimal.Zero))
	assert.NoError(t, ValidateTaxRate(decimal.NewFromInt(100)))
	assert.NoError(t, ValidateTaxRate(decimal.RequireFromString("17.5")))
	assert.ErrorIs(t, ValidateTaxRate(decimal.RequireFromString("-0.01")), errs.ErrInvalidTaxRate)
	assert.ErrorIs(t, ValidateTaxRate(decimal.RequireFromString("100.01")), errs.ErrInvalidTaxRate)
}
