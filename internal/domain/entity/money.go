package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/corepay/payroll-ledger/internal/domain/error"
)

// MoneyDecimalPlaces defines the number of fractional digits stored for money amounts
const MoneyDecimalPlaces = 2

var oneHundred = decimal.NewFromInt(100)

// RoundMoney applies the ledger-wide rounding rule (bankers rounding to two
// fractional digits). Every computed amount that feeds balance arithmetic must
// go through this function so tax and net never drift from stored values.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(MoneyDecimalPlaces)
}

// FormatMoney renders an amount with exactly two fractional digits
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyDecimalPlaces)
}

// ParseAmount parses a decimal amount string and validates it as a monetary value.
// Rejects malformed input, negative values and more than two fractional digits.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if amount.Exponent() < -MoneyDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MoneyDecimalPlaces)
	}
	return amount, nil
}

// ParsePositiveAmount parses an amount and additionally rejects zero
func ParsePositiveAmount(value string) (decimal.Decimal, error) {
	amount, err := ParseAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0", errs.ErrInvalidAmount)
	}
	return amount, nil
}

// PercentOf computes amount * rate / 100 under the ledger rounding rule
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(rate).Div(oneHundred))
}

// ValidateTaxRate checks a percentage rate is within [0,100]
func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return errs.ErrInvalidTaxRate
	}
	return nil
}
