package domain

import (
	"math"

	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places shown for dollar amounts.
const MoneyPlaces = 2

// AmountFromFloat converts a float dollar amount into a decimal.
// NaN, infinities and negative values are rejected.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, apperror.ErrInvalidAmount("must be a finite number")
	}
	d := decimal.NewFromFloat(f)
	if err := ValidateAmount("amount", d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ParseAmount parses a textual dollar amount such as "1000" or "12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidAmount("not a number")
	}
	if err := ValidateAmount("amount", d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateAmount rejects negative amounts. name is used in the message.
func ValidateAmount(name string, d decimal.Decimal) error {
	if d.IsNegative() {
		return apperror.ErrInvalidAmount(name + " must not be negative")
	}
	return nil
}

// RoundMoney rounds to cents, half away from zero. For the non-negative
// amounts handled here that is round-half-up.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// FormatMoney renders d with exactly two decimals, e.g. "900.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}
