package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user input into a decimal. Surrounding whitespace is
// ignored; empty input, NaN, infinities and non-numeric text are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, ErrEmptyField
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, ErrUnparseableAmount
	}

	return amount, nil
}
