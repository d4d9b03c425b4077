package ui

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errEmptyName     = errors.New("name must not be empty")
	errBadAmount     = errors.New("enter a valid amount")
	errNotPositive   = errors.New("amount must be greater than zero")
	errNegativeValue = errors.New("amount must not be negative")
)

// parseAmount accepts a decimal string, tolerating a leading currency sign
// and thousands separators, and requires a non-negative value. The core does
// not validate input; this is the view's gate.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, errBadAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errBadAmount
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativeValue
	}
	return d, nil
}

// parsePositiveAmount is parseAmount with a strictly-positive requirement,
// used for goal targets and income/savings deposits.
func parsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := parseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, errNotPositive
	}
	return d, nil
}

func parseName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyName
	}
	return s, nil
}

func formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
