package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveAmount is returned when constructing an Amount from a value
// that is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// Amount is a strictly-positive monetary quantity. It carries no currency;
// all accounts share one implicit unit. The stored decimal keeps exactly the
// precision present in the input.
type Amount struct {
	value decimal.Decimal
}

// NewAmount constructs an Amount, failing unless d is strictly greater
// than zero.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, fmt.Errorf("%w: %s", ErrNonPositiveAmount, d)
	}
	return Amount{value: d}, nil
}

// ParseAmount constructs an Amount from its decimal string form.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return NewAmount(d)
}

// Value returns the exact stored decimal.
func (a Amount) Value() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}
