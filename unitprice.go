package kurashi

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput rejects a price entry before it reaches the store:
// negative price, or non-positive quantity or volume.
var ErrInvalidInput = errors.New("invalid price input")

// one is the default for a blank quantity or volume.
var one = decimal.NewFromInt(1)

// UnitPrice computes the comparable per-unit cost of a price entry:
// price / (quantity * volume), rounded to 2 decimal places.
//
// The rounded value is the one persisted and the one displayed. Using a
// single rounding rule everywhere keeps rankings free of inversions that
// a display-only rounding would introduce.
//
// A zero price is valid (freebies happen); a negative price, or a
// quantity or volume that is not strictly positive, is rejected with
// ErrInvalidInput and nothing must be persisted.
func UnitPrice(price Yen, quantity, volume decimal.Decimal) (decimal.Decimal, error) {
	if price < 0 {
		return decimal.Zero, fmt.Errorf("%w: price %d must not be negative", ErrInvalidInput, price)
	}
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quantity %s must be positive", ErrInvalidInput, quantity)
	}
	if !volume.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: volume %s must be positive", ErrInvalidInput, volume)
	}
	return price.Decimal().Div(quantity.Mul(volume)).Round(2), nil
}

// orOne substitutes 1 for a blank (zero-value) quantity or volume, the
// same default the entry form applies to an empty field.
func orOne(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return one
	}
	return d
}
