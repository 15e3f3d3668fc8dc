package kurashi

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Yen is a monetary amount in whole Japanese yen, the smallest currency unit.
type Yen int64

// String formats the amount the way a receipt would, e.g. "¥1,980".
func (y Yen) String() string {
	return money.New(int64(y), money.JPY).Display()
}

// Decimal returns the amount as a decimal for arithmetic.
func (y Yen) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(y)) }

// consumption tax rate applied by the tax helpers.
var taxRate = decimal.NewFromFloat(1.1)

// TaxIncluded converts a tax-free price to its tax-included price,
// rounded to the nearest yen.
func TaxIncluded(price Yen) Yen {
	return Yen(price.Decimal().Mul(taxRate).Round(0).IntPart())
}

// TaxExcluded converts a tax-included price back to its tax-free price,
// rounded to the nearest yen.
func TaxExcluded(price Yen) Yen {
	return Yen(price.Decimal().Div(taxRate).Round(0).IntPart())
}
