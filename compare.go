package kurashi

import "github.com/shopspring/decimal"

// Product is one side of a two-item comparison. It is never persisted:
// the comparator is a live calculator, recomputed on every input change
// and discarded afterwards.
type Product struct {
	Name     string
	Price    decimal.Decimal
	Volume   decimal.Decimal
	Quantity decimal.Decimal
}

// unitPrice returns the per-unit cost of the product, or false when the
// product is incomplete: the comparator needs a positive price and
// volume before it has anything to say. A blank or zero quantity
// defaults to 1.
func (p Product) unitPrice() (decimal.Decimal, bool) {
	if !p.Price.IsPositive() || !p.Volume.IsPositive() {
		return decimal.Zero, false
	}
	qty := p.Quantity
	if !qty.IsPositive() {
		qty = one
	}
	return p.Price.Div(p.Volume.Mul(qty)), true
}

// Winner identifies the outcome of a comparison.
type Winner string

const (
	WinnerA Winner = "A"
	WinnerB Winner = "B"
	Draw    Winner = "draw"
)

// Comparison is the verdict of a two-item comparison.
type Comparison struct {
	Winner  Winner
	UnitA   decimal.Decimal // unit price of product A
	UnitB   decimal.Decimal // unit price of product B
	Diff    decimal.Decimal // loser unit price minus winner unit price
	Percent decimal.Decimal // savings relative to the loser, 1 decimal place
}

// Compare reports which of two products is cheaper per unit and by how
// much. The savings percentage is relative to the more expensive product
// and rounded to one decimal place.
//
// The second return is false when either product is incomplete (no
// positive price or volume); an incomplete comparison is an absent
// result, never an error. Equal unit prices are a draw with zero diff
// and percent. Swapping the arguments swaps the winner and leaves the
// percentage unchanged.
func Compare(a, b Product) (Comparison, bool) {
	unitA, okA := a.unitPrice()
	unitB, okB := b.unitPrice()
	if !okA || !okB {
		return Comparison{}, false
	}

	c := Comparison{UnitA: unitA, UnitB: unitB}
	if unitA.Equal(unitB) {
		c.Winner = Draw
		c.Diff = decimal.Zero
		c.Percent = decimal.Zero
		return c, true
	}

	winner, loser := unitA, unitB
	c.Winner = WinnerA
	if unitB.LessThan(unitA) {
		winner, loser = unitB, unitA
		c.Winner = WinnerB
	}
	c.Diff = loser.Sub(winner)
	c.Percent = c.Diff.Div(loser).Mul(hundred).Round(1)
	return c, true
}

var hundred = decimal.NewFromInt(100)
