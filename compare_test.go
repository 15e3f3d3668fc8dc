package kurashi

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompare(t *testing.T) {
	a := Product{Name: "Brand X", Price: d("300"), Volume: d("1"), Quantity: d("1")}
	b := Product{Name: "Brand Y", Price: d("500"), Volume: d("2"), Quantity: d("1")}

	got, ok := Compare(a, b)
	if !ok {
		t.Fatal("Compare reported incomplete input")
	}
	if got.Winner != WinnerB {
		t.Errorf("winner = %s, want B", got.Winner)
	}
	if !got.UnitA.Equal(d("300")) || !got.UnitB.Equal(d("250")) {
		t.Errorf("unit prices = %s and %s, want 300 and 250", got.UnitA, got.UnitB)
	}
	if !got.Diff.Equal(d("50")) {
		t.Errorf("diff = %s, want 50", got.Diff)
	}
	if !got.Percent.Equal(d("16.7")) {
		t.Errorf("percent = %s, want 16.7", got.Percent)
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := Product{Price: d("300"), Volume: d("1")}
	b := Product{Price: d("500"), Volume: d("2")}

	ab, _ := Compare(a, b)
	ba, _ := Compare(b, a)

	if ab.Winner != WinnerB || ba.Winner != WinnerA {
		t.Errorf("swapping arguments should swap the winner: got %s and %s", ab.Winner, ba.Winner)
	}
	if !ab.Percent.Equal(ba.Percent) {
		t.Errorf("percent differs between call orders: %s vs %s", ab.Percent, ba.Percent)
	}
	if !ab.Diff.Equal(ba.Diff) {
		t.Errorf("diff differs between call orders: %s vs %s", ab.Diff, ba.Diff)
	}
}

func TestCompareDraw(t *testing.T) {
	a := Product{Price: d("200"), Volume: d("1")}
	b := Product{Price: d("400"), Volume: d("2")}

	got, ok := Compare(a, b)
	if !ok {
		t.Fatal("Compare reported incomplete input")
	}
	if got.Winner != Draw {
		t.Errorf("winner = %s, want draw", got.Winner)
	}
	if !got.Diff.IsZero() || !got.Percent.IsZero() {
		t.Errorf("draw must have zero diff and percent, got %s and %s", got.Diff, got.Percent)
	}
}

func TestCompareIncomplete(t *testing.T) {
	complete := Product{Price: d("100"), Volume: d("1")}
	testCases := []struct {
		name string
		p    Product
	}{
		{"missing price", Product{Volume: d("1")}},
		{"missing volume", Product{Price: d("100")}},
		{"zero price", Product{Price: decimal.Zero, Volume: d("1")}},
		{"empty product", Product{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Compare(tc.p, complete); ok {
				t.Errorf("Compare(%+v, complete) should be incomplete", tc.p)
			}
			if _, ok := Compare(complete, tc.p); ok {
				t.Errorf("Compare(complete, %+v) should be incomplete", tc.p)
			}
		})
	}
}

func TestCompareQuantityDefaults(t *testing.T) {
	// quantity left blank behaves as 1, like the comparator form.
	a := Product{Price: d("300"), Volume: d("1")}
	b := Product{Price: d("300"), Volume: d("1"), Quantity: d("1")}

	got, ok := Compare(a, b)
	if !ok {
		t.Fatal("Compare reported incomplete input")
	}
	if got.Winner != Draw {
		t.Errorf("blank quantity should default to 1, got winner %s", got.Winner)
	}
}
