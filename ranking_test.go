package kurashi

import (
	"reflect"
	"testing"
)

func TestRankByItem(t *testing.T) {
	records := []PriceRecord{
		rec(t, "milk", 200, "1", "1", "Shop A"),
		rec(t, "milk", 150, "1", "1", "Shop B"),
	}

	got := RankByItem(records)
	want := map[string][]ShopPrice{
		"milk": {
			{ShopName: "Shop B", UnitPrice: d("150")},
			{ShopName: "Shop A", UnitPrice: d("200")},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByItem = %v, want %v", got, want)
	}
}

func TestRankByItemDedupsShops(t *testing.T) {
	// four records from three shops: Shop A appears twice, only its
	// cheapest entry may survive, and the list is capped at three shops.
	records := []PriceRecord{
		rec(t, "rice", 2000, "1", "5", "Shop A"), // 400
		rec(t, "rice", 1800, "1", "5", "Shop B"), // 360
		rec(t, "rice", 1750, "1", "5", "Shop A"), // 350
		rec(t, "rice", 1900, "1", "5", "Shop C"), // 380
		rec(t, "rice", 2100, "1", "5", "Shop D"), // 420, pushed out by the cap
	}

	got := RankByItem(records)["rice"]
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}

	seen := map[string]bool{}
	for _, sp := range got {
		if seen[sp.ShopName] {
			t.Errorf("shop %q appears twice in the ranking", sp.ShopName)
		}
		seen[sp.ShopName] = true
	}
	for i := 1; i < len(got); i++ {
		if got[i].UnitPrice.LessThan(got[i-1].UnitPrice) {
			t.Errorf("ranking not ascending: %s before %s", got[i-1].UnitPrice, got[i].UnitPrice)
		}
	}
	if got[0].ShopName != "Shop A" || !got[0].UnitPrice.Equal(d("350")) {
		t.Errorf("cheapest = %+v, want Shop A at 350", got[0])
	}
}

func TestRankByItemStableTieBreak(t *testing.T) {
	// identical unit prices keep their input order.
	records := []PriceRecord{
		rec(t, "tofu", 100, "1", "1", "First"),
		rec(t, "tofu", 100, "1", "1", "Second"),
	}
	got := RankByItem(records)["tofu"]
	if got[0].ShopName != "First" || got[1].ShopName != "Second" {
		t.Errorf("tie-break changed input order: %v", got)
	}
}

func TestRankByItemIdempotent(t *testing.T) {
	records := []PriceRecord{
		rec(t, "milk", 200, "1", "1", "Shop A"),
		rec(t, "milk", 150, "1", "1", "Shop B"),
		rec(t, "bread", 120, "1", "1", "Shop A"),
	}
	first := RankByItem(records)
	second := RankByItem(records)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same records differ: %v vs %v", first, second)
	}
}

func TestRankByItemEmpty(t *testing.T) {
	if got := RankByItem(nil); len(got) != 0 {
		t.Errorf("RankByItem(nil) = %v, want empty map", got)
	}
}

func TestBestPriceFor(t *testing.T) {
	records := []PriceRecord{
		rec(t, "milk", 200, "1", "1", "Shop A"),
		rec(t, "milk", 150, "1", "1", "Shop B"),
		rec(t, "bread", 120, "1", "1", "Shop C"),
	}

	testCases := []struct {
		name    string
		partial string
		ok      bool
		price   string
		shop    string
		count   int
	}{
		{"prefix while typing", "mil", true, "150", "Shop B", 2},
		{"case insensitive", "MILK", true, "150", "Shop B", 2},
		{"substring anywhere", "read", true, "120", "Shop C", 1},
		{"no match", "natto", false, "", "", 0},
		{"empty input", "", false, "", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BestPriceFor(tc.partial, records)
			if ok != tc.ok {
				t.Fatalf("BestPriceFor(%q) ok = %v, want %v", tc.partial, ok, tc.ok)
			}
			if !ok {
				return
			}
			if !got.BestPrice.Equal(d(tc.price)) || got.ShopName != tc.shop || got.Count != tc.count {
				t.Errorf("BestPriceFor(%q) = %+v, want {%s %s %d}", tc.partial, got, tc.price, tc.shop, tc.count)
			}
		})
	}
}

func TestBestPriceForEmptyRecords(t *testing.T) {
	if _, ok := BestPriceFor("milk", nil); ok {
		t.Errorf("BestPriceFor over no records reported a match")
	}
}
