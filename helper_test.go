package kurashi

import (
	"testing"
	"time"
)

// testTime returns a fixed timestamp so tests stay deterministic.
func testTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-08-01T10:30:00+09:00")
	if err != nil {
		t.Fatalf("parsing test time: %v", err)
	}
	return ts
}

// rec builds a valid price record for ranking tests, with the unit price
// stamped the same way the entry path would.
func rec(t *testing.T, item string, price Yen, qty, vol, shop string) PriceRecord {
	t.Helper()
	r, err := NewPriceRecord(item, "", price, d(qty), d(vol), shop, testTime(t))
	if err != nil {
		t.Fatalf("building record for %s at %s: %v", item, shop, err)
	}
	return r
}
