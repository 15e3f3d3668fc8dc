package kurashi

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeRecords(t *testing.T) {
	records := []PriceRecord{
		rec(t, "milk", 198, "1", "1000", "Shop A"),
		rec(t, "rice", 1980, "1", "5", "Shop B"),
	}
	records[0].ID = "a0000000-0000-0000-0000-000000000001"
	records[1].ID = "a0000000-0000-0000-0000-000000000002"

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, records); err != nil {
		t.Fatalf("EncodeRecords: %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("expected 2 lines, got %d in %q", got, buf.String())
	}

	back, err := DecodeRecords(&buf)
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("decoded %d records, want 2", len(back))
	}
	for i := range records {
		if back[i].ID != records[i].ID || back[i].ItemName != records[i].ItemName ||
			back[i].Price != records[i].Price || !back[i].UnitPrice.Equal(records[i].UnitPrice) {
			t.Errorf("record %d: got %+v, want %+v", i, back[i], records[i])
		}
		if !back[i].CreatedAt.Equal(records[i].CreatedAt) {
			t.Errorf("record %d: created_at drifted: %s vs %s", i, back[i].CreatedAt, records[i].CreatedAt)
		}
	}
}

func TestDecodeRecordsSkipsBlankLines(t *testing.T) {
	in := `{"id":"x","item_name":"milk","category":"","price":150,"quantity":"1","volume":"1","unit_price":"150","shop_name":"Shop B","created_at":"2025-08-01T10:30:00+09:00"}

`
	records, err := DecodeRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("decoded %d records, want 1", len(records))
	}
}

func TestDecodeRecordsRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"broken json", `{"item_name":`},
		{"negative price", `{"item_name":"milk","price":-5,"quantity":"1","volume":"1","unit_price":"0"}`},
		{"missing item name", `{"price":100,"quantity":"1","volume":"1","unit_price":"100"}`},
		{"zero quantity", `{"item_name":"milk","price":100,"quantity":"0","volume":"1","unit_price":"100"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRecords(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeRecords accepted %q", tc.in)
			}
		})
	}
}
