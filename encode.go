package kurashi

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file persists price records as JSONL, one record per line, so a
// household's price history stays human-readable and git-friendly. The
// same stream format backs `kcs export` and `kcs import`.

// EncodeRecords writes records to w as JSONL, one record per line, in
// the order given.
func EncodeRecords(w io.Writer, records []PriceRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("cannot encode record %q: %w", r.ID, err)
		}
	}
	return nil
}

// DecodeRecords reads a JSONL stream of price records. Blank lines are
// skipped. Every decoded record is validated, so a stream that would
// break the unit-price invariant is rejected as a whole.
func DecodeRecords(r io.Reader) ([]PriceRecord, error) {
	var records []PriceRecord
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		var rec PriceRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
