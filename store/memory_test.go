package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
)

func newRecord(t *testing.T, item string, price kurashi.Yen, shop string, at time.Time) kurashi.PriceRecord {
	t.Helper()
	r, err := kurashi.NewPriceRecord(item, "", price, decimal.NewFromInt(1), decimal.NewFromInt(1), shop, at)
	if err != nil {
		t.Fatalf("building record: %v", err)
	}
	return r
}

func TestMemoryPricesNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, item := range []string{"milk", "bread", "rice"} {
		r := newRecord(t, item, 100, "Shop", base.Add(time.Duration(i)*time.Hour))
		if _, err := s.CreatePrice(ctx, r); err != nil {
			t.Fatalf("CreatePrice: %v", err)
		}
	}

	records, err := s.ListPrices(ctx)
	if err != nil {
		t.Fatalf("ListPrices: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].ItemName != "rice" || records[2].ItemName != "milk" {
		t.Errorf("records not newest first: %s ... %s", records[0].ItemName, records[2].ItemName)
	}
	for _, r := range records {
		if r.ID == "" {
			t.Errorf("record %q has no assigned ID", r.ItemName)
		}
	}
}

func TestMemoryCreateRejectsInvalid(t *testing.T) {
	s := NewMemory()
	bad := kurashi.PriceRecord{ItemName: "milk", Price: -1}
	if _, err := s.CreatePrice(context.Background(), bad); !errors.Is(err, kurashi.ErrInvalidInput) {
		t.Errorf("CreatePrice accepted an invalid record: %v", err)
	}
	records, _ := s.ListPrices(context.Background())
	if len(records) != 0 {
		t.Errorf("invalid record was persisted")
	}
}

func TestMemoryDeletePrice(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	r, err := s.CreatePrice(ctx, newRecord(t, "milk", 100, "Shop", time.Now()))
	if err != nil {
		t.Fatalf("CreatePrice: %v", err)
	}

	if err := s.DeletePrice(ctx, r.ID); err != nil {
		t.Fatalf("DeletePrice: %v", err)
	}
	if err := s.DeletePrice(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting twice: got %v, want ErrNotFound", err)
	}
}

func TestMemoryEvents(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	in := []calendar.Event{
		{Date: date.MustParse("2025-08-15"), Time: "18:00", Title: "dinner"},
		{Date: date.MustParse("2025-08-15"), Time: "09:00", Title: "dentist"},
		{Date: date.MustParse("2025-09-01"), Title: "school"},
	}
	for _, e := range in {
		if _, err := s.SaveEvent(ctx, e); err != nil {
			t.Fatalf("SaveEvent: %v", err)
		}
	}

	events, err := s.ListEvents(ctx, date.MustParse("2025-08-01"), date.MustParse("2025-08-31"))
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events in August, want 2", len(events))
	}
	if events[0].Title != "dentist" || events[1].Title != "dinner" {
		t.Errorf("events not ordered by time: %s, %s", events[0].Title, events[1].Title)
	}

	// update keeps the same ID
	events[0].Title = "dentist (moved)"
	updated, err := s.SaveEvent(ctx, events[0])
	if err != nil {
		t.Fatalf("SaveEvent update: %v", err)
	}
	if updated.ID != events[0].ID {
		t.Errorf("update changed the ID")
	}

	if err := s.DeleteEvent(ctx, updated.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := s.DeleteEvent(ctx, updated.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting twice: got %v, want ErrNotFound", err)
	}
}

func TestMemorySaveEventRequiresTitleAndDate(t *testing.T) {
	s := NewMemory()
	if _, err := s.SaveEvent(context.Background(), calendar.Event{Title: "no date"}); err == nil {
		t.Errorf("SaveEvent accepted an event without a date")
	}
	if _, err := s.SaveEvent(context.Background(), calendar.Event{Date: date.MustParse("2025-08-15")}); err == nil {
		t.Errorf("SaveEvent accepted an event without a title")
	}
}

func TestMemoryProfile(t *testing.T) {
	s := NewMemory()
	s.PutProfile(Profile{ID: "u1", DisplayName: "Hana", AvatarEmoji: "🐰", City: "Yokohama"})

	p, err := s.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.AvatarEmoji != "🐰" || p.City != "Yokohama" {
		t.Errorf("profile = %+v", p)
	}
	if _, err := s.Profile(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing profile: got %v, want ErrNotFound", err)
	}
}
