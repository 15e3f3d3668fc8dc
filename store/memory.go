package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
)

// Memory is an in-memory Store with the same ordering guarantees as
// Postgres. It backs tests and offline runs of the CLI.
type Memory struct {
	mu       sync.RWMutex
	prices   []kurashi.PriceRecord
	events   map[string]calendar.Event
	profiles map[string]Profile
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		events:   make(map[string]calendar.Event),
		profiles: make(map[string]Profile),
	}
}

func (s *Memory) ListPrices(ctx context.Context) ([]kurashi.PriceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]kurashi.PriceRecord, len(s.prices))
	copy(records, s.prices)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (s *Memory) CreatePrice(ctx context.Context, r kurashi.PriceRecord) (kurashi.PriceRecord, error) {
	if err := r.Validate(); err != nil {
		return kurashi.PriceRecord{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = append(s.prices, r)
	return r, nil
}

func (s *Memory) DeletePrice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.prices {
		if r.ID == id {
			s.prices = append(s.prices[:i], s.prices[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("price record %q: %w", id, ErrNotFound)
}

func (s *Memory) ListEvents(ctx context.Context, from, to date.Date) ([]calendar.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []calendar.Event
	for _, e := range s.events {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date.Before(events[j].Date)
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (s *Memory) SaveEvent(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	if e.Title == "" || e.Date.IsZero() {
		return calendar.Event{}, fmt.Errorf("%w: event needs a title and a date", kurashi.ErrInvalidInput)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
	return e, nil
}

func (s *Memory) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	delete(s.events, id)
	return nil
}

func (s *Memory) Profile(ctx context.Context, id string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// PutProfile stores a member profile (test seeding and offline use).
func (s *Memory) PutProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

var _ Store = (*Memory)(nil)
