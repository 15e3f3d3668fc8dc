// Package store persists the household's shared data: price records,
// calendar events, and member profiles. The hosted Postgres database is
// the source of truth; Memory is a stand-in for tests and offline use.
//
// The domain packages never talk to the store directly. They take an
// immutable snapshot of records as input, so callers fetch once and pass
// the slice down.
package store

import (
	"context"
	"errors"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
)

// ErrNotFound is returned when a record, event, or profile does not exist.
var ErrNotFound = errors.New("not found")

// Profile is one household member as shown on the home screen.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarEmoji string `json:"avatar_emoji"`
	City        string `json:"city"` // weather widget location
}

// Store is the capability handed to commands and handlers. Both
// implementations order price listings newest first, the order the
// history tab expects.
type Store interface {
	// ListPrices returns all price records ordered by created_at descending.
	ListPrices(ctx context.Context) ([]kurashi.PriceRecord, error)
	// CreatePrice persists a validated record, assigning an ID when blank,
	// and returns the stored record.
	CreatePrice(ctx context.Context, r kurashi.PriceRecord) (kurashi.PriceRecord, error)
	// DeletePrice removes a record by ID.
	DeletePrice(ctx context.Context, id string) error

	// ListEvents returns calendar events with from <= date <= to, ordered
	// by date then time.
	ListEvents(ctx context.Context, from, to date.Date) ([]calendar.Event, error)
	// SaveEvent inserts the event, or updates it when its ID is set.
	SaveEvent(ctx context.Context, e calendar.Event) (calendar.Event, error)
	// DeleteEvent removes an event by ID.
	DeleteEvent(ctx context.Context, id string) error

	// Profile returns a member profile by ID.
	Profile(ctx context.Context, id string) (Profile, error)
}
