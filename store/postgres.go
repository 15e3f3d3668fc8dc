package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
)

// Postgres stores everything in the hosted Postgres database, using the
// same table layout the web shell reads.
type Postgres struct {
	pool *pgxpool.Pool
}

// Open connects a pgx pool to the database and pings it.
func Open(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("cannot create pgx pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() { s.pool.Close() }

// EnsureSchema creates the tables when they do not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS bottom_prices (
	id         uuid PRIMARY KEY,
	item_name  text NOT NULL,
	category   text NOT NULL DEFAULT '',
	price      bigint NOT NULL CHECK (price >= 0),
	quantity   numeric NOT NULL CHECK (quantity > 0),
	volume     numeric NOT NULL CHECK (volume > 0),
	unit_price numeric NOT NULL CHECK (unit_price >= 0),
	shop_name  text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS shared_events (
	id          uuid PRIMARY KEY,
	event_date  date NOT NULL,
	event_time  text NOT NULL DEFAULT '',
	title       text NOT NULL,
	color       text NOT NULL DEFAULT '',
	user_avatar text NOT NULL DEFAULT '',
	user_id     text NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS profiles (
	id           text PRIMARY KEY,
	display_name text NOT NULL DEFAULT '',
	avatar_emoji text NOT NULL DEFAULT '',
	city         text NOT NULL DEFAULT ''
);`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("cannot ensure schema: %w", err)
	}
	return nil
}

func (s *Postgres) ListPrices(ctx context.Context) ([]kurashi.PriceRecord, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, item_name, category, price, quantity, volume, unit_price, shop_name, created_at
FROM bottom_prices
ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []kurashi.PriceRecord
	for rows.Next() {
		var r kurashi.PriceRecord
		var price int64
		var quantity, volume, unit decimal.Decimal
		if err := rows.Scan(&r.ID, &r.ItemName, &r.Category, &price, &quantity, &volume, &unit, &r.ShopName, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Price = kurashi.Yen(price)
		r.Quantity, r.Volume, r.UnitPrice = quantity, volume, unit
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Postgres) CreatePrice(ctx context.Context, r kurashi.PriceRecord) (kurashi.PriceRecord, error) {
	if err := r.Validate(); err != nil {
		return kurashi.PriceRecord{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
INSERT INTO bottom_prices (id, item_name, category, price, quantity, volume, unit_price, shop_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.ItemName, r.Category, int64(r.Price), r.Quantity, r.Volume, r.UnitPrice, r.ShopName, r.CreatedAt)
	if err != nil {
		return kurashi.PriceRecord{}, fmt.Errorf("cannot insert price record: %w", err)
	}
	return r, nil
}

func (s *Postgres) DeletePrice(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM bottom_prices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("price record %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Postgres) ListEvents(ctx context.Context, from, to date.Date) ([]calendar.Event, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, event_date, event_time, title, color, user_avatar, user_id
FROM shared_events
WHERE event_date >= $1 AND event_date <= $2
ORDER BY event_date, event_time`, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		var e calendar.Event
		var day time.Time
		if err := rows.Scan(&e.ID, &day, &e.Time, &e.Title, &e.Color, &e.Avatar, &e.UserID); err != nil {
			return nil, err
		}
		e.Date = date.Of(day)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Postgres) SaveEvent(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	if e.Title == "" || e.Date.IsZero() {
		return calendar.Event{}, fmt.Errorf("%w: event needs a title and a date", kurashi.ErrInvalidInput)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `
INSERT INTO shared_events (id, event_date, event_time, title, color, user_avatar, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET event_date = EXCLUDED.event_date, event_time = EXCLUDED.event_time,
    title = EXCLUDED.title, color = EXCLUDED.color,
    user_avatar = EXCLUDED.user_avatar, user_id = EXCLUDED.user_id`,
		e.ID, e.Date.String(), e.Time, e.Title, e.Color, e.Avatar, e.UserID)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("cannot save event: %w", err)
	}
	return e, nil
}

func (s *Postgres) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM shared_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Postgres) Profile(ctx context.Context, id string) (Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx, `
SELECT id, display_name, avatar_emoji, city FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &p.DisplayName, &p.AvatarEmoji, &p.City)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

// compile-time check that Postgres satisfies Store.
var _ Store = (*Postgres)(nil)
