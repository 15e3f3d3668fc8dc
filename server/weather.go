package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ymaeda/kurashi/weather"
)

// weatherTTL matches the refresh interval of the home-screen widget;
// wttr.in asks not to be polled more often anyway.
const weatherTTL = 30 * time.Minute

// weatherSource fetches conditions, read through Redis when a client is
// configured so concurrent widget refreshes share one upstream call.
type weatherSource struct {
	client *http.Client
	cache  *redis.Client

	// fetch is swapped out in tests.
	fetch func(*http.Client, string) (*weather.Report, error)
}

func (w *weatherSource) current(ctx context.Context, city string) (*weather.Report, error) {
	key := "kurashi:wx:" + city

	if w.cache != nil {
		if val, err := w.cache.Get(ctx, key).Result(); err == nil {
			var r weather.Report
			if json.Unmarshal([]byte(val), &r) == nil {
				weatherFetches.WithLabelValues("cache").Inc()
				return &r, nil
			}
		}
	}

	fetch := w.fetch
	if fetch == nil {
		fetch = weather.Fetch
	}
	r, err := fetch(w.client, city)
	if err != nil {
		return nil, err
	}
	weatherFetches.WithLabelValues("origin").Inc()

	if w.cache != nil {
		if b, err := json.Marshal(r); err == nil {
			w.cache.Set(ctx, key, b, weatherTTL)
		}
	}
	return r, nil
}
