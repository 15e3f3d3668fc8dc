package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kurashi_http_request_duration_seconds",
			Help:    "Latency of API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	recordsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kurashi_price_records_created_total",
			Help: "Price records inserted through the API.",
		},
	)
	weatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kurashi_weather_fetches_total",
			Help: "Weather widget refreshes by source.",
		},
		[]string{"source"}, // "cache" or "origin"
	)
)

// observe times each request under its route template, so /api/prices/:id
// stays one series regardless of the id.
func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
