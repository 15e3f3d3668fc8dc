// Package server exposes the kurashi toolkit over HTTP for the web
// shell: price records and rankings, the shared calendar, holidays, and
// the weather widget. Handlers are thin; all computation lives in the
// domain packages.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ymaeda/kurashi/store"
)

// Server serves the JSON API consumed by the web shell.
type Server struct {
	store   store.Store
	cfg     store.Config
	weather *weatherSource
	router  *gin.Engine
}

// New builds a server around a store. A nil redis client disables the
// weather cache; every widget refresh then hits wttr.in directly.
func New(s store.Store, cfg store.Config, cache *redis.Client) *Server {
	srv := &Server{
		store:   s,
		cfg:     cfg,
		weather: &weatherSource{client: http.DefaultClient, cache: cache},
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), observe())

	api := r.Group("/api")
	{
		api.GET("/prices", srv.listPrices)
		api.POST("/prices", srv.createPrice)
		api.DELETE("/prices/:id", srv.deletePrice)

		api.GET("/rank", srv.rank)
		api.GET("/best", srv.best)
		api.GET("/compare", srv.compare)

		api.GET("/events", srv.listEvents)
		api.POST("/events", srv.createEvent)
		api.DELETE("/events/:id", srv.deleteEvent)

		api.GET("/holidays/:year/:month", srv.holidays)
		api.GET("/weather", srv.weatherWidget)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	srv.router = r
	return srv
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then drains in-flight requests for
// up to 15 seconds before returning.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.router,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("serving on %s", s.cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
