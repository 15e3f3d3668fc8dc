package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"

	"github.com/ymaeda/kurashi/server"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the JSON API server for the web shell" }
func (*serveCmd) Usage() string {
	return `kcs serve [-addr <host:port>]

  Serves the API the web shell consumes: /api/prices, /api/rank,
  /api/best, /api/compare, /api/events, /api/holidays, /api/weather,
  plus Prometheus metrics on /metrics. REDIS_URL enables the shared
  weather cache. Stops cleanly on SIGINT/SIGTERM.

`
}

func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.addr, "addr", "", "Listen address, overrides KURASHI_ADDR.")
}

func (p *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, cfg, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.addr != "" {
		cfg.ListenAddr = p.addr
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid REDIS_URL: %v\n", err)
			return subcommands.ExitFailure
		}
		cache = redis.NewClient(opts)
		defer cache.Close()
	}

	if err := server.New(s, cfg, cache).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
