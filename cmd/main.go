// Package cmd implements the CLI application `kcs`, the terminal
// companion of the kurashi household toolkit.
package cmd

import (
	"context"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ymaeda/kurashi/store"
)

// Register the subcommands.
// A main package calls Register() to wire all commands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&recordCmd{}, "prices")
	c.Register(&historyCmd{}, "prices")
	c.Register(&rankCmd{}, "prices")
	c.Register(&bestCmd{}, "prices")
	c.Register(&compareCmd{}, "prices")
	c.Register(&deleteCmd{}, "prices")
	c.Register(&exportCmd{}, "prices")
	c.Register(&importCmd{}, "prices")

	c.Register(&calCmd{}, "calendar")
	c.Register(&eventCmd{}, "calendar")

	c.Register(&weatherCmd{}, "widgets")

	c.Register(&serveCmd{}, "server")
}

// openStore connects to the configured database. Commands that touch
// shared data go through it; pure calculators (compare, topic) do not.
func openStore(ctx context.Context) (*store.Postgres, store.Config, error) {
	cfg := store.LoadConfig()
	if cfg.DatabaseURL == "" {
		return nil, cfg, fmt.Errorf("DATABASE_URL is not set (a .env file in the working directory works too)")
	}
	s, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, cfg, err
	}
	if err := s.EnsureSchema(ctx); err != nil {
		s.Close()
		return nil, cfg, err
	}
	return s, cfg, nil
}
