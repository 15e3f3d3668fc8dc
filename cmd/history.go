package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/renderer"
)

type historyCmd struct {
	item  string
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded prices, newest first" }
func (*historyCmd) Usage() string {
	return `kcs history [-item <substring>] [-n <count>]

  Lists price records, newest first. -item filters by a case-insensitive
  substring of the item name, the same match the live lookup uses.

`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.item, "item", "", "Only records whose item name contains this text.")
	f.IntVar(&p.limit, "n", 20, "Maximum number of rows, 0 for all.")
}

func (p *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	records, err := s.ListPrices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.item != "" {
		needle := strings.ToLower(p.item)
		filtered := records[:0]
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.ItemName), needle) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	printMarkdown(renderer.History(records, p.limit))
	return subcommands.ExitSuccess
}

type rankCmd struct{}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "show the three cheapest shops per item" }
func (*rankCmd) Usage() string {
	return `kcs rank

  Groups all records by item and shows, per item, the three cheapest
  distinct shops by unit price.

`
}

func (*rankCmd) SetFlags(f *flag.FlagSet) {}

func (*rankCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	records, err := s.ListPrices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Ranking(kurashi.RankByItem(records)))
	return subcommands.ExitSuccess
}

type bestCmd struct{}

func (*bestCmd) Name() string     { return "best" }
func (*bestCmd) Synopsis() string { return "best known price for a (partial) item name" }
func (*bestCmd) Usage() string {
	return `kcs best <text>

  The live lookup the entry form runs while typing: matches item names
  containing the text, case-insensitively, and reports the cheapest
  unit price, its shop, and the number of matching records.

`
}

func (*bestCmd) SetFlags(f *flag.FlagSet) {}

func (*bestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument, the text to search for")
		return subcommands.ExitUsageError
	}
	partial := f.Arg(0)

	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	records, err := s.ListPrices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	best, ok := kurashi.BestPriceFor(partial, records)
	if !ok {
		fmt.Printf("No records match %q yet.\n", partial)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.BestMatch(partial, best))
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a price record by id" }
func (*deleteCmd) Usage() string {
	return `kcs delete <id>

  Deletes one price record. Records are never edited: to correct one,
  delete it and record it again.

`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument, the record id")
		return subcommands.ExitUsageError
	}

	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := s.DeletePrice(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted record %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
