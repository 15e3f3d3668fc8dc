package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/renderer"
)

type recordCmd struct {
	item     string
	category string
	price    int64
	quantity string
	volume   string
	shop     string
	taxIn    bool
	taxOut   bool
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an observed price for an item at a shop" }
func (*recordCmd) Usage() string {
	return `kcs record -item <name> -price <yen> [-qty <n>] [-vol <n>] [-shop <name>] [-category <tag>] [-tax-in|-tax-out]

  Validates the entry, computes its unit price (price / (qty × vol)),
  stores it, and shows the best price known so far for the item.

  -tax-in converts the given tax-free price to its 10% tax-included form
  before recording; -tax-out does the reverse.

Usage Examples:
# a ¥300 pack of 2 bottles of 0.5 L
$ kcs record -item "sparkling water" -price 300 -qty 2 -vol 0.5 -shop "OK Store"

`
}

func (p *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.item, "item", "", "Item name (required).")
	f.StringVar(&p.category, "category", "", "Free-form category tag.")
	f.Int64Var(&p.price, "price", 0, "Price in whole yen (required).")
	f.StringVar(&p.quantity, "qty", "", "Units in the pack, defaults to 1.")
	f.StringVar(&p.volume, "vol", "", "Content per unit, defaults to 1.")
	f.StringVar(&p.shop, "shop", "", "Shop name.")
	f.BoolVar(&p.taxIn, "tax-in", false, "Record the 10% tax-included price.")
	f.BoolVar(&p.taxOut, "tax-out", false, "Record the price with 10% tax removed.")
}

func (p *recordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := parseAmount(p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -qty: %v\n", err)
		return subcommands.ExitUsageError
	}
	volume, err := parseAmount(p.volume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -vol: %v\n", err)
		return subcommands.ExitUsageError
	}

	price := kurashi.Yen(p.price)
	switch {
	case p.taxIn && p.taxOut:
		fmt.Fprintln(os.Stderr, "Error: -tax-in and -tax-out are mutually exclusive")
		return subcommands.ExitUsageError
	case p.taxIn:
		price = kurashi.TaxIncluded(price)
	case p.taxOut:
		price = kurashi.TaxExcluded(price)
	}

	r, err := kurashi.NewPriceRecord(p.item, p.category, price, quantity, volume, p.shop, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	// compare against history before this record lands
	records, err := s.ListPrices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stored, err := s.CreatePrice(ctx, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s at ¥%s per unit (id %s)\n", stored.ItemName, stored.UnitPrice.StringFixed(2), stored.ID)

	if best, ok := kurashi.BestPriceFor(stored.ItemName, records); ok {
		printMarkdown(renderer.BestMatch(stored.ItemName, best))
	}
	return subcommands.ExitSuccess
}

// parseAmount parses a quantity or volume flag; blank means "use the
// default", which NewPriceRecord resolves to 1.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(s)
}
