package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/renderer"
)

type compareCmd struct {
	aName, bName string
	aPrice       string
	bPrice       string
	aVol, bVol   string
	aQty, bQty   string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two products by unit price" }
func (*compareCmd) Usage() string {
	return `kcs compare -a-price <yen> -a-vol <n> -b-price <yen> -b-vol <n> [-a-qty <n>] [-b-qty <n>] [-a-name <s>] [-b-name <s>]

  A stateless calculator: computes both unit prices and reports the
  cheaper product and the savings. Nothing is stored.

Usage Examples:
$ kcs compare -a-name "Brand X" -a-price 300 -a-vol 1 -b-name "Brand Y" -b-price 500 -b-vol 2

`
}

func (p *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.aName, "a-name", "商品A", "Name of product A.")
	f.StringVar(&p.bName, "b-name", "商品B", "Name of product B.")
	f.StringVar(&p.aPrice, "a-price", "", "Price of product A in yen.")
	f.StringVar(&p.bPrice, "b-price", "", "Price of product B in yen.")
	f.StringVar(&p.aVol, "a-vol", "", "Content amount of product A.")
	f.StringVar(&p.bVol, "b-vol", "", "Content amount of product B.")
	f.StringVar(&p.aQty, "a-qty", "1", "Units in pack A.")
	f.StringVar(&p.bQty, "b-qty", "1", "Units in pack B.")
}

func (p *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := product(p.aName, p.aPrice, p.aVol, p.aQty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: product A: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := product(p.bName, p.bPrice, p.bVol, p.bQty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: product B: %v\n", err)
		return subcommands.ExitUsageError
	}

	c, ok := kurashi.Compare(a, b)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: both products need a positive price and volume")
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Comparison(a, b, c))
	return subcommands.ExitSuccess
}

// product builds a comparison product from flag values; blank fields
// stay zero and make the comparison incomplete rather than failing.
func product(name, price, vol, qty string) (kurashi.Product, error) {
	p := kurashi.Product{Name: name}
	var err error
	if price != "" {
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return p, err
		}
	}
	if vol != "" {
		if p.Volume, err = decimal.NewFromString(vol); err != nil {
			return p, err
		}
	}
	if qty != "" {
		if p.Quantity, err = decimal.NewFromString(qty); err != nil {
			return p, err
		}
	}
	return p, nil
}
