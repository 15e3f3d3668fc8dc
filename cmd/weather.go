package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ymaeda/kurashi/renderer"
	"github.com/ymaeda/kurashi/store"
	"github.com/ymaeda/kurashi/weather"
)

type weatherCmd struct{}

func (*weatherCmd) Name() string     { return "weather" }
func (*weatherCmd) Synopsis() string { return "current conditions and pressure warning" }
func (*weatherCmd) Usage() string {
	return `kcs weather [<city>]

  Shows the home-screen weather widget: current temperature, conditions,
  humidity, and the barometric pressure with its headache warning.
  Defaults to the configured city. Responses are cached for 30 minutes.

`
}

func (*weatherCmd) SetFlags(f *flag.FlagSet) {}

func (*weatherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	city := store.LoadConfig().City
	if f.NArg() > 0 {
		city = f.Arg(0)
	}

	r, err := weather.Fetch(weather.CachedClient(), city)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Weather(r))
	return subcommands.ExitSuccess
}
