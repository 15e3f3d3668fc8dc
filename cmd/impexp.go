package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ymaeda/kurashi"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write all price records as JSONL" }
func (*exportCmd) Usage() string {
	return `kcs export [-o <file>]

  Writes every price record as JSONL, one record per line, newest
  first, to stdout or to -o. The stream round-trips through kcs import.

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file; stdout when omitted.")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if p.outputFile != "" {
		out, err = os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := kurashi.EncodeRecords(out, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", len(records), p.outputFile)
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "read price records from a JSONL stream" }
func (*importCmd) Usage() string {
	return `kcs import [-i <file>]

  Reads a JSONL stream of price records from stdin or -i, validates
  every line, and inserts them. An invalid line aborts the import
  before anything is written.

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.inputFile, "i", "", "Input file; stdin when omitted.")
}

func (p *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if p.inputFile != "" {
		file, err := os.Open(p.inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	records, err := kurashi.DecodeRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	for _, r := range records {
		if _, err := s.CreatePrice(ctx, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting record %q: %v\n", r.ID, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d records\n", len(records))
	return subcommands.ExitSuccess
}
