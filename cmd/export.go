package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the normalized portfolio" }
func (*exportCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) export -o <file>

  Writes the normalized holdings of the (filtered) portfolio to a file that
  can be analyzed later with -i. The format is given by the extension:
  .parquet (the default when there is none), .csv or .jsonl.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", settings.Output, "Export file (.parquet, .csv or .jsonl)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: export requires -o to be specified")
		return subcommands.ExitUsageError
	}
	path, _, err := holdings.ResolveFormat(c.output, holdings.Parquet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}

	ok, err := confirmOverwrite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking export file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Skipped writing %s\n", path)
		return subcommands.ExitSuccess
	}
	if _, err := holdings.ExportPortfolio(path, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d holdings of %d ETFs to: %s\n", p.Len(), len(p.Funds()), path)
	return subcommands.ExitSuccess
}
