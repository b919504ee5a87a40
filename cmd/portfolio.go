package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

// loadPortfolio loads the portfolio from the data directory (-d) or the
// export (-i), filtered on the -etfs list when 'filter' is set. On error it
// prints a message and returns a nil portfolio with the exit status.
func loadPortfolio(ctx context.Context, filter bool) (*holdings.Portfolio, subcommands.ExitStatus) {
	var (
		p   *holdings.Portfolio
		err error
	)
	switch {
	case settings.DataDir != "" && settings.Import != "":
		fmt.Fprintln(os.Stderr, "Error: -d and -i are mutually exclusive")
		return nil, subcommands.ExitUsageError
	case settings.DataDir != "":
		p, err = holdings.LoadDir(ctx, settings.DataDir, holdings.LoadOptions{
			Schema:   settings.Columns.Schema(),
			Workers:  settings.Workers,
			JSONRows: settings.JSONRows,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading portfolio from %q: %v\n", settings.DataDir, err)
			return nil, subcommands.ExitFailure
		}
	case settings.Import != "":
		p, err = holdings.ImportPortfolio(settings.Import)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing portfolio: %v\n", err)
			return nil, subcommands.ExitFailure
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: either -d or -i must be specified")
		return nil, subcommands.ExitUsageError
	}

	if filter && len(settings.ETFs) > 0 {
		warnMissing(p, settings.ETFs)
		p = p.Filter(settings.ETFs)
		if p.IsEmpty() {
			fmt.Fprintf(os.Stderr, "Warning: no holdings match -etfs %s\n", strings.Join(settings.ETFs, ","))
		}
	}
	return p, subcommands.ExitSuccess
}

// warnMissing prints a warning for the requested funds absent from 'p'.
func warnMissing(p *holdings.Portfolio, funds []string) {
	if missing := p.MissingFunds(funds); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ETFs not found: %s\n", strings.Join(missing, ", "))
	}
}

// reportFlags are the flags shared by the report subcommands.
type reportFlags struct {
	output string
	sort   string
}

func (r *reportFlags) setFlags(f *flag.FlagSet, withSort bool) {
	f.StringVar(&r.output, "o", settings.Output, "Write the report table to this file (.csv, .jsonl or .parquet) instead of printing it")
	if withSort {
		f.StringVar(&r.sort, "sort", settings.SortBy, "Sort order: 'symbol' or 'count' (descending ETF count)")
	}
}

// options returns the analysis options of the report.
func (r *reportFlags) options() (holdings.Options, error) {
	order, err := holdings.ParseSortOrder(r.sort)
	if err != nil {
		return holdings.Options{}, err
	}
	return holdings.Options{Sort: order, Workers: settings.Workers}, nil
}
