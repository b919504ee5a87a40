package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	reportFlags
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the weights of the assets of several ETFs" }
func (*compareCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) compare [-o <file>] [<etf>...]

  Shows the weight of every asset held by at least one of the given ETFs,
  one column per ETF. An asset an ETF does not hold shows N/A, not 0.00%.
  The ETFs are the arguments, or the global -etfs list when there are none.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds := argFunds(f)

	p, status := loadPortfolio(ctx, false)
	if p == nil {
		return status
	}

	r, err := holdings.Compare(p, funds, holdings.Options{Workers: settings.Workers})
	if errors.Is(err, holdings.ErrMissingComparisonFunds) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing ETFs: %v\n", err)
		return subcommands.ExitFailure
	}
	warnMissing(p, funds)
	return emit(renderer.CompareText(r), renderer.CompareMarkdown(r), r.Table(), c.output)
}
