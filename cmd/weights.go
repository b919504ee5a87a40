package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/config"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// argFunds returns the funds named by the arguments, or the global -etfs
// list when there are none.
func argFunds(f *flag.FlagSet) []string {
	if f.NArg() == 0 {
		return settings.ETFs
	}
	var funds []string
	for _, arg := range f.Args() {
		funds = append(funds, config.SplitList(arg)...)
	}
	return funds
}

type correlationCmd struct {
	reportFlags
}

func (*correlationCmd) Name() string { return "correlation" }
func (*correlationCmd) Synopsis() string {
	return "correlate the asset weights of ETFs, pair by pair"
}
func (*correlationCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) correlation [-o <file>] [<etf>...]

  Prints the Pearson correlation of the asset weights of every pair of
  ETFs, over the assets held by at least one of them. An asset an ETF does
  not hold counts as a zero weight. Close to 1, two ETFs weight the same
  assets the same way.
  The ETFs are the arguments, the global -etfs list, or every ETF.
`
}

func (c *correlationCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *correlationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds := argFunds(f)

	p, status := loadPortfolio(ctx, false)
	if p == nil {
		return status
	}
	warnMissing(p, funds)

	r := holdings.Correlation(p, funds, holdings.Options{Workers: settings.Workers})
	return emit(renderer.CorrelationText(r), renderer.CorrelationMarkdown(r), r.Table(), c.output)
}

type exposureCmd struct {
	reportFlags
}

func (*exposureCmd) Name() string { return "exposure" }
func (*exposureCmd) Synopsis() string {
	return "look-through exposure of a weighted combination of ETFs"
}
func (*exposureCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) exposure [-o <file>] [<etf>[=<share>]...]

  Computes the weight of every asset in a combination of ETFs: the sum of
  the share of each ETF times the weight of the asset in that ETF.
  A share is a fraction (0.6) or a percentage (60%), and the shares must
  sum to 1. Without shares the combination is equally weighted over the
  arguments, the global -etfs list, or every ETF.

  etfa -d data exposure IVW=0.6 IWF=0.4
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *exposureCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	alloc, err := parseAllocation(argFunds(f))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, status := loadPortfolio(ctx, false)
	if p == nil {
		return status
	}

	r, err := holdings.Exposure(p, alloc, holdings.Options{Workers: settings.Workers})
	if errors.Is(err, holdings.ErrInvalidAllocation) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing exposure: %v\n", err)
		return subcommands.ExitFailure
	}
	funds := make([]string, len(r.Allocation))
	for i, a := range r.Allocation {
		funds[i] = a.Fund
	}
	warnMissing(p, funds)
	return emit(renderer.ExposureText(r), renderer.ExposureMarkdown(r), r.Table(), c.output)
}

// parseAllocation parses "FUND=SHARE" items. Either every item has a share
// or none has, in which case the funds are equally weighted.
func parseAllocation(items []string) ([]holdings.Allocation, error) {
	var (
		alloc  []holdings.Allocation
		funds  []string
		shared int
	)
	for _, item := range items {
		fund, share, ok := strings.Cut(item, "=")
		fund = strings.TrimSpace(fund)
		funds = append(funds, fund)
		if !ok {
			continue
		}
		shared++
		w, err := holdings.ParseWeight(share)
		if err != nil {
			return nil, fmt.Errorf("invalid share %q for %s: %w", share, fund, err)
		}
		s := float64(w)
		if strings.HasSuffix(strings.TrimSpace(share), "%") {
			s /= 100
		}
		alloc = append(alloc, holdings.Allocation{Fund: fund, Share: s})
	}
	switch shared {
	case 0:
		return holdings.EqualAllocation(funds...), nil
	case len(items):
		return alloc, nil
	default:
		return nil, fmt.Errorf("either every ETF has a share or none has")
	}
}
