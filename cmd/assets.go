package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct {
	reportFlags
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list every asset with the ETFs holding it" }
func (*assetsCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) assets [-o <file>] [-sort symbol|count]

  Lists every distinct asset of the portfolio, with the number of ETFs
  holding it and their names.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, true) }

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.Assets(p, opts)
	return emit(renderer.AssetsText(r), renderer.AssetsMarkdown(r), r.Table(), c.output)
}

type uniqueCmd struct {
	reportFlags
}

func (*uniqueCmd) Name() string     { return "unique" }
func (*uniqueCmd) Synopsis() string { return "list the assets held by a single ETF" }
func (*uniqueCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) unique [-o <file>]

  Lists the assets that appear in exactly one ETF, with their weight in
  that ETF, sorted by symbol.
`
}

func (c *uniqueCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *uniqueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.Unique(p, holdings.Options{Workers: settings.Workers})
	return emit(renderer.UniqueText(r), renderer.UniqueMarkdown(r), r.Table(), c.output)
}

type overlapCmd struct {
	reportFlags
}

func (*overlapCmd) Name() string     { return "overlap" }
func (*overlapCmd) Synopsis() string { return "list the assets held by several ETFs" }
func (*overlapCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) overlap [-o <file>] [-sort symbol|count]

  Lists the assets that appear in more than one ETF, one row per ETF
  holding the asset, with the weight of the asset in that ETF.
`
}

func (c *overlapCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, true) }

func (c *overlapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.Overlap(p, opts)
	return emit(renderer.OverlapText(r), renderer.OverlapMarkdown(r), r.Table(), c.output)
}
