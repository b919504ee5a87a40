package cmd

import (
	"context"
	"flag"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	reportFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the number of assets of every ETF" }
func (*summaryCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) summary [-o <file>]

  Displays the total number of ETFs and holdings, the largest and the
  smallest ETF, and for every ETF its distinct assets.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.Summary(p)
	return emit(renderer.SummaryText(r), renderer.SummaryMarkdown(r), r.Table(), c.output)
}

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	reportFlags
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the ETFs of the portfolio" }
func (*listCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) list [-o <file>]

  Lists the ETFs found in the data directory or the export, sorted.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.List(p)
	return emit(renderer.ListText(r), renderer.ListMarkdown(r), r.Table(), c.output)
}
