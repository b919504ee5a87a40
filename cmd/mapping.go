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

type mappingCmd struct {
	reportFlags
	chart string
}

func (*mappingCmd) Name() string     { return "mapping" }
func (*mappingCmd) Synopsis() string { return "map every asset to its ETFs, with the ETF count distribution" }
func (*mappingCmd) Usage() string {
	return `etfa (-d <dir> | -i <file>) mapping [-o <file>] [-sort symbol|count] [-chart <file.png|file.svg>]

  Maps every asset to the ETFs holding it, and shows how many assets are
  held by 1, 2, ... ETFs. With -chart, this distribution is also drawn as a
  bar chart.
`
}

func (c *mappingCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f, true)
	f.StringVar(&c.chart, "chart", "", "Draw the ETF count distribution to this image file (.png or .svg)")
}

func (c *mappingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, status := loadPortfolio(ctx, true)
	if p == nil {
		return status
	}
	r := holdings.Mapping(p, opts)

	if c.chart != "" {
		if status := c.drawChart(r); status != subcommands.ExitSuccess {
			return status
		}
	}
	return emit(renderer.MappingText(r), renderer.MappingMarkdown(r), r.Table(), c.output)
}

func (c *mappingCmd) drawChart(r *holdings.MappingReport) subcommands.ExitStatus {
	format, err := renderer.ChartFormat(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(r.Histogram) == 0 {
		// an empty result is not a failure, the report is still printed
		fmt.Fprintf(os.Stderr, "No asset to draw, skipped chart %s\n", c.chart)
		return subcommands.ExitSuccess
	}
	ok, err := confirmOverwrite(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking chart file %q: %v\n", c.chart, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Skipped writing %s\n", c.chart)
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := renderer.HistogramChart(out, format, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Chart saved to: %s\n", c.chart)
	return subcommands.ExitSuccess
}
