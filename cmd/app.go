// Package cmd implements the etfa command line application, analyzing the
// holdings of a set of ETFs.
package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/holdings/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, then Setup()
// once the flags are parsed, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	for _, cmd := range commands {
		c.Register(cmd.Command, cmd.group)
	}
	c.Register(&topicCmd{}, "help")
}

// command is a registered subcommand and the group it is listed under.
type command struct {
	subcommands.Command
	group string
}

var commands = []command{
	{&summaryCmd{}, "reports"},
	{&listCmd{}, "reports"},
	{&assetsCmd{}, "reports"},
	{&uniqueCmd{}, "reports"},
	{&overlapCmd{}, "reports"},
	{&mappingCmd{}, "reports"},
	{&compareCmd{}, "reports"},
	{&correlationCmd{}, "reports"},
	{&exposureCmd{}, "reports"},
	{&exportCmd{}, "data"},
}

// Known reports whether 'name' is a subcommand of etfa.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands", "topic":
		return true
	}
	for _, c := range commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Configuration file (.toml or .yaml). Defaults to the first of ./.etf_analyzer.toml, $XDG_CONFIG_HOME/etf_analyzer/config.toml, ~/.etf_analyzer.toml")
	dataDir    = flag.String("d", "", "Directory of the {fund}-etf-holdings.{csv,json} extracts")
	importFile = flag.String("i", "", "Portfolio export (.parquet, .csv or .jsonl) to analyze instead of a directory")
	etfs       = flag.String("etfs", "", "Comma separated list of ETFs to analyze, all by default")
	workers    = flag.Int("workers", 0, "Number of parallel workers, 0 for the number of CPUs")
	verbose    = flag.Bool("v", false, "Enable verbose (debug) logging")
	force      = flag.Bool("force", false, "Overwrite existing output files without prompting")
	jsonRows   = flag.String("json-rows", "", "JSONPath selecting the rows of JSON extracts, '$' by default")
	symbolCol  = flag.String("symbol-col", "", "Name of the symbol column of the extracts")
	nameCol    = flag.String("name-col", "", "Name of the asset name column of the extracts")
	weightCol  = flag.String("weight-col", "", "Name of the weight column of the extracts")
	sharesCol  = flag.String("shares-col", "", "Name of the shares column of the extracts")
	numberCol  = flag.String("number-col", "", "Name of the row number column of the extracts")
)

// settings are the effective settings: flags over environment over
// configuration file over defaults. They are set by Setup.
var settings = config.Default()

// Setup loads the configuration, applies the global flags set on the
// command line, and configures logging. It returns the subcommand to run
// when none is given.
func Setup() (function string, err error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return "", err
	}

	flag.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "d":
			cfg.DataDir = v
		case "i":
			cfg.Import = v
		case "etfs":
			cfg.ETFs = config.SplitList(v)
		case "workers":
			cfg.Workers, _ = strconv.Atoi(v)
		case "v":
			cfg.Verbose, _ = strconv.ParseBool(v)
		case "force":
			cfg.Force, _ = strconv.ParseBool(v)
		case "json-rows":
			cfg.JSONRows = v
		case "symbol-col":
			cfg.Columns.Symbol = v
		case "name-col":
			cfg.Columns.Name = v
		case "weight-col":
			cfg.Columns.Weight = v
		case "shares-col":
			cfg.Columns.Shares = v
		case "number-col":
			cfg.Columns.Number = v
		}
	})
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	settings = cfg

	setupLogging(cfg.Verbose)

	if !Known(cfg.Function) {
		return "", fmt.Errorf("unknown function %q in configuration", cfg.Function)
	}
	return cfg.Function, nil
}
