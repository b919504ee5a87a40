// Command etfa analyzes the holdings of a set of ETFs: the assets they
// share, the assets only one of them holds, and their weights side by side.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/holdings/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when called by the shell to complete the command line
	cmd.Completion().Complete("etfa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	function, err := cmd.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if flag.NArg() == 0 {
		// run the configured function, "summary" by default
		flag.CommandLine.Parse([]string{function})
	}
	if name := flag.Arg(0); !cmd.Known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
