package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

// printMarkdown prints a markdown document on stdout, styled when stdout is
// a terminal and raw otherwise.
func printMarkdown(md string) {
	if !isTerminal(os.Stdout) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirmOverwrite asks on stdin whether an existing 'path' can be
// replaced. It is true if the file does not exist or -force is set.
func confirmOverwrite(path string) (bool, error) {
	if settings.Force {
		return true, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, err
	}

	fmt.Fprintf(os.Stderr, "File %s already exists. Overwrite? [y/N] ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && answer == "" {
		// no answer, closed stdin
		fmt.Fprintln(os.Stderr)
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// writeReport writes a report table to 'output', CSV unless the extension
// says otherwise.
func writeReport(output string, t *holdings.Table) subcommands.ExitStatus {
	path, _, err := holdings.ResolveFormat(output, holdings.CSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ok, err := confirmOverwrite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking output file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Skipped writing %s\n", path)
		return subcommands.ExitSuccess
	}

	if _, err := holdings.WriteTable(path, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report saved to: %s\n", path)
	return subcommands.ExitSuccess
}

// emit prints the text summary of a report, then either writes its table
// to 'output' or prints it as markdown.
func emit(text, markdown string, t *holdings.Table, output string) subcommands.ExitStatus {
	fmt.Println(text)
	if output != "" {
		return writeReport(output, t)
	}
	fmt.Println()
	printMarkdown(markdown)
	return subcommands.ExitSuccess
}
