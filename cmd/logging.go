package cmd

import (
	"os"

	"github.com/phuslu/log"
)

// setupLogging configures the default logger used by the holdings package:
// human readable lines on stderr, warnings only unless verbose.
func setupLogging(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	log.DefaultLogger = log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:      os.Stderr,
			ColorOutput: isTerminal(os.Stderr),
		},
	}
}

// isTerminal reports whether 'f' is an interactive terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
