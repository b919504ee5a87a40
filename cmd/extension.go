package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/phuslu/log"
)

// RunExtension attempts to find and execute an external etfa-<subcommand>
// binary. The effective settings are passed through the ETFA_*
// environment variables, so that the extension can read them with
// config.Load.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "etfa-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Str("extension", externalCmdName).Err(err).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the settings as environment variables.
func extensionEnv() []string {
	return []string{
		"ETFA_DATA_DIR=" + settings.DataDir,
		"ETFA_IMPORT=" + settings.Import,
		"ETFA_ETFS=" + strings.Join(settings.ETFs, ","),
		"ETFA_SORT_BY=" + settings.SortBy,
		"ETFA_WORKERS=" + strconv.Itoa(settings.Workers),
		"ETFA_VERBOSE=" + strconv.FormatBool(settings.Verbose),
	}
}
