package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/seedweave/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// or missing plan path), or an ExitError for usage problems.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("seedweave", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
seedweave - dependency-ordered data seeding.

Usage:
  seedweave [options] [PLAN_PATH]

Arguments:
  PLAN_PATH
    Path to a single .hcl plan file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	dryRunFlag := flagSet.Bool("dry-run", false, "Resolve and print the execution order without executing.")
	continueFlag := flagSet.Bool("continue-on-failure", false, "Keep executing independent branches after a seeder fails.")
	cacheDirFlag := flagSet.String("cache-dir", "", "Directory for the persistent step cache. Empty uses an in-memory cache.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed for the fake-data stream. 0 is non-deterministic.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable terminal styling in the report output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *planFlag != "":
		path = *planFlag
	case *pFlag != "":
		path = *pFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		PlanPath:          path,
		DryRun:            *dryRunFlag,
		ContinueOnFailure: *continueFlag,
		CacheDir:          *cacheDirFlag,
		Seed:              *seedFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
		NoColor:           *noColorFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
