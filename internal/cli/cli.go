package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/factorygo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// colorDefault reports whether diagnostics are coloured when -no-color is
// absent. Replaced in tests.
var colorDefault = func() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// flagKeys maps flag names to the setting they control.
var flagKeys = map[string]string{
	"log-level":  app.KeyLogLevel,
	"log-format": app.KeyLogFormat,
	"no-color":   app.KeyColor,
	"trace":      app.KeyTrace,
	"b":          app.KeyBenchmark,
	"benchmark":  app.KeyBenchmark,
	"workers":    app.KeyWorkers,
	"max-steps":  app.KeyMaxSteps,
	"fan-out":    app.KeyFanOut,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("factory", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
factory - An interpreter for two-dimensional conveyor belt programs.

Usage:
  factory [options] FILE

Arguments:
  FILE
    Path to the program to run. Its standard input and output are the
    process streams; logs and diagnostics go to stderr.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .hcl or .toml settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable coloured diagnostics.")
	var benchmark bool
	flagSet.BoolVar(&benchmark, "benchmark", false, "Print the step count and elapsed time after the run.")
	flagSet.BoolVar(&benchmark, "b", false, "Print the step count and elapsed time after the run (shorthand).")
	traceFlag := flagSet.Bool("trace", false, "Log every scanned station, wired belt and engine step at debug level.")
	workersFlag := flagSet.Int("workers", 1, "Number of pure stations evaluated concurrently within a step.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Abort after this many steps. 0 is unlimited.")
	fanOutFlag := flagSet.Bool("fan-out", false, "Allow any station to feed more than one output belt.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No program provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one program, got %d", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}
	if *maxStepsFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-steps: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			explicit[key] = true
		}
	})

	config, err := app.NewConfig(app.Config{
		SourcePath:  flagSet.Arg(0),
		ConfigPath:  *configFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Color:       !*noColorFlag && colorDefault(),
		Trace:       *traceFlag,
		Benchmark:   benchmark,
		WorkerCount: *workersFlag,
		MaxSteps:    *maxStepsFlag,
		FanOut:      *fanOutFlag,
		Explicit:    explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
