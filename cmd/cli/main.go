package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/factorygo/internal/app"
	"github.com/specialistvlad/factorygo/internal/cli"
)

// main is the entrypoint for the factory interpreter.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Usage text goes to outW; logs and diagnostics go to errW.
func run(ctx context.Context, in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	factory, err := app.NewApp(ctx, in, outW, errW, appConfig)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	if err := factory.Run(ctx); err != nil {
		return &cli.ExitError{Code: 1, Message: factory.RenderError(err)}
	}
	return nil
}
