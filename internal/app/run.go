package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/interpreter"
	"github.com/specialistvlad/factorygo/internal/trace"
)

// Run reads the configured program and executes it to completion.
// Diagnostics from the interpreter are returned unwrapped; see RenderError.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.SourcePath)

	src, err := os.ReadFile(a.config.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}
	a.source = string(src)
	a.logger.Debug("Program read.", "bytes", len(src))

	var sink trace.Sink
	if a.config.Trace {
		sink = trace.NewLogSink(a.logger)
	}

	a.logger.Info("Starting factory run.", "workers", a.config.WorkerCount, "max_steps", a.config.MaxSteps)
	started := time.Now()
	res, err := interpreter.Run(ctx, a.source, a.registry, interpreter.Options{
		Sink:      sink,
		Constants: a.constants,
		Workers:   a.config.WorkerCount,
		MaxSteps:  a.config.MaxSteps,
		FanOut:    a.config.FanOut,
	})
	elapsed := time.Since(started)

	if a.config.Benchmark && res != nil {
		fmt.Fprintf(a.errW, "Finished %d steps in %s\n", res.Steps, elapsed)
	}
	if err != nil {
		return err
	}

	a.logger.Info("Factory run finished.", "steps", res.Steps, "exited", res.Exited, "elapsed", elapsed)
	return nil
}

// RenderError formats err for the terminal. Interpreter diagnostics are
// rendered against the program source with the offending span highlighted.
func (a *App) RenderError(err error) string {
	var derr *diag.Error
	if errors.As(err, &derr) {
		return derr.Pretty(a.source, a.config.Color)
	}
	return err.Error()
}
