// Package interpreter runs factory programs from source text to completion.
package interpreter

import (
	"context"

	"github.com/specialistvlad/factorygo/internal/builder"
	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/engine"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/trace"
)

// Options configure a single run.
type Options struct {
	Sink      trace.Sink
	Constants map[string]pallet.Pallet
	Workers   int
	MaxSteps  int
	FanOut    bool
}

// Run parses src, wires its stations together and executes the result.
// Parse and wiring failures are returned before any station fires.
func Run(ctx context.Context, src string, reg *registry.Registry, opts Options) (*engine.Result, error) {
	logger := ctxlog.FromContext(ctx)

	prog, err := Compile(ctx, src, reg, opts)
	if err != nil {
		return nil, err
	}

	e := engine.New(prog, reg, engine.Options{
		Sink:     opts.Sink,
		Workers:  opts.Workers,
		MaxSteps: opts.MaxSteps,
	})
	res, err := e.Run(ctx)
	if err != nil {
		return res, err
	}
	logger.Info("Program finished.", "steps", res.Steps, "exited", res.Exited)
	return res, nil
}

// Compile parses and wires src without running it.
func Compile(ctx context.Context, src string, reg *registry.Registry, opts Options) (*builder.Program, error) {
	g := grid.New(src)
	ctxlog.FromContext(ctx).Debug("Source loaded.", "lines", g.Lines())
	return builder.Build(ctx, g, reg, builder.Options{
		Constants: opts.Constants,
		Sink:      opts.Sink,
		FanOut:    opts.FanOut,
	})
}
