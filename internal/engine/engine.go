package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/factorygo/internal/builder"
	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/station"
	"github.com/specialistvlad/factorygo/internal/trace"
)

// Move is a pallet on its way to an input bay.
type Move struct {
	Pallet pallet.Pallet
	To     station.Target
}

// Options tune a run.
type Options struct {
	Sink trace.Sink
	// Workers bounds how many pure procedures are evaluated concurrently
	// within a step. Values below 2 evaluate everything in order.
	Workers int
	// MaxSteps aborts the run once this many steps have completed. Zero
	// means no limit.
	MaxSteps int
}

// Result summarises a finished run.
type Result struct {
	Steps   int
	Exited  bool
	Pending int
}

// Engine owns a program's stations for the duration of a run.
type Engine struct {
	prog *builder.Program
	reg  *registry.Registry
	opts Options
	sink trace.Sink

	pending []Move
	steps   int
	exited  bool
}

// New prepares prog for execution by placing one empty pallet on every belt
// leaving the start station.
func New(prog *builder.Program, reg *registry.Registry, opts Options) *Engine {
	e := &Engine{prog: prog, reg: reg, opts: opts, sink: trace.OrNop(opts.Sink)}
	for _, out := range prog.Stations[prog.Start].Outputs {
		e.pending = append(e.pending, Move{Pallet: pallet.Empty(), To: out})
	}
	return e
}

// Steps returns the number of steps started so far.
func (e *Engine) Steps() int {
	return e.steps
}

// Pending returns a copy of the moves waiting for the next step.
func (e *Engine) Pending() []Move {
	return slices.Clone(e.pending)
}

// Done reports whether the program has exited or gone quiet.
func (e *Engine) Done() bool {
	return e.exited || len(e.pending) == 0
}

// Run steps the program until it is done, the step limit is hit, or ctx is
// cancelled. Side effects of steps that already ran are kept on error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine starting.", "stations", len(e.prog.Stations), "seeded", len(e.pending))

	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return e.result(), fmt.Errorf("run interrupted after %d steps: %w", e.steps, err)
		}
		if err := e.Step(ctx); err != nil {
			logger.Debug("Engine stopped on error.", "step", e.steps, "error", err)
			return e.result(), err
		}
	}

	logger.Debug("Engine finished.", "steps", e.steps, "exited", e.exited)
	return e.result(), nil
}

func (e *Engine) result() *Result {
	return &Result{Steps: e.steps, Exited: e.exited, Pending: len(e.pending)}
}

// Step delivers the pending pallets and fires every ready station once.
func (e *Engine) Step(ctx context.Context) error {
	if e.Done() {
		return nil
	}
	if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps {
		return diag.Runtime(grid.NoSpan, "Exceeded the step limit of %d", e.opts.MaxSteps)
	}
	e.steps++
	e.sink.Step(e.steps, len(e.pending))

	stations := e.prog.Stations
	for _, mv := range e.pending {
		st := stations[mv.To.Station]
		if st.Bays[mv.To.Bay] != nil {
			return diag.Runtime(st.Span, "Station input bay %d is already occupied", mv.To.Bay)
		}
		p := mv.Pallet
		st.Bays[mv.To.Bay] = &p
	}

	ready := e.ready()
	early := e.evaluate(ctx, ready)

	var next []Move
	for _, i := range ready {
		st := stations[i]
		kind := e.reg.Kind(st.Kind)
		e.sink.Fire(e.steps, i, st.ID)

		switch st.Behavior {
		case registry.Exit:
			e.exited = true
			e.pending = next
			e.sink.Halt(e.steps, "exit")
			return nil

		case registry.Assign:
			lit, ok := e.prog.Assign[i]
			if !ok {
				return diag.Runtime(st.Span, "Failed to find the literal for assign station #%d", i)
			}
			next = e.emit(next, st, lit)

		case registry.Joint:
			for _, b := range st.Bays {
				if b != nil {
					next = e.emit(next, st, *b)
				}
			}

		default:
			res, ok := early[i]
			if !ok {
				res = call(kind.Procedure, st.Bays)
			}
			if res.err != nil {
				// Procedure messages are shown to the user verbatim, which is
				// why station modules capitalise them.
				return diag.Runtime(st.Span, "%s", res.err.Error())
			}
			switch {
			case res.out != nil && !kind.Output:
				return diag.Runtime(st.Span, "Station %q returned pallet unexpectedly", kind.ID)
			case res.out == nil && kind.Output && !kind.Swallows:
				return diag.Runtime(st.Span, "Station %q did not return pallet as expected", kind.ID)
			case res.out != nil:
				next = e.emit(next, st, *res.out)
			}
		}
		st.Clear()
	}

	e.pending = next
	if len(next) == 0 {
		e.sink.Halt(e.steps, "quiescent")
	}
	return nil
}

func (e *Engine) ready() []int {
	var ready []int
	for i, st := range e.prog.Stations {
		need := e.reg.Kind(st.Kind).Inputs
		if need > 0 && st.Occupied() >= need {
			ready = append(ready, i)
		}
	}
	return ready
}

func (e *Engine) emit(next []Move, st *station.Station, p pallet.Pallet) []Move {
	for _, out := range st.Outputs {
		next = append(next, Move{Pallet: p, To: out})
		e.sink.Move(e.steps, p, out.Station, out.Bay)
	}
	return next
}
