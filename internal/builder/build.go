package builder

import (
	"context"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/scanner"
	"github.com/specialistvlad/factorygo/internal/station"
	"github.com/specialistvlad/factorygo/internal/trace"
)

// Program is a fully wired factory, ready to hand to the engine.
type Program struct {
	Stations []*station.Station
	Start    int
	Assign   station.AssignTable
}

// Options tune a build.
type Options struct {
	Constants map[string]pallet.Pallet
	Sink      trace.Sink
	// FanOut lets any output station feed more than one belt. By default only
	// joints may.
	FanOut bool
}

// Build scans g and wires its stations into a program.
func Build(ctx context.Context, g *grid.Grid, reg *registry.Registry, opts Options) (*Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")
	sink := trace.OrNop(opts.Sink)

	scanned, err := scanner.Scan(ctx, g, reg, scanner.Options{Constants: opts.Constants, Sink: sink})
	if err != nil {
		return nil, err
	}
	stations := scanned.Stations

	logger.Debug("Build: Pass 1 - Tracing belts.")
	tracer := NewTracer(g)
	belts := 0
	for i, st := range stations {
		for _, pr := range Neighbors(g, st) {
			belt, err := tracer.Follow(pr)
			if err != nil {
				return nil, err
			}
			if belt == nil {
				continue
			}
			from, ok := station.At(stations, belt.Origin)
			if !ok {
				return nil, diag.Syntax(grid.SpanAt(belt.Origin, 1), "Detached belt, expected station at start of conveyor belt")
			}
			bay := len(st.Bays)
			st.Bays = append(st.Bays, nil)
			stations[from].Outputs = append(stations[from].Outputs, station.Target{Station: i, Bay: bay})
			sink.Belt(from, i, bay, len(belt.Cells))
			belts++
		}
	}

	logger.Debug("Build: Pass 2 - Validating stations.", "belts", belts)
	for _, st := range stations {
		if err := validate(st, reg.Kind(st.Kind), opts.FanOut); err != nil {
			return nil, err
		}
	}

	logger.Debug("Build: Pass 3 - Checking for unattached belts.")
	for line := 0; line < g.Lines(); line++ {
		for col, r := range g.Row(line) {
			p := grid.Pos{Line: line, Col: col}
			if grid.IsBelt(r) && !tracer.Visited(p) {
				return nil, diag.Syntax(grid.SpanAt(p, 1), "Unattached belt")
			}
		}
	}

	logger.Debug("Build: Graph construction complete.", "stations", len(stations), "belts", belts)
	return &Program{Stations: stations, Start: scanned.Start, Assign: scanned.Assign}, nil
}

func validate(st *station.Station, kind *registry.Kind, fanOut bool) error {
	inputs, outputs := len(st.Bays), len(st.Outputs)

	if st.Behavior == registry.Joint {
		if inputs == 0 {
			return diag.Syntax(st.Span, "Joint has no input belts: expected at least 1, found 0")
		}
		if outputs == 0 {
			return diag.Syntax(st.Span, "Joint has no output belts: expected at least 1, found 0")
		}
		return nil
	}

	if kind.Inputs > 0 && inputs != kind.Inputs {
		return diag.Syntax(st.Span, "Station %q has the wrong number of inputs: expected %d, found %d", kind.ID, kind.Inputs, inputs)
	}

	switch {
	case !kind.Output && outputs != 0:
		return diag.Syntax(st.Span, "Station %q produces no pallets but has output belts: expected 0, found %d", kind.ID, outputs)
	case kind.Output && fanOut && outputs == 0:
		return diag.Syntax(st.Span, "Station %q has no output belt: expected at least 1, found 0", kind.ID)
	case kind.Output && !fanOut && outputs != 1:
		return diag.Syntax(st.Span, "Station %q has the wrong number of outputs: expected 1, found %d", kind.ID, outputs)
	}
	return nil
}
