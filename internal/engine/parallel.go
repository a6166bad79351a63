package engine

import (
	"context"
	"slices"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"golang.org/x/sync/errgroup"
)

type outcome struct {
	out *pallet.Pallet
	err error
}

func call(proc registry.Procedure, bays []*pallet.Pallet) outcome {
	out, err := proc(slices.Clone(bays))
	return outcome{out: out, err: err}
}

// evaluate runs the procedures of the ready pure stations concurrently.
// Results are only looked up, in station order, when the station's turn
// comes, so a station after an exit or a failure has no visible effect.
func (e *Engine) evaluate(ctx context.Context, ready []int) map[int]outcome {
	if e.opts.Workers < 2 {
		return nil
	}

	var pure []int
	for _, i := range ready {
		st := e.prog.Stations[i]
		if st.Behavior == registry.Generic && !e.reg.Kind(st.Kind).Effects {
			pure = append(pure, i)
		}
	}
	if len(pure) < 2 {
		return nil
	}

	results := make([]outcome, len(pure))
	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for k, i := range pure {
		st := e.prog.Stations[i]
		proc := e.reg.Kind(st.Kind).Procedure
		bays := slices.Clone(st.Bays)
		g.Go(func() error {
			results[k] = call(proc, bays)
			return nil
		})
	}
	_ = g.Wait()

	ctxlog.FromContext(ctx).Debug("Evaluated pure stations concurrently.", "step", e.steps, "count", len(pure))
	out := make(map[int]outcome, len(pure))
	for k, i := range pure {
		out[i] = results[k]
	}
	return out
}
