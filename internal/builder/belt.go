package builder

import (
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
)

// Belt is a traced conveyor belt. Origin is the first cell past its
// double-line end, which must belong to the feeding station.
type Belt struct {
	Origin grid.Pos
	Cells  []grid.Pos
}

// Tracer follows belts from a receiving station back to their origin and
// remembers every glyph that a successful trace crossed.
type Tracer struct {
	g       *grid.Grid
	visited map[grid.Pos]bool
}

// NewTracer creates a tracer over g.
func NewTracer(g *grid.Grid) *Tracer {
	return &Tracer{g: g, visited: make(map[grid.Pos]bool)}
}

// Follow traces the belt starting at pr. It returns nil without error when the
// cell holds no single-line glyph pointing at the station, since most
// neighbours are not belts at all.
func (t *Tracer) Follow(pr Neighbor) (*Belt, error) {
	r, ok := t.g.At(pr.Pos)
	if !ok || !grid.IsSingle(r) || !grid.Connects(r, pr.Facing.Opposite()) {
		return nil, nil
	}

	pos, facing := pr.Pos, pr.Facing
	var cells []grid.Pos
	for {
		r, _ := t.g.At(pos)
		next, ok := grid.Turn(r, facing)
		if !ok {
			return nil, diag.Syntax(grid.SpanAt(pos, 1), "Dangling belt, expected station out bay")
		}
		cells = append(cells, pos)

		step := pos.Step(next)
		if !t.g.InBounds(step) {
			return nil, diag.Syntax(grid.SpanAt(pos, 1), "Dangling belt, unattached conveyor belt runs out of bounds")
		}
		if grid.IsDouble(r) {
			for _, c := range cells {
				t.visited[c] = true
			}
			return &Belt{Origin: step, Cells: cells}, nil
		}
		pos, facing = step, next
	}
}

// Visited reports whether a successful trace crossed p.
func (t *Tracer) Visited(p grid.Pos) bool {
	return t.visited[p]
}
