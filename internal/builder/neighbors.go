package builder

import (
	"slices"

	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/station"
)

// Neighbor is a cell adjacent to a station, and the direction a trace walks
// when it leaves the station through that cell.
type Neighbor struct {
	Pos    grid.Pos
	Facing grid.Direction
}

// Neighbors returns the in-bounds cells around st in search order.
//
// North cells run left to right and south cells right to left, so the
// default order walks clockwise around the station starting at its
// priority side. A reversed station walks counter-clockwise, which also
// flips the order within the north and south rows.
func Neighbors(g *grid.Grid, st *station.Station) []Neighbor {
	span := st.Span
	var sides [4][]Neighbor

	for col := span.Col; col < span.End(); col++ {
		if p := (grid.Pos{Line: span.Line - 1, Col: col}); g.InBounds(p) {
			sides[grid.North] = append(sides[grid.North], Neighbor{p, grid.North})
		}
	}
	if p := (grid.Pos{Line: span.Line, Col: span.End()}); g.InBounds(p) {
		sides[grid.East] = append(sides[grid.East], Neighbor{p, grid.East})
	}
	for col := span.End() - 1; col >= span.Col; col-- {
		if p := (grid.Pos{Line: span.Line + 1, Col: col}); g.InBounds(p) {
			sides[grid.South] = append(sides[grid.South], Neighbor{p, grid.South})
		}
	}
	if p := (grid.Pos{Line: span.Line, Col: span.Col - 1}); g.InBounds(p) {
		sides[grid.West] = append(sides[grid.West], Neighbor{p, grid.West})
	}

	mods := st.Modifiers
	out := make([]Neighbor, 0, 2*span.Len+2)
	for i := 0; i < 4; i++ {
		var d grid.Direction
		if mods.Reverse {
			d = (mods.Priority + 4 - grid.Direction(i)) % 4
		} else {
			d = (mods.Priority + grid.Direction(i)) % 4
		}
		side := sides[d]
		if mods.Reverse && (d == grid.North || d == grid.South) {
			side = slices.Clone(side)
			slices.Reverse(side)
		}
		out = append(out, side...)
	}
	return out
}
