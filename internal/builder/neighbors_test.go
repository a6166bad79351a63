package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/station"
)

func TestNeighborsOrder(t *testing.T) {
	t.Parallel()

	g := grid.New("abcde\nf[x]g\nhijkl")
	span := grid.SpanAt(grid.Pos{Line: 1, Col: 1}, 3)

	n := func(col int) Neighbor { return Neighbor{grid.Pos{Line: 0, Col: col}, grid.North} }
	s := func(col int) Neighbor { return Neighbor{grid.Pos{Line: 2, Col: col}, grid.South} }
	e := Neighbor{grid.Pos{Line: 1, Col: 4}, grid.East}
	w := Neighbor{grid.Pos{Line: 1, Col: 0}, grid.West}

	testCases := []struct {
		name string
		mods station.Modifiers
		want []Neighbor
	}{
		{"default", station.Modifiers{Priority: grid.North}, []Neighbor{n(1), n(2), n(3), e, s(3), s(2), s(1), w}},
		{"east first", station.Modifiers{Priority: grid.East}, []Neighbor{e, s(3), s(2), s(1), w, n(1), n(2), n(3)}},
		{"south first", station.Modifiers{Priority: grid.South}, []Neighbor{s(3), s(2), s(1), w, n(1), n(2), n(3), e}},
		{"west first", station.Modifiers{Priority: grid.West}, []Neighbor{w, n(1), n(2), n(3), e, s(3), s(2), s(1)}},
		{"reversed", station.Modifiers{Reverse: true, Priority: grid.North}, []Neighbor{n(3), n(2), n(1), w, s(1), s(2), s(3), e}},
		{"reversed east", station.Modifiers{Reverse: true, Priority: grid.East}, []Neighbor{e, n(3), n(2), n(1), w, s(1), s(2), s(3)}},
		{"reversed south", station.Modifiers{Reverse: true, Priority: grid.South}, []Neighbor{s(1), s(2), s(3), e, n(3), n(2), n(1), w}},
		{"reversed west", station.Modifiers{Reverse: true, Priority: grid.West}, []Neighbor{w, s(1), s(2), s(3), e, n(3), n(2), n(1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			st := &station.Station{Span: span, Modifiers: tc.mods}
			if diff := cmp.Diff(tc.want, Neighbors(g, st)); diff != "" {
				t.Errorf("Neighbors() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNeighborsSkipsOffGridCells(t *testing.T) {
	t.Parallel()

	g := grid.New("ab\n[x]")
	st := &station.Station{Span: grid.SpanAt(grid.Pos{Line: 1, Col: 0}, 3), Modifiers: station.DefaultModifiers}

	want := []Neighbor{
		{grid.Pos{Line: 0, Col: 0}, grid.North},
		{grid.Pos{Line: 0, Col: 1}, grid.North},
	}
	if diff := cmp.Diff(want, Neighbors(g, st)); diff != "" {
		t.Errorf("Neighbors() mismatch (-want +got):\n%s", diff)
	}
}
