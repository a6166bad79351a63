// Package station holds the station instances discovered in a program and the
// literal table for its assign stations.
package station

import (
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// Modifiers control the order in which a station's neighbouring cells are
// searched for incoming belts.
type Modifiers struct {
	Reverse  bool
	Priority grid.Direction
}

// DefaultModifiers search clockwise starting north.
var DefaultModifiers = Modifiers{Priority: grid.North}

// Target addresses an input bay on another station.
type Target struct {
	Station int
	Bay     int
}

// Station is one bracketed token in the source. Its identity is its index in
// the program's station list.
type Station struct {
	Span      grid.Span
	ID        string
	Kind      int
	Behavior  registry.Behavior
	Modifiers Modifiers

	// Bays holds one slot per incoming belt, in the order the belts were found.
	Bays    []*pallet.Pallet
	Outputs []Target
}

// Occupied returns the number of bays currently holding a pallet.
func (s *Station) Occupied() int {
	n := 0
	for _, b := range s.Bays {
		if b != nil {
			n++
		}
	}
	return n
}

// Clear empties every bay.
func (s *Station) Clear() {
	for i := range s.Bays {
		s.Bays[i] = nil
	}
}

// AssignTable maps the index of each assign station to its literal.
type AssignTable map[int]pallet.Pallet

// FindStart returns the index of the single start station.
func FindStart(stations []*Station) (int, error) {
	start := -1
	for i, st := range stations {
		if st.Behavior != registry.Start {
			continue
		}
		if start >= 0 {
			return -1, diag.Syntax(st.Span, "Found multiple start stations, a program must have exactly one")
		}
		start = i
	}
	if start < 0 {
		return -1, diag.Syntax(grid.NoSpan, "Failed to find a start station")
	}
	return start, nil
}

// At returns the index of the station whose span contains p.
func At(stations []*Station, p grid.Pos) (int, bool) {
	for i, st := range stations {
		if st.Span.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
