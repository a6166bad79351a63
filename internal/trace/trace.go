// Package trace defines the sink that preprocessing and execution report
// their progress to. A sink is passed in explicitly; nothing here is global.
package trace

import (
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
)

// Sink receives progress events from the scanner, builder and engine.
type Sink interface {
	// Station is called once per station token, in discovery order.
	Station(index int, id string, span grid.Span)
	// Belt is called when a belt of the given length in cells wires station
	// from to bay of station to.
	Belt(from, to, bay, cells int)
	// Step is called at the start of every engine step with the number of
	// pallets about to be delivered.
	Step(step, moves int)
	// Fire is called for every station that fires.
	Fire(step, index int, id string)
	// Move is called for every pallet emitted towards a bay.
	Move(step int, p pallet.Pallet, to, bay int)
	// Halt is called once when the engine stops.
	Halt(step int, reason string)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Station(int, string, grid.Span) {}
func (Nop) Belt(int, int, int, int) {}
func (Nop) Step(int, int) {}
func (Nop) Fire(int, int, string) {}
func (Nop) Move(int, pallet.Pallet, int, int) {}
func (Nop) Halt(int, string) {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}
