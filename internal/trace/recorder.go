package trace

import (
	"fmt"
	"sync"

	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
)

// Recorder keeps a one-line description of every event, in order. It is
// meant for tests and debugging tools.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *Recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Station(index int, id string, span grid.Span) {
	r.add("station %d %s @ %s", index, id, span)
}

func (r *Recorder) Belt(from, to, bay, cells int) {
	r.add("belt %d -> %d.%d (%d cells)", from, to, bay, cells)
}

func (r *Recorder) Step(step, moves int) {
	r.add("step %d moves=%d", step, moves)
}

func (r *Recorder) Fire(step, index int, id string) {
	r.add("fire %d %d %s", step, index, id)
}

func (r *Recorder) Move(step int, p pallet.Pallet, to, bay int) {
	r.add("move %d %s -> %d.%d", step, p, to, bay)
}

func (r *Recorder) Halt(step int, reason string) {
	r.add("halt %d %s", step, reason)
}
