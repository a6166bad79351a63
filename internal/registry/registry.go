package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/factorygo/internal/pallet"
)

// Behavior is the closed set of ways the engine can fire a station.
type Behavior uint8

const (
	Generic Behavior = iota
	Start
	Exit
	Joint
	Assign
)

func (b Behavior) String() string {
	switch b {
	case Generic:
		return "generic"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case Joint:
		return "joint"
	case Assign:
		return "assign"
	}
	return fmt.Sprintf("Behavior(%d)", uint8(b))
}

// Procedure computes a generic station's output from its input bays. A nil
// result means the station emits nothing.
type Procedure func(in []*pallet.Pallet) (*pallet.Pallet, error)

// Kind describes one station type.
type Kind struct {
	ID    string
	Alias string

	// Inputs is the number of occupied bays required before the station fires.
	Inputs int
	// Output is set for kinds that feed exactly one belt onward.
	Output bool
	// Swallows allows a nil result even though Output is set.
	Swallows bool
	// Effects marks procedures that touch the outside world. They are never
	// evaluated ahead of their turn.
	Effects bool

	Behavior    Behavior
	Procedure   Procedure
	Description string
}

// Module is the interface that all station modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds station kinds in registration order.
type Registry struct {
	kinds []*Kind
	names map[string]int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{names: make(map[string]int)}
}

// Register appends a kind. It panics when the id or alias is already taken,
// as that can only be a programming error in a module.
func (r *Registry) Register(k *Kind) {
	if k.ID == "" {
		panic("station kind registered without an id")
	}
	for _, name := range []string{k.ID, k.Alias} {
		if name == "" {
			continue
		}
		if _, exists := r.names[name]; exists {
			panic(fmt.Sprintf("station identifier '%s' already registered", name))
		}
	}

	slog.Debug("Registering station kind.", "id", k.ID, "alias", k.Alias)
	r.kinds = append(r.kinds, k)
	idx := len(r.kinds) - 1
	r.names[k.ID] = idx
	if k.Alias != "" {
		r.names[k.Alias] = idx
	}
}

// Lookup returns the index of the kind whose id or alias equals name. Names
// are unique, so the first kind registered under a name is the one returned;
// a later claim on the same name panics in Register and changes nothing.
func (r *Registry) Lookup(name string) (int, bool) {
	idx, ok := r.names[name]
	return idx, ok
}

// Kind returns the kind at index i.
func (r *Registry) Kind(i int) *Kind {
	return r.kinds[i]
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}

// Kinds returns the kinds in registration order.
func (r *Registry) Kinds() []*Kind {
	out := make([]*Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}
