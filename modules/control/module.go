// Package control provides the station kinds that steer pallets rather than
// compute with them.
package control

import (
	"fmt"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the control stations with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Kind{
		ID:          "start",
		Output:      true,
		Behavior:    registry.Start,
		Description: "Entry point. Emits one empty pallet when the program starts.",
	})
	r.Register(&registry.Kind{
		ID:          "exit",
		Inputs:      1,
		Behavior:    registry.Exit,
		Description: "Stops the program as soon as any pallet arrives.",
	})
	r.Register(&registry.Kind{
		ID:          "joint",
		Inputs:      1,
		Output:      true,
		Behavior:    registry.Joint,
		Description: "Written as []. Forwards every pallet it receives to every outgoing belt.",
	})
	r.Register(&registry.Kind{
		ID:          "assign",
		Inputs:      1,
		Output:      true,
		Behavior:    registry.Assign,
		Description: "Written as {literal}. Replaces the incoming pallet with the literal.",
	})
	r.Register(&registry.Kind{
		ID:          "gate",
		Inputs:      2,
		Output:      true,
		Swallows:    true,
		Procedure:   Gate,
		Description: "Takes a bool and a pallet. Passes the pallet on when the bool is true.",
	})
	r.Register(&registry.Kind{
		ID:          "filter",
		Alias:       "X",
		Inputs:      1,
		Output:      true,
		Swallows:    true,
		Procedure:   Filter,
		Description: "Drops false, passes anything else on.",
	})
}

// Gate emits the second pallet when the first is Bool(true) and nothing when
// it is Bool(false).
func Gate(in []*pallet.Pallet) (*pallet.Pallet, error) {
	if in[0] == nil || in[1] == nil {
		return nil, fmt.Errorf("Expected a bool pallet and a pallet, received: %s", pallet.Describe(in))
	}
	open, ok := in[0].AsBool()
	if !ok {
		return nil, fmt.Errorf("Expected a bool pallet and a pallet, received: %s", pallet.Describe(in))
	}
	if !open {
		return nil, nil
	}
	out := *in[1]
	return &out, nil
}

// Filter swallows Bool(false) and passes everything else through.
func Filter(in []*pallet.Pallet) (*pallet.Pallet, error) {
	if in[0] == nil {
		return nil, fmt.Errorf("Expected a pallet, received: %s", pallet.Describe(in))
	}
	if b, ok := in[0].AsBool(); ok && !b {
		return nil, nil
	}
	out := *in[0]
	return &out, nil
}
