// Package logic provides the boolean stations.
package logic

import (
	"fmt"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the boolean stations with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Kind{
		ID: "and", Inputs: 2, Output: true,
		Procedure:   binary(func(a, b bool) bool { return a && b }),
		Description: "True when both pallets are true.",
	})
	r.Register(&registry.Kind{
		ID: "or", Inputs: 2, Output: true,
		Procedure:   binary(func(a, b bool) bool { return a || b }),
		Description: "True when either pallet is true.",
	})
	r.Register(&registry.Kind{
		ID: "not", Alias: "!", Inputs: 1, Output: true,
		Procedure:   Not,
		Description: "Inverts a bool.",
	})
}

func bools(in []*pallet.Pallet) ([]bool, error) {
	out := make([]bool, len(in))
	for i, p := range in {
		var ok bool
		if p != nil {
			out[i], ok = p.AsBool()
		}
		if !ok {
			return nil, fmt.Errorf("Expected bool pallets, received: %s", pallet.Describe(in))
		}
	}
	return out, nil
}

func binary(op func(a, b bool) bool) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		v, err := bools(in)
		if err != nil {
			return nil, err
		}
		out := pallet.Bool(op(v[0], v[1]))
		return &out, nil
	}
}

// Not inverts a single Bool pallet.
func Not(in []*pallet.Pallet) (*pallet.Pallet, error) {
	v, err := bools(in)
	if err != nil {
		return nil, err
	}
	out := pallet.Bool(!v[0])
	return &out, nil
}
