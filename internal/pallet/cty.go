package pallet

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a configuration value into a pallet. Strings become String
// pallets, booleans Bool, integral numbers that fit in 64 bits Int, and any
// other number Float.
func FromCty(v cty.Value) (Pallet, error) {
	if v.IsNull() {
		return Empty(), nil
	}
	if !v.IsKnown() {
		return Pallet{}, fmt.Errorf("value is not known")
	}

	switch v.Type() {
	case cty.String:
		return String(v.AsString()), nil
	case cty.Bool:
		return Bool(v.True()), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return Int(i), nil
			}
		}
		f, _ := bf.Float64()
		return Float(f), nil
	}
	return Pallet{}, fmt.Errorf("unsupported value type %s", v.Type().FriendlyName())
}
