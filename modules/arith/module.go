// Package arith provides the arithmetic and comparison stations.
package arith

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Station errors are user-facing diagnostics and keep their capital letter.
var errDivideByZero = errors.New("Attempted divide by zero")

// Register registers the math stations with the registry.
func (m *Module) Register(r *registry.Registry) {
	binary := func(id, alias, desc string, proc registry.Procedure) {
		r.Register(&registry.Kind{ID: id, Alias: alias, Inputs: 2, Output: true, Procedure: proc, Description: desc})
	}
	unary := func(id, alias, desc string, proc registry.Procedure) {
		r.Register(&registry.Kind{ID: id, Alias: alias, Inputs: 1, Output: true, Procedure: proc, Description: desc})
	}

	binary("add", "+", "Adds two numbers, or appends a string or char to a string.", Add)
	binary("sub", "-", "Subtracts the second number from the first.", arithmetic(
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) (float64, error) { return a - b, nil },
	))
	binary("mult", "*", "Multiplies two numbers.", arithmetic(
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) (float64, error) { return a * b, nil },
	))
	binary("div", "/", "Divides the first number by the second.", arithmetic(
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a / b, nil
		},
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a / b, nil
		},
	))
	binary("mod", "%", "Remainder of dividing the first number by the second.", arithmetic(
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a % b, nil
		},
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return math.Mod(a, b), nil
		},
	))

	binary("eq", "=", "True when both pallets are identical.", equality(true))
	binary("ne", "!=", "True when the pallets differ.", equality(false))
	binary("gt", ">", "True when the first pallet is greater than the second.", comparison(greater))
	binary("lt", "<", "True when the first pallet is less than the second.", comparison(less))
	binary("gte", ">=", "True when the first pallet is greater than or equal to the second.", comparison(greaterEqual))
	binary("lte", "<=", "True when the first pallet is less than or equal to the second.", comparison(lessEqual))

	unary("inc", "++", "Adds one to a number.", step(1))
	unary("dec", "--", "Subtracts one from a number.", step(-1))
}

func numericalError(in []*pallet.Pallet) error {
	return fmt.Errorf("Expected numerical pallets, received: %s", pallet.Describe(in))
}

func present(in []*pallet.Pallet) bool {
	for _, p := range in {
		if p == nil {
			return false
		}
	}
	return true
}

func arithmetic(ints func(a, b int64) (int64, error), floats func(a, b float64) (float64, error)) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		if !present(in) {
			return nil, numericalError(in)
		}
		if a, ok := in[0].AsInt(); ok {
			if b, ok := in[1].AsInt(); ok {
				v, err := ints(a, b)
				if err != nil {
					return nil, err
				}
				out := pallet.Int(v)
				return &out, nil
			}
		}
		if a, ok := in[0].AsFloat(); ok {
			if b, ok := in[1].AsFloat(); ok {
				v, err := floats(a, b)
				if err != nil {
					return nil, err
				}
				out := pallet.Float(v)
				return &out, nil
			}
		}
		return nil, numericalError(in)
	}
}

var addNumbers = arithmetic(
	func(a, b int64) (int64, error) { return a + b, nil },
	func(a, b float64) (float64, error) { return a + b, nil },
)

// Add sums Int+Int and Float+Float, and concatenates String+String and
// String+Char.
func Add(in []*pallet.Pallet) (*pallet.Pallet, error) {
	if present(in) {
		if s, ok := in[0].AsString(); ok {
			if t, ok := in[1].AsString(); ok {
				out := pallet.String(s + t)
				return &out, nil
			}
			if c, ok := in[1].AsChar(); ok {
				out := pallet.String(s + string(c))
				return &out, nil
			}
			return nil, fmt.Errorf("Expected a string or char to append, received: %s", pallet.Describe(in))
		}
	}
	return addNumbers(in)
}

func step(delta int64) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		if !present(in) {
			return nil, numericalError(in)
		}
		if i, ok := in[0].AsInt(); ok {
			out := pallet.Int(i + delta)
			return &out, nil
		}
		if f, ok := in[0].AsFloat(); ok {
			out := pallet.Float(f + float64(delta))
			return &out, nil
		}
		return nil, numericalError(in)
	}
}

func equality(want bool) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		same := (in[0] == nil && in[1] == nil) ||
			(in[0] != nil && in[1] != nil && *in[0] == *in[1])
		out := pallet.Bool(same == want)
		return &out, nil
	}
}

type relation uint8

const (
	greater relation = iota
	less
	greaterEqual
	lessEqual
)

func holds[T int64 | float64](rel relation, a, b T) bool {
	switch rel {
	case greater:
		return a > b
	case less:
		return a < b
	case greaterEqual:
		return a >= b
	default:
		return a <= b
	}
}

func boolRank(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func comparison(rel relation) registry.Procedure {
	return func(in []*pallet.Pallet) (*pallet.Pallet, error) {
		if !present(in) || in[0].Type() != in[1].Type() {
			return nil, fmt.Errorf("Expected comparable pallets, received: %s", pallet.Describe(in))
		}
		var result bool
		switch in[0].Type() {
		case pallet.IntType:
			a, _ := in[0].AsInt()
			b, _ := in[1].AsInt()
			result = holds(rel, a, b)
		case pallet.FloatType:
			a, _ := in[0].AsFloat()
			b, _ := in[1].AsFloat()
			result = holds(rel, a, b)
		case pallet.BoolType:
			a, _ := in[0].AsBool()
			b, _ := in[1].AsBool()
			result = holds(rel, boolRank(a), boolRank(b))
		default:
			return nil, fmt.Errorf("Expected comparable pallets, received: %s", pallet.Describe(in))
		}
		out := pallet.Bool(result)
		return &out, nil
	}
}
