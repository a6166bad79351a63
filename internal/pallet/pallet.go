// Package pallet defines the typed values that travel along conveyor belts.
package pallet

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Type identifies which variant a Pallet holds.
type Type uint8

const (
	EmptyType Type = iota
	BoolType
	CharType
	StringType
	IntType
	FloatType
)

func (t Type) String() string {
	switch t {
	case EmptyType:
		return "empty"
	case BoolType:
		return "bool"
	case CharType:
		return "char"
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Pallet is an immutable tagged value. The zero value is the Empty pallet.
// Pallets are plain values, so == compares them structurally.
type Pallet struct {
	t Type
	b bool
	c rune
	s string
	i int64
	f float64
}

// Empty, Bool, Char, String, Int and Float build a pallet of each variant.
func Empty() Pallet { return Pallet{} }
func Bool(b bool) Pallet { return Pallet{t: BoolType, b: b} }
func Char(c rune) Pallet { return Pallet{t: CharType, c: c} }
func String(s string) Pallet { return Pallet{t: StringType, s: s} }
func Int(i int64) Pallet { return Pallet{t: IntType, i: i} }
func Float(f float64) Pallet { return Pallet{t: FloatType, f: f} }
func (p Pallet) Type() Type { return p.t }
func (p Pallet) IsEmpty() bool { return p.t == EmptyType }

func (p Pallet) AsBool() (bool, bool) { return p.b, p.t == BoolType }
func (p Pallet) AsChar() (rune, bool) { return p.c, p.t == CharType }
func (p Pallet) AsString() (string, bool) { return p.s, p.t == StringType }
func (p Pallet) AsInt() (int64, bool) { return p.i, p.t == IntType }
func (p Pallet) AsFloat() (float64, bool) { return p.f, p.t == FloatType }

// Text returns the form written by the print stations.
func (p Pallet) Text() string {
	switch p.t {
	case BoolType:
		return strconv.FormatBool(p.b)
	case CharType:
		return string(p.c)
	case StringType:
		return p.s
	case IntType:
		return strconv.FormatInt(p.i, 10)
	case FloatType:
		return formatFloat(p.f)
	}
	return ""
}

// String returns the debug form used in diagnostics and logs.
func (p Pallet) String() string {
	switch p.t {
	case BoolType:
		return fmt.Sprintf("Pallet<b:%t>", p.b)
	case CharType:
		return fmt.Sprintf("Pallet<c:%s>", strconv.QuoteRune(p.c))
	case StringType:
		return fmt.Sprintf("Pallet<s:%s>", strconv.Quote(p.s))
	case IntType:
		return fmt.Sprintf("Pallet<i:%d>", p.i)
	case FloatType:
		return fmt.Sprintf("Pallet<f:%s>", formatFloat(p.f))
	}
	return "Pallet< >"
}

// LogValue implements slog.LogValuer.
func (p Pallet) LogValue() slog.Value {
	return slog.StringValue(p.String())
}

// Describe renders a list of optional pallets for error messages, for
// example "(Pallet<i:1>, None)".
func Describe(in []*Pallet) string {
	parts := make([]string, len(in))
	for i, p := range in {
		if p == nil {
			parts[i] = "None"
			continue
		}
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
