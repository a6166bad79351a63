// Package diag defines the errors reported while preprocessing and running a
// factory program, and renders them against the source they came from.
package diag

import (
	"fmt"

	"github.com/specialistvlad/factorygo/internal/grid"
)

// Kind classifies an Error.
type Kind uint8

const (
	SyntaxKind Kind = iota
	IdentifierKind
	RuntimeKind
)

func (k Kind) String() string {
	switch k {
	case SyntaxKind:
		return "Syntax Error"
	case IdentifierKind:
		return "Identifier Error"
	case RuntimeKind:
		return "Runtime Error"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is a located diagnostic. A zero Span means the error has no source
// location.
type Error struct {
	Kind Kind
	Span grid.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s @ %s: %s", e.Kind, e.Span, e.Msg)
}

func newError(kind Kind, span grid.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Syntax reports malformed source: bad tokens, belts or arity.
func Syntax(span grid.Span, format string, args ...any) *Error {
	return newError(SyntaxKind, span, format, args...)
}

// Identifier reports a station identifier missing from the registry.
func Identifier(span grid.Span, format string, args ...any) *Error {
	return newError(IdentifierKind, span, format, args...)
}

// Runtime reports a failure while the program executes.
func Runtime(span grid.Span, format string, args ...any) *Error {
	return newError(RuntimeKind, span, format, args...)
}
