package grid

import "fmt"

// Direction is a cardinal direction of travel on the grid.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Pos is a zero-based (line, column) coordinate measured in runes.
type Pos struct {
	Line int
	Col  int
}

// Step returns the neighbouring position one cell away in direction d.
func (p Pos) Step(d Direction) Pos {
	switch d {
	case North:
		return Pos{p.Line - 1, p.Col}
	case East:
		return Pos{p.Line, p.Col + 1}
	case South:
		return Pos{p.Line + 1, p.Col}
	default:
		return Pos{p.Line, p.Col - 1}
	}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// Span is a run of Len cells starting at Pos on a single line. A zero-length
// span carries no location.
type Span struct {
	Pos
	Len int
}

// NoSpan is the span attached to errors that have no source location.
var NoSpan = Span{}

// SpanAt returns a span of length n starting at p.
func SpanAt(p Pos, n int) Span {
	return Span{Pos: p, Len: n}
}

// IsZero reports whether the span has no length.
func (s Span) IsZero() bool {
	return s.Len == 0
}

// End returns the column one past the last cell of the span.
func (s Span) End() int {
	return s.Col + s.Len
}

// Contains reports whether p lies inside the span.
func (s Span) Contains(p Pos) bool {
	return p.Line == s.Line && p.Col >= s.Col && p.Col < s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("%s +%d", s.Pos, s.Len)
}
