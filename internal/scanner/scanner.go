// Package scanner discovers the station and literal tokens in a factory
// program.
//
// Tokens are `[id]`, `[id:MODS]` and `{literal}`. They are recognised by a
// small state machine walking the grid in row-major order. Row ends are
// invisible to it, so a token left open at the end of a row continues at the
// start of the next non-empty row.
package scanner

import (
	"context"
	"strings"

	"github.com/specialistvlad/factorygo/internal/ctxlog"
	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/specialistvlad/factorygo/internal/registry"
	"github.com/specialistvlad/factorygo/internal/station"
	"github.com/specialistvlad/factorygo/internal/trace"
)

const (
	jointID  = "joint"
	assignID = "assign"
)

// Options tune a scan.
type Options struct {
	// Constants are named literals available to `{name}` tokens in addition
	// to the built-in pi and e.
	Constants map[string]pallet.Pallet
	Sink      trace.Sink
}

// Result is the output of a successful scan.
type Result struct {
	Stations []*station.Station
	Assign   station.AssignTable
	Start    int
}

type state uint8

const (
	stateDefault state = iota
	stateStationID
	stateModifiers
	stateLiteral
)

type scanner struct {
	g    *grid.Grid
	reg  *registry.Registry
	opts Options
	sink trace.Sink

	state    state
	start    grid.Pos
	text     strings.Builder
	mods     station.Modifiers
	dirSet   bool
	escaping bool

	stations []*station.Station
	assign   station.AssignTable
}

// Scan finds every token in g, resolving station identifiers against reg.
func Scan(ctx context.Context, g *grid.Grid, reg *registry.Registry, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if g.Cells() == 0 {
		return nil, diag.Syntax(grid.NoSpan, "Empty source")
	}

	s := &scanner{
		g:      g,
		reg:    reg,
		opts:   opts,
		sink:   trace.OrNop(opts.Sink),
		assign: make(station.AssignTable),
	}
	for line := 0; line < g.Lines(); line++ {
		for col, r := range g.Row(line) {
			if err := s.next(grid.Pos{Line: line, Col: col}, r); err != nil {
				return nil, err
			}
		}
	}
	if s.state != stateDefault {
		return nil, s.unterminated()
	}

	start, err := station.FindStart(s.stations)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scan complete.", "stations", len(s.stations), "literals", len(s.assign), "start", start)
	return &Result{Stations: s.stations, Assign: s.assign, Start: start}, nil
}

func (s *scanner) begin(st state, p grid.Pos) {
	s.state = st
	s.start = p
	s.text.Reset()
	s.mods = station.DefaultModifiers
	s.dirSet = false
	s.escaping = false
}

func (s *scanner) next(p grid.Pos, r rune) error {
	switch s.state {
	case stateDefault:
		switch r {
		case '[':
			s.begin(stateStationID, p)
		case '{':
			s.begin(stateLiteral, p)
		case ']', '}':
			return diag.Syntax(grid.SpanAt(p, 1), "Unexpected %q outside of a token", r)
		}

	case stateStationID:
		switch {
		case r == ']':
			return s.finishStation(p)
		case r == ':':
			s.state = stateModifiers
		case isIdentRune(r):
			s.text.WriteRune(r)
		default:
			return diag.Syntax(grid.SpanAt(p, 1), "Invalid character %q in station identifier", r)
		}

	case stateModifiers:
		switch r {
		case ']':
			return s.finishStation(p)
		case '~':
			s.mods.Reverse = !s.mods.Reverse
		case 'N', 'E', 'S', 'W':
			if s.dirSet {
				return diag.Syntax(grid.SpanAt(p, 1), "Station priority direction specified more than once")
			}
			s.mods.Priority = priorities[r]
			s.dirSet = true
		default:
			return diag.Syntax(grid.SpanAt(p, 1), "Invalid station modifier %q, expected one of N, E, S, W or ~", r)
		}

	case stateLiteral:
		if s.escaping {
			s.text.WriteRune(unescape(r))
			s.escaping = false
			return nil
		}
		switch r {
		case '\\':
			s.escaping = true
		case '}':
			return s.finishLiteral(p)
		default:
			s.text.WriteRune(r)
		}
	}
	return nil
}

var priorities = map[rune]grid.Direction{
	'N': grid.North,
	'E': grid.East,
	'S': grid.South,
	'W': grid.West,
}

func isIdentRune(r rune) bool {
	return r > ' ' && r < 0x7f
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return r
}

func (s *scanner) unterminated() error {
	span := s.firstRowSpan()
	if s.state == stateLiteral {
		return diag.Syntax(span, "Unterminated literal, expected '}' before the end of the source")
	}
	return diag.Syntax(span, "Unterminated station, expected ']' before the end of the source")
}

// tokenSpan covers the current token up to end. A token that wrapped onto a
// later row is clipped to the row it started on.
func (s *scanner) tokenSpan(end grid.Pos) grid.Span {
	if end.Line != s.start.Line {
		return s.firstRowSpan()
	}
	return grid.SpanAt(s.start, end.Col-s.start.Col+1)
}

func (s *scanner) firstRowSpan() grid.Span {
	return grid.SpanAt(s.start, len(s.g.Row(s.start.Line))-s.start.Col)
}

func (s *scanner) add(span grid.Span, name string) (int, error) {
	idx, ok := s.reg.Lookup(name)
	if !ok {
		return -1, diag.Identifier(span, "Failed to find station type with identifier %q", name)
	}
	kind := s.reg.Kind(idx)
	s.stations = append(s.stations, &station.Station{
		Span:      span,
		ID:        kind.ID,
		Kind:      idx,
		Behavior:  kind.Behavior,
		Modifiers: s.mods,
	})
	index := len(s.stations) - 1
	s.sink.Station(index, kind.ID, span)
	return index, nil
}

func (s *scanner) finishStation(end grid.Pos) error {
	s.state = stateDefault
	name := s.text.String()
	if name == "" {
		name = jointID
	}
	_, err := s.add(s.tokenSpan(end), name)
	return err
}

func (s *scanner) finishLiteral(end grid.Pos) error {
	s.state = stateDefault
	span := s.tokenSpan(end)
	lit, err := parseLiteral(s.text.String(), span, s.opts.Constants)
	if err != nil {
		return err
	}
	index, err := s.add(span, assignID)
	if err != nil {
		return err
	}
	s.assign[index] = lit
	return nil
}
