package grid

import "strings"

// Grid is a ragged, row-major view of a source text. Rows may have different
// lengths; cells past the end of a row are out of bounds.
type Grid struct {
	rows  [][]rune
	cells int
}

// New splits source on newlines into a grid. A trailing carriage return on a
// row is dropped so CRLF sources line up with LF ones.
func New(source string) *Grid {
	lines := strings.Split(source, "\n")
	g := &Grid{rows: make([][]rune, len(lines))}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		g.rows[i] = []rune(line)
		g.cells += len(g.rows[i])
	}
	return g
}

// Lines returns the number of rows.
func (g *Grid) Lines() int {
	return len(g.rows)
}

// Row returns the runes of row i, or nil when i is out of range.
func (g *Grid) Row(i int) []rune {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Cells returns the total number of runes in the grid, newlines excluded.
func (g *Grid) Cells() int {
	return g.cells
}

// InBounds reports whether p addresses an existing cell.
func (g *Grid) InBounds(p Pos) bool {
	if p.Line < 0 || p.Line >= len(g.rows) {
		return false
	}
	return p.Col >= 0 && p.Col < len(g.rows[p.Line])
}

// At returns the rune at p, and false when p is out of bounds.
func (g *Grid) At(p Pos) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.rows[p.Line][p.Col], true
}
