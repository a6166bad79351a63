package grid

// Belt glyph sets. Every belt glyph connects exactly two edges of its cell.
const (
	SingleGlyphs = "─│┌┐└┘"
	DoubleGlyphs = "═║╔╗╚╝"
	BeltGlyphs   = SingleGlyphs + DoubleGlyphs
)

type edges [4]bool

var glyphEdges = map[rune]edges{
	'│': {North: true, South: true},
	'─': {East: true, West: true},
	'┌': {East: true, South: true},
	'┐': {South: true, West: true},
	'└': {North: true, East: true},
	'┘': {North: true, West: true},
	'║': {North: true, South: true},
	'═': {East: true, West: true},
	'╔': {East: true, South: true},
	'╗': {South: true, West: true},
	'╚': {North: true, East: true},
	'╝': {North: true, West: true},
}

var doubleLine = map[rune]bool{
	'═': true, '║': true, '╔': true, '╗': true, '╚': true, '╝': true,
}

// IsBelt reports whether r is one of the twelve belt glyphs.
func IsBelt(r rune) bool {
	_, ok := glyphEdges[r]
	return ok
}

// IsSingle reports whether r is a single-line belt glyph.
func IsSingle(r rune) bool {
	return IsBelt(r) && !doubleLine[r]
}

// IsDouble reports whether r is a double-line belt glyph.
func IsDouble(r rune) bool {
	return doubleLine[r]
}

// Connects reports whether belt glyph r has an edge on side d of its cell.
func Connects(r rune, d Direction) bool {
	e, ok := glyphEdges[r]
	return ok && e[d]
}

type turnKey struct {
	glyph  rune
	facing Direction
}

// turns maps a glyph entered while travelling in a direction to the
// direction of travel on leaving it. Entries exist only for glyphs that have
// an edge facing the incoming belt.
var turns = map[turnKey]Direction{
	{'│', North}: North, {'║', North}: North,
	{'┌', North}: East, {'╔', North}: East,
	{'┐', North}: West, {'╗', North}: West,

	{'─', East}: East, {'═', East}: East,
	{'┘', East}: North, {'╝', East}: North,
	{'┐', East}: South, {'╗', East}: South,

	{'│', South}: South, {'║', South}: South,
	{'└', South}: East, {'╚', South}: East,
	{'┘', South}: West, {'╝', South}: West,

	{'─', West}: West, {'═', West}: West,
	{'└', West}: North, {'╚', West}: North,
	{'┌', West}: South, {'╔', West}: South,
}

// Turn returns the direction of travel after passing through glyph r while
// facing the given direction. ok is false when r is not a belt or does not
// accept flow from that side.
func Turn(r rune, facing Direction) (Direction, bool) {
	d, ok := turns[turnKey{r, facing}]
	return d, ok
}
