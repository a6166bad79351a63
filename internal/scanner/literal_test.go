package scanner

import (
	"math"
	"testing"

	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text string
		want pallet.Pallet
	}{
		{"", pallet.Empty()},
		{"true", pallet.Bool(true)},
		{"false", pallet.Bool(false)},
		{"pi", pallet.Float(math.Pi)},
		{"e", pallet.Float(math.E)},
		{`"a"`, pallet.String("a")},
		{`""`, pallet.String("")},
		{`"hello world"`, pallet.String("hello world")},
		{"'x'", pallet.Char('x')},
		{"'''", pallet.Char('\'')},
		{"123", pallet.Int(123)},
		{"1_000_000", pallet.Int(1000000)},
		{"007", pallet.Int(7)},
		{"1.5", pallet.Float(1.5)},
		{"2f", pallet.Float(2)},
		{"0.25f", pallet.Float(0.25)},
		{".5", pallet.Float(0.5)},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			got, err := parseLiteral(tc.text, grid.NoSpan, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLiteralErrors(t *testing.T) {
	t.Parallel()

	span := grid.SpanAt(grid.Pos{Line: 4, Col: 2}, 6)
	testCases := []string{
		`"open`,
		`"`,
		"'ab'",
		"'a",
		"1.2.3",
		"1f2",
		"12a",
		"-5",
		"___",
		"99999999999999999999",
		"f",
	}

	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			_, err := parseLiteral(text, span, nil)
			derr := requireDiag(t, err, diag.SyntaxKind)
			assert.Equal(t, span, derr.Span)
		})
	}
}

func TestParseLiteralConstantsCannotShadowKeywords(t *testing.T) {
	t.Parallel()

	constants := map[string]pallet.Pallet{"true": pallet.Int(0), "pi": pallet.Int(3)}

	got, err := parseLiteral("true", grid.NoSpan, constants)
	require.NoError(t, err)
	assert.Equal(t, pallet.Bool(true), got)

	got, err = parseLiteral("pi", grid.NoSpan, constants)
	require.NoError(t, err)
	assert.Equal(t, pallet.Int(3), got, "user constants take precedence over built-ins")
}

func TestScanEscapes(t *testing.T) {
	t.Parallel()

	res, err := scan(t, `[start] {"a\tb\}\"c\n"} {'\''}`)
	require.NoError(t, err)
	assert.Equal(t, pallet.String("a\tb}\"c\n"), res.Assign[1])
	assert.Equal(t, pallet.Char('\''), res.Assign[2])
}
