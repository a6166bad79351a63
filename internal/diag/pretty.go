package diag

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/factorygo/internal/grid"
)

const (
	contextLines = 2
	windowMargin = 24
	windowMax    = 80
)

var (
	highlightStyle = color.New(color.OpBold, color.OpUnderscore)
	headerStyle    = color.New(color.FgRed, color.OpBold)
	contextStyle   = color.New(color.OpFuzzy)
)

// Pretty renders the error against source. Errors with a location get a
// framed excerpt of the surrounding lines with the span highlighted; errors
// without one render as "<Kind>: <message>". Styling is applied only when
// useColor is set.
func (e *Error) Pretty(source string, useColor bool) string {
	paint := func(s color.Style, text string) string {
		if !useColor || text == "" {
			return text
		}
		return s.Sprint(text)
	}

	if e.Span.IsZero() {
		return fmt.Sprintf("%s: %s", paint(headerStyle, e.Kind.String()), e.Msg)
	}

	g := grid.New(source)
	span := e.Span
	left := max(0, span.Col-windowMargin)
	right := min(max(windowMax, span.End()), span.End()+windowMargin)

	var b strings.Builder
	fmt.Fprintf(&b, "%s @ %s\n", paint(headerStyle, e.Kind.String()), span)
	fmt.Fprintf(&b, "%s%s%s\n", strings.Repeat(" ", 8), strings.Repeat(" ", span.Col-left), strings.Repeat("v", span.Len))

	for line := span.Line - contextLines; line <= span.Line+contextLines; line++ {
		if line < 0 || line >= g.Lines() {
			continue
		}
		row := clip(g.Row(line), left, right)
		if line != span.Line {
			fmt.Fprintf(&b, "%4d | %s\n", line+1, paint(contextStyle, string(row)))
			continue
		}

		start := min(span.Col-left, len(row))
		end := min(span.End()-left, len(row))
		gutter := strings.Repeat("-", max(0, 4-len(fmt.Sprint(line+1)))) + fmt.Sprint(line+1)
		fmt.Fprintf(&b, "-%s-| %s%s%s\n", gutter,
			string(row[:start]),
			paint(highlightStyle, string(row[start:end])),
			string(row[end:]))
	}

	b.WriteString(e.Msg)
	return b.String()
}

func clip(row []rune, from, to int) []rune {
	if from >= len(row) {
		return nil
	}
	return row[from:min(to, len(row))]
}
