package scanner

import (
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/factorygo/internal/diag"
	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
)

var builtinConstants = map[string]pallet.Pallet{
	"pi": pallet.Float(math.Pi),
	"e":  pallet.Float(math.E),
}

// parseLiteral infers a pallet from the unescaped text between braces.
func parseLiteral(text string, span grid.Span, constants map[string]pallet.Pallet) (pallet.Pallet, error) {
	switch text {
	case "":
		return pallet.Empty(), nil
	case "true":
		return pallet.Bool(true), nil
	case "false":
		return pallet.Bool(false), nil
	}
	if p, ok := constants[text]; ok {
		return p, nil
	}
	if p, ok := builtinConstants[text]; ok {
		return p, nil
	}

	switch {
	case strings.HasPrefix(text, `"`):
		if len(text) < 2 || !strings.HasSuffix(text, `"`) {
			return pallet.Pallet{}, diag.Syntax(span, "Unclosed string literal %s", text)
		}
		return pallet.String(text[1 : len(text)-1]), nil

	case strings.HasPrefix(text, "'"):
		runes := []rune(text)
		if len(runes) != 3 || runes[2] != '\'' {
			return pallet.Pallet{}, diag.Syntax(span, "Invalid character literal %s, expected exactly one character between quotes", text)
		}
		return pallet.Char(runes[1]), nil
	}

	return parseNumber(text, span)
}

func parseNumber(text string, span grid.Span) (pallet.Pallet, error) {
	var digits strings.Builder
	dot, suffix := false, false
	for _, r := range text {
		if suffix {
			return pallet.Pallet{}, diag.Syntax(span, "Invalid number literal %q, nothing may follow the 'f' suffix", text)
		}
		switch {
		case r == '_':
		case r == '.':
			if dot {
				return pallet.Pallet{}, diag.Syntax(span, "Invalid number literal %q, more than one decimal point", text)
			}
			dot = true
			digits.WriteRune(r)
		case r == 'f':
			suffix = true
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		default:
			return pallet.Pallet{}, diag.Syntax(span, "Failed to parse literal %q", text)
		}
	}

	if !dot && !suffix {
		i, err := strconv.ParseInt(digits.String(), 10, 64)
		if err != nil {
			return pallet.Pallet{}, diag.Syntax(span, "Failed to parse integer literal %q", text)
		}
		return pallet.Int(i), nil
	}
	f, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return pallet.Pallet{}, diag.Syntax(span, "Failed to parse float literal %q", text)
	}
	return pallet.Float(f), nil
}
