package calc

import (
	"strings"

	"github.com/pkg/errors"
)

type tokenKind uint8

const (
	tokLiteral tokenKind = iota
	tokAnd
	tokOr
	tokNeg
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	return t.text
}

// lex splits an expression into interval literals and operator symbols.
// Interval literals run from an opening bracket to the nearest closing
// bracket, so a '-' inside a literal is a sign, never a complement.
func lex(expr string) ([]token, error) {
	toks := []token{}

	for pos := 0; pos < len(expr); {
		switch c := expr[pos]; c {
		case ' ', '\t', '\n':
			pos++
		case '&':
			toks = append(toks, token{tokAnd, "&", pos})
			pos++
		case '|':
			toks = append(toks, token{tokOr, "|", pos})
			pos++
		case '-':
			toks = append(toks, token{tokNeg, "-", pos})
			pos++
		case '(', '[':
			end := strings.IndexAny(expr[pos+1:], ")]")
			if end == -1 {
				return nil, errors.Wrapf(ErrSyntax, "unterminated interval at %d", pos)
			}
			end += pos + 2
			toks = append(toks, token{tokLiteral, expr[pos:end], pos})
			pos = end
		default:
			return nil, errors.Wrapf(ErrSyntax, "unexpected %q at %d", c, pos)
		}
	}

	return toks, nil
}
