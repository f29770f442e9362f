package interval

import (
	"strings"

	"github.com/cs-au-dk/portion/scalar"

	"github.com/pkg/errors"
)

// Parse reads an interval in canonical form: (l, u), [l, u], (l, u],
// [l, u), [v] or (). Whitespace around values is ignored.
//
// Parse inverts String for every interval that is not logically empty.
func Parse[T scalar.Integer](s string) (Interval[T], error) {
	mk := Elements[T]()
	s = strings.TrimSpace(s)

	if len(s) < 2 {
		return mk.Empty(), errors.Wrapf(ErrSyntax, "%q is too short", s)
	}

	opening, body, closing := s[0], strings.TrimSpace(s[1:len(s)-1]), s[len(s)-1]
	if opening != '(' && opening != '[' {
		return mk.Empty(), errors.Wrapf(ErrSyntax, "%q: unexpected opening %q", s, opening)
	}
	if closing != ')' && closing != ']' {
		return mk.Empty(), errors.Wrapf(ErrSyntax, "%q: unexpected closing %q", s, closing)
	}

	if body == "" {
		if opening == '(' && closing == ')' {
			return mk.Empty(), nil
		}
		return mk.Empty(), errors.Wrapf(ErrSyntax, "%q: only () denotes the empty interval", s)
	}

	parts := strings.Split(body, ",")
	switch len(parts) {
	case 1:
		if opening != '[' || closing != ']' {
			return mk.Empty(), errors.Wrapf(ErrSyntax, "%q: singletons are written [v]", s)
		}
		v, err := scalar.Parse[T](strings.TrimSpace(parts[0]))
		if err != nil {
			return mk.Empty(), errors.Wrap(ErrSyntax, err.Error())
		}
		return mk.Singleton(v), nil
	case 2:
		lo, err := scalar.Parse[T](strings.TrimSpace(parts[0]))
		if err != nil {
			return mk.Empty(), errors.Wrap(ErrSyntax, err.Error())
		}
		hi, err := scalar.Parse[T](strings.TrimSpace(parts[1]))
		if err != nil {
			return mk.Empty(), errors.Wrap(ErrSyntax, err.Error())
		}
		return Interval[T]{
			lower: lo,
			upper: hi,
			kind:  crossing(opening == '[', closing == ']'),
		}, nil
	}
	return mk.Empty(), errors.Wrapf(ErrSyntax, "%q: expected at most two values", s)
}
