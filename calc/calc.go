// Package calc evaluates interval expressions written with the operator
// symbols of the interval algebra:
//
//	I & J    intersection
//	I | J    union
//	-I       complement
//
// Binary operators are applied left to right. A complement yields two
// pieces, so it must be the whole expression.
package calc

import (
	"github.com/cs-au-dk/portion/interval"
	"github.com/cs-au-dk/portion/scalar"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrSyntax reports a malformed expression.
	ErrSyntax = errors.New("syntax error")
	// ErrComplementChain reports a complement combined with other operators.
	ErrComplementChain = errors.New("a complement cannot be combined with other operators")
)

// Result is the value of an expression: one interval, or the pieces of
// a complement.
type Result[T scalar.Integer] struct {
	atom       interval.Interval[T]
	pieces     interval.Collection[T]
	complement bool
}

// Interval returns the single interval of a binary expression. It reports
// false for complements.
func (r Result[T]) Interval() (interval.Interval[T], bool) {
	return r.atom, !r.complement
}

// Pieces returns every interval of the result, in order.
func (r Result[T]) Pieces() []interval.Interval[T] {
	if r.complement {
		return r.pieces.Intervals()
	}
	return []interval.Interval[T]{r.atom}
}

func (r Result[T]) String() string {
	if r.complement {
		return r.pieces.String()
	}
	return r.atom.String()
}

func (r Result[T]) Pretty() string {
	if r.complement {
		return r.pieces.Pretty()
	}
	return r.atom.Pretty()
}

// Contains checks whether any piece contains v.
func (r Result[T]) Contains(v T) bool {
	for _, p := range r.Pieces() {
		if p.Contains(v) {
			return true
		}
	}
	return false
}

// Members lists the members of every piece in order, stopping after limit
// members. A limit of 0 lists everything. It also reports whether the
// listing was cut short.
func (r Result[T]) Members(limit uint) ([]T, bool) {
	res := []T{}
	for _, p := range r.Pieces() {
		for iter := p.Iterator(); !iter.Done(); {
			if limit != 0 && uint(len(res)) == limit {
				return res, true
			}
			res = append(res, iter.Next())
		}
	}
	return res, false
}

// Eval parses and evaluates an expression over T.
func Eval[T scalar.Integer](expr string) (Result[T], error) {
	toks, err := lex(expr)
	if err != nil {
		return Result[T]{}, err
	}
	if len(toks) == 0 {
		return Result[T]{}, errors.Wrap(ErrSyntax, "empty expression")
	}

	if toks[0].kind == tokNeg {
		return complement[T](toks)
	}

	acc, err := literal[T](toks[0])
	if err != nil {
		return Result[T]{}, err
	}

	for i := 1; i < len(toks); i += 2 {
		op := toks[i]
		if op.kind != tokAnd && op.kind != tokOr {
			if op.kind == tokNeg {
				return Result[T]{}, errors.Wrapf(ErrComplementChain, "at %d", op.pos)
			}
			return Result[T]{}, errors.Wrapf(ErrSyntax, "expected an operator at %d, found %s", op.pos, op)
		}
		if i+1 == len(toks) {
			return Result[T]{}, errors.Wrapf(ErrSyntax, "missing operand after %s at %d", op, op.pos)
		}
		if toks[i+1].kind == tokNeg {
			return Result[T]{}, errors.Wrapf(ErrComplementChain, "at %d", toks[i+1].pos)
		}

		rhs, err := literal[T](toks[i+1])
		if err != nil {
			return Result[T]{}, err
		}

		var res interval.Interval[T]
		if op.kind == tokAnd {
			res = acc.Intersection(rhs)
		} else {
			res = acc.Union(rhs)
		}
		log.Debugf("%s %s %s = %s", acc, op, rhs, res)
		acc = res
	}

	return Result[T]{atom: acc}, nil
}

func complement[T scalar.Integer](toks []token) (Result[T], error) {
	switch {
	case len(toks) == 1:
		return Result[T]{}, errors.Wrap(ErrSyntax, "missing operand after -")
	case len(toks) > 2:
		return Result[T]{}, errors.Wrapf(ErrComplementChain, "at %d", toks[2].pos)
	}

	i, err := literal[T](toks[1])
	if err != nil {
		return Result[T]{}, err
	}
	res := i.Complement()
	log.Debugf("-%s = %s", i, res)
	return Result[T]{pieces: res, complement: true}, nil
}

func literal[T scalar.Integer](tok token) (interval.Interval[T], error) {
	if tok.kind != tokLiteral {
		return interval.Interval[T]{}, errors.Wrapf(ErrSyntax, "expected an interval at %d, found %s", tok.pos, tok)
	}
	i, err := interval.Parse[T](tok.text)
	if err != nil {
		return i, errors.Wrapf(err, "at %d", tok.pos)
	}
	return i, nil
}
