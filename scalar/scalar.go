// Package scalar describes the discrete, totally ordered domains an
// interval may range over.
//
// Every fixed-width Go integer type qualifies. The domain of T is
// [Min[T](), Max[T]()] and is traversed with Succ and Pred.
package scalar

import (
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Integer is the capability required from interval elements.
type Integer interface {
	constraints.Integer
}

// ErrDomain is raised (as a panic) when stepping outside the
// representable domain. A caller that reaches it has broken a
// programming contract; it is never a reportable user error.
var ErrDomain = errors.New("scalar domain violation")

func signed[T Integer]() bool {
	var zero T
	return ^zero < zero
}

func width[T Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Min returns the smallest value representable by T.
func Min[T Integer]() T {
	if !signed[T]() {
		return 0
	}
	var one T = 1
	return one << (width[T]() - 1)
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	if !signed[T]() {
		var zero T
		return ^zero
	}
	return ^Min[T]()
}

// Succ returns the value immediately after x. It panics at Max.
func Succ[T Integer](x T) T {
	if x == Max[T]() {
		panic(errors.Wrapf(ErrDomain, "successor of maximum value %s", Format(x)))
	}
	return x + 1
}

// Pred returns the value immediately before x. It panics at Min.
func Pred[T Integer](x T) T {
	if x == Min[T]() {
		panic(errors.Wrapf(ErrDomain, "predecessor of minimum value %s", Format(x)))
	}
	return x - 1
}

// Larger computes max(a, b).
func Larger[T Integer](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Smaller computes min(a, b).
func Smaller[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Format renders x in base 10.
func Format[T Integer](x T) string {
	if signed[T]() {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

// Parse reads a base 10 value of T, rejecting values outside its domain.
func Parse[T Integer](s string) (T, error) {
	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, int(width[T]()))
		if err != nil {
			return 0, errors.Wrapf(err, "parsing %q", s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, int(width[T]()))
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}
	return T(v), nil
}
