// Package interval implements intervals over discrete integer domains
// and the set operations between them: intersection, union, complement,
// membership and iteration.
//
// Intervals are values. Operations never mutate their operands, and two
// intervals are equal exactly when their canonical renderings are equal.
// Consequently every logically empty interval, such as [5, 3], equals
// the canonical empty interval ().
package interval

import "github.com/cs-au-dk/portion/scalar"

// Interval is a contiguous range of T, tagged with its boundary Kind.
// Both ends are present for the two-ended kinds, only lower is present
// for Singleton and neither is present for Empty.
//
// Create intervals with the Factory returned by Elements.
type Interval[T scalar.Integer] struct {
	lower T
	upper T
	kind  Kind
}

// Factory creates intervals of T.
type Factory[T scalar.Integer] struct{}

// Elements returns the interval factory for T.
func Elements[T scalar.Integer]() Factory[T] {
	return Factory[T]{}
}

// Open creates (lower, upper).
func (Factory[T]) Open(lower, upper T) Interval[T] {
	return Interval[T]{lower: lower, upper: upper, kind: Open}
}

// Closed creates [lower, upper].
func (Factory[T]) Closed(lower, upper T) Interval[T] {
	return Interval[T]{lower: lower, upper: upper, kind: Closed}
}

// OpenClosed creates (lower, upper].
func (Factory[T]) OpenClosed(lower, upper T) Interval[T] {
	return Interval[T]{lower: lower, upper: upper, kind: OpenClosed}
}

// ClosedOpen creates [lower, upper).
func (Factory[T]) ClosedOpen(lower, upper T) Interval[T] {
	return Interval[T]{lower: lower, upper: upper, kind: ClosedOpen}
}

// Singleton creates [value].
func (Factory[T]) Singleton(value T) Interval[T] {
	return Interval[T]{lower: value, kind: Singleton}
}

// Empty creates ().
func (Factory[T]) Empty() Interval[T] {
	return Interval[T]{}
}

// Kind returns the boundary kind the interval was created with. A
// logically empty interval keeps its kind; use IsEmpty to test for emptiness.
func (i Interval[T]) Kind() Kind {
	return i.kind
}

// Lower returns the lower end, if the interval has one.
func (i Interval[T]) Lower() (T, bool) {
	if i.kind == Empty {
		var zero T
		return zero, false
	}
	return i.lower, true
}

// Upper returns the upper end, if the interval has one. Singletons
// only carry a lower end.
func (i Interval[T]) Upper() (T, bool) {
	switch i.kind {
	case Empty, Singleton:
		var zero T
		return zero, false
	}
	return i.upper, true
}

func (i Interval[T]) IsSingleton() bool {
	return i.kind == Singleton
}

func (i Interval[T]) IsLeftOpen() bool {
	return i.kind.leftOpen()
}

func (i Interval[T]) IsLeftClosed() bool {
	return i.kind.leftClosed()
}

func (i Interval[T]) IsRightOpen() bool {
	return i.kind.rightOpen()
}

func (i Interval[T]) IsRightClosed() bool {
	return i.kind.rightClosed()
}

// IsAtomic is always true: an interval is a single piece.
func (Interval[T]) IsAtomic() bool {
	return true
}

// IsEmpty derives emptiness from the ends:
//
//	(l, u), (l, u], [l, u)  are empty when l ≥ u
//	[l, u]                  is empty when l > u
//	[v]                     is never empty
//	()                      is always empty
//
// Note that (2, 3) is not empty by this rule even though no integer lies
// strictly between 2 and 3.
func (i Interval[T]) IsEmpty() bool {
	switch i.kind {
	case Open, OpenClosed, ClosedOpen:
		return i.lower >= i.upper
	case Closed:
		return i.lower > i.upper
	case Singleton:
		return false
	case Empty:
		return true
	}
	panic(errPatternMatch(i.kind))
}

// Eq checks whether two intervals have the same canonical rendering.
func (i Interval[T]) Eq(o Interval[T]) bool {
	return i.String() == o.String()
}

// String returns the canonical rendering:
//
//	(l, u)  [l, u]  (l, u]  [l, u)  [v]  ()
func (i Interval[T]) String() string {
	return i.render(plain, plain, plain)
}

// Pretty returns the canonical rendering with colorized brackets and
// elements. It is meant for display only.
func (i Interval[T]) Pretty() string {
	return i.render(colorize.Bracket, colorize.Element, colorize.Empty)
}

func (i Interval[T]) render(bracket, element, empty func(...interface{}) string) string {
	if i.IsEmpty() {
		return empty("()")
	}

	lo := element(scalar.Format(i.lower))
	if i.kind == Singleton {
		return bracket("[") + lo + bracket("]")
	}

	left, right := "(", ")"
	if i.kind.leftClosed() {
		left = "["
	}
	if i.kind.rightClosed() {
		right = "]"
	}
	return bracket(left) + lo + ", " + element(scalar.Format(i.upper)) + bracket(right)
}
