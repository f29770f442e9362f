package interval

import "github.com/cs-au-dk/portion/scalar"

// Iterator is a single-pass cursor over the members of an interval, in
// ascending order:
//
//	for iter := i.Iterator(); !iter.Done(); {
//		v := iter.Next()
//		...
//	}
//
// Iterating a wide interval, e.g. [0, 2^64-1], effectively never ends.
type Iterator[T scalar.Integer] struct {
	next T
	last T
	done bool
}

// span computes the first and last member of the interval. Open ends are
// stepped inwards. A non-empty open end always has the other end strictly
// beyond it, so the step never leaves the domain.
func (i Interval[T]) span() (first, last T, ok bool) {
	if i.IsEmpty() {
		return
	}

	switch i.kind {
	case Singleton:
		return i.lower, i.lower, true
	case Open, Closed, OpenClosed, ClosedOpen:
		first, last = i.lower, i.upper
		if i.kind.leftOpen() {
			first = scalar.Succ(first)
		}
		if i.kind.rightOpen() {
			last = scalar.Pred(last)
		}
		return first, last, first <= last
	}
	panic(errPatternMatch(i.kind))
}

// Iterator returns a fresh cursor positioned at the first member.
func (i Interval[T]) Iterator() *Iterator[T] {
	first, last, ok := i.span()
	return &Iterator[T]{
		next: first,
		last: last,
		done: !ok,
	}
}

// Done reports whether the iterator is exhausted.
func (it *Iterator[T]) Done() bool {
	return it.done
}

// Next returns the current member and advances. It returns the zero value
// once the iterator is exhausted.
func (it *Iterator[T]) Next() (v T) {
	if it.done {
		return
	}

	v = it.next
	// The last member may be the domain maximum: stop before stepping past it.
	if v == it.last {
		it.done = true
	} else {
		it.next = scalar.Succ(v)
	}
	return v
}

// ForEach calls do for every member of the interval, in ascending order.
func (i Interval[T]) ForEach(do func(v T)) {
	for iter := i.Iterator(); !iter.Done(); {
		do(iter.Next())
	}
}

// Elements materializes every member of the interval.
func (i Interval[T]) Elements() []T {
	res := []T{}
	i.ForEach(func(v T) {
		res = append(res, v)
	})
	return res
}
