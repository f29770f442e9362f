package interval

import "github.com/cs-au-dk/portion/scalar"

// Intersection computes i ∩ o. The result is always a single, possibly
// empty, interval.
func (i Interval[T]) Intersection(o Interval[T]) Interval[T] {
	switch {
	case i.IsEmpty() || o.IsEmpty():
		return Interval[T]{}
	case i.IsSingleton():
		if o.Contains(i.lower) {
			return i
		}
		return Interval[T]{}
	case o.IsSingleton():
		if i.Contains(o.lower) {
			return o
		}
		return Interval[T]{}
	// Provably disjoint.
	case i.upper < o.lower:
		return Interval[T]{}
	}

	l, r := i.commonBounds(o)
	res, ok := fromBounds(l, r)
	if !ok || res.IsEmpty() {
		return Interval[T]{}
	}
	return res
}

// Union computes i ∪ o when it is a single interval.
//
// Two disjoint intervals that are not singletons have no contiguous
// union, and the result is then the empty interval. Singletons are never
// considered disjoint: the union spans from the lowest to the highest
// edge of both operands.
func (i Interval[T]) Union(o Interval[T]) Interval[T] {
	switch {
	case i.IsEmpty():
		return o
	case o.IsEmpty():
		return i
	// Disjointness is tested in both argument orders, unlike a one-sided
	// i.upper < o.lower rule, so that [4, 5] ∪ [1, 2] is () as well.
	case !i.IsSingleton() && !o.IsSingleton() &&
		scalar.Smaller(i.upper, o.upper) < scalar.Larger(i.lower, o.lower):
		return Interval[T]{}
	}

	l, r := i.extendingBounds(o)
	res, ok := fromBounds(l, r)
	if !ok {
		// Both operands are non-empty, so both always have edges.
		panic(errInternal)
	}
	return res
}

// Complement computes the domain of T minus i, as the piece left of i
// followed by the piece right of i:
//
//	¬[l, u] = [min, l) | (u, max]
//	¬(l, u) = [min, l] | [u, max]
//
// Both pieces are always present, even when one is logically empty, e.g.
// the left piece of ¬[0, 4] over uint8 is [0, 0) = (). A singleton [v]
// is complemented as [v, v]. The complement of the empty interval is the
// whole domain, as a single piece.
func (i Interval[T]) Complement() Collection[T] {
	mk := Elements[T]()
	min, max := scalar.Min[T](), scalar.Max[T]()

	if i.IsEmpty() {
		return newCollection(mk.Closed(min, max))
	}

	var lpiece, rpiece Interval[T]
	if lo := i.edge(left); lo.kind == closedBound {
		lpiece = mk.ClosedOpen(min, lo.value)
	} else {
		lpiece = mk.Closed(min, lo.value)
	}
	if hi := i.edge(right); hi.kind == closedBound {
		rpiece = mk.OpenClosed(hi.value, max)
	} else {
		rpiece = mk.Closed(hi.value, max)
	}

	return newCollection(lpiece, rpiece)
}

// Contains checks whether v is one of the members produced by iterating i.
// It visits every member below v, so it is linear in the distance from
// the lower end.
func (i Interval[T]) Contains(v T) bool {
	for iter := i.Iterator(); !iter.Done(); {
		switch x := iter.Next(); {
		case x == v:
			return true
		case x > v:
			return false
		}
	}
	return false
}
