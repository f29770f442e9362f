package interval

import "github.com/cs-au-dk/portion/scalar"

type boundKind uint8

const (
	// noBound means the operand has no usable edge on that side.
	noBound boundKind = iota
	openBound
	closedBound
)

// bound is one edge of an interval: Open(v), Closed(v) or None.
type bound[T scalar.Integer] struct {
	kind  boundKind
	value T
}

func (b bound[T]) String() string {
	switch b.kind {
	case openBound:
		return "Open(" + scalar.Format(b.value) + ")"
	case closedBound:
		return "Closed(" + scalar.Format(b.value) + ")"
	}
	return "None"
}

type side uint8

const (
	left side = iota
	right
)

// mode selects between the tighter edge (intersection) and the looser
// edge (union) of two operands.
type mode uint8

const (
	common mode = iota
	extending
)

// edge extracts one side of an interval. A singleton is its own closed
// edge on both sides.
func (i Interval[T]) edge(s side) bound[T] {
	switch i.kind {
	case Empty:
		return bound[T]{}
	case Singleton:
		return bound[T]{closedBound, i.lower}
	}

	if s == left {
		if i.kind.leftClosed() {
			return bound[T]{closedBound, i.lower}
		}
		return bound[T]{openBound, i.lower}
	}
	if i.kind.rightClosed() {
		return bound[T]{closedBound, i.upper}
	}
	return bound[T]{openBound, i.upper}
}

// resolve matches two edges on the same side. The larger value wins on the
// left of an intersection and on the right of a union; the smaller value
// wins otherwise. On a value tie between an open and a closed edge, the
// open edge wins in common mode and the closed edge in extending mode.
//
//	.-----------------------------------------------------.
//	|  s | m         | a ≠ b          | a = b, mixed kinds |
//	|====|===========|================|====================|
//	|  l | common    | max(a, b)      | Open               |
//	|  r | common    | min(a, b)      | Open               |
//	|  l | extending | min(a, b)      | Closed             |
//	|  r | extending | max(a, b)      | Closed             |
//	 -----------------------------------------------------
func resolve[T scalar.Integer](a, b bound[T], s side, m mode) bound[T] {
	if a.kind == noBound || b.kind == noBound {
		return bound[T]{}
	}

	if a.value != b.value {
		largerWins := (s == left) == (m == common)
		if (a.value > b.value) == largerWins {
			return a
		}
		return b
	}

	switch {
	case a.kind == b.kind:
		return a
	case m == common:
		return bound[T]{openBound, a.value}
	default:
		return bound[T]{closedBound, a.value}
	}
}

// commonBounds computes the tightest left and right edges shared by both operands.
func (i Interval[T]) commonBounds(o Interval[T]) (bound[T], bound[T]) {
	return resolve(i.edge(left), o.edge(left), left, common),
		resolve(i.edge(right), o.edge(right), right, common)
}

// extendingBounds computes the loosest left and right edges of both operands.
func (i Interval[T]) extendingBounds(o Interval[T]) (bound[T], bound[T]) {
	return resolve(i.edge(left), o.edge(left), left, extending),
		resolve(i.edge(right), o.edge(right), right, extending)
}

// fromBounds builds the interval delimited by two edges. It reports false
// if either edge is missing.
func fromBounds[T scalar.Integer](l, r bound[T]) (Interval[T], bool) {
	if l.kind == noBound || r.kind == noBound {
		return Interval[T]{}, false
	}
	return Interval[T]{
		lower: l.value,
		upper: r.value,
		kind:  crossing(l.kind == closedBound, r.kind == closedBound),
	}, true
}
