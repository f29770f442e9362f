package interval

import "github.com/cs-au-dk/portion/utils/slices"

// Kind is the boundary shape of an interval. The set of kinds is closed:
// every operation switches over all six of them.
type Kind uint8

const (
	// Empty contains nothing. It is the zero Kind, so the zero Interval is empty.
	Empty Kind = iota
	// Singleton contains exactly its lower value.
	Singleton
	// Open excludes both ends: (l, u).
	Open
	// Closed includes both ends: [l, u].
	Closed
	// OpenClosed excludes the lower end and includes the upper end: (l, u].
	OpenClosed
	// ClosedOpen includes the lower end and excludes the upper end: [l, u).
	ClosedOpen
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Singleton:
		return "Singleton"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	case OpenClosed:
		return "OpenClosed"
	case ClosedOpen:
		return "ClosedOpen"
	}
	return "Kind(?)"
}

func (k Kind) leftOpen() bool {
	return slices.OneOf(k, Open, OpenClosed)
}

func (k Kind) leftClosed() bool {
	return slices.OneOf(k, Closed, ClosedOpen)
}

func (k Kind) rightOpen() bool {
	return slices.OneOf(k, Open, ClosedOpen)
}

func (k Kind) rightClosed() bool {
	return slices.OneOf(k, Closed, OpenClosed)
}

// crossing picks the kind of a two-ended interval from the
// open/closed-ness of each end.
//
//	.------------------------------.
//	|  left   |  right  |   kind   |
//	|=========|=========|==========|
//	|  open   |  open   |   (l, u) |
//	|  open   | closed  |   (l, u] |
//	| closed  |  open   |   [l, u) |
//	| closed  | closed  |   [l, u] |
//	 ------------------------------
func crossing(leftClosed, rightClosed bool) Kind {
	switch {
	case !leftClosed && !rightClosed:
		return Open
	case !leftClosed && rightClosed:
		return OpenClosed
	case leftClosed && !rightClosed:
		return ClosedOpen
	default:
		return Closed
	}
}
