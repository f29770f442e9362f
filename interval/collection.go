package interval

import (
	"strings"

	"github.com/cs-au-dk/portion/scalar"

	"github.com/benbjohnson/immutable"
)

// Collection is an ordered sequence of intervals, as produced by
// Complement. Order is significant: the left piece precedes the right one.
type Collection[T scalar.Integer] struct {
	pieces *immutable.List[Interval[T]]
}

func newCollection[T scalar.Integer](pieces ...Interval[T]) Collection[T] {
	b := immutable.NewListBuilder[Interval[T]]()
	for _, p := range pieces {
		b.Append(p)
	}
	return Collection[T]{b.List()}
}

// Len returns the number of pieces.
func (c Collection[T]) Len() int {
	if c.pieces == nil {
		return 0
	}
	return c.pieces.Len()
}

// Get returns the i-th piece. It panics if i is out of bounds.
func (c Collection[T]) Get(i int) Interval[T] {
	return c.pieces.Get(i)
}

// ForEach visits every piece in order.
func (c Collection[T]) ForEach(do func(index int, i Interval[T])) {
	if c.pieces == nil {
		return
	}
	iter := c.pieces.Iterator()
	for !iter.Done() {
		index, i := iter.Next()
		do(index, i)
	}
}

func (c Collection[T]) forall(pred func(i Interval[T]) bool) bool {
	if c.pieces == nil {
		return true
	}
	iter := c.pieces.Iterator()
	for !iter.Done() {
		if _, i := iter.Next(); !pred(i) {
			return false
		}
	}
	return true
}

// Intervals returns the pieces as a slice.
func (c Collection[T]) Intervals() []Interval[T] {
	res := make([]Interval[T], 0, c.Len())
	c.ForEach(func(_ int, i Interval[T]) {
		res = append(res, i)
	})
	return res
}

// IsAtomic is true for collections of fewer than two pieces.
func (c Collection[T]) IsAtomic() bool {
	return c.Len() < 2
}

// IsEmpty is true when every piece is empty.
func (c Collection[T]) IsEmpty() bool {
	return c.forall(Interval[T].IsEmpty)
}

// Eq checks element-wise, ordered equality.
func (c1 Collection[T]) Eq(c2 Collection[T]) bool {
	if c1.Len() != c2.Len() {
		return false
	}
	eq := true
	c1.ForEach(func(index int, i Interval[T]) {
		eq = eq && i.Eq(c2.Get(index))
	})
	return eq
}

// String joins the canonical renderings of the pieces with " | ".
func (c Collection[T]) String() string {
	return c.render(Interval[T].String, " | ")
}

// Pretty joins the colorized renderings of the pieces.
func (c Collection[T]) Pretty() string {
	return c.render(Interval[T].Pretty, " "+colorize.Separator("|")+" ")
}

func (c Collection[T]) render(piece func(Interval[T]) string, sep string) string {
	strs := make([]string, 0, c.Len())
	c.ForEach(func(_ int, i Interval[T]) {
		strs = append(strs, piece(i))
	})
	return strings.Join(strs, sep)
}
