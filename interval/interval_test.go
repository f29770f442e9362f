package interval

import (
	"strings"
	"testing"

	"github.com/cs-au-dk/portion/utils"

	"github.com/fatih/color"
)

func TestDisplay(t *testing.T) {
	mk := Elements[int]()

	tests := []struct {
		i        Interval[int]
		expected string
	}{
		{mk.Open(2, 4), "(2, 4)"},
		{mk.Closed(3, 6), "[3, 6]"},
		{mk.Singleton(5), "[5]"},
		{mk.Empty(), "()"},
		{mk.OpenClosed(1, 8), "(1, 8]"},
		{mk.ClosedOpen(4, 9), "[4, 9)"},
		{mk.Closed(-3, -3), "[-3, -3]"},
		{mk.Singleton(-7), "[-7]"},
	}

	for _, test := range tests {
		if res := test.i.String(); res != test.expected {
			t.Errorf("%s rendered as %q, expected %q", test.i.Kind(), res, test.expected)
		}
	}
}

func TestEmptinessMatchesRendering(t *testing.T) {
	mk := Elements[uint8]()
	vals := []uint8{0, 1, 3, 254, 255}

	for _, l := range vals {
		for _, u := range vals {
			for _, i := range []Interval[uint8]{
				mk.Open(l, u), mk.Closed(l, u), mk.OpenClosed(l, u), mk.ClosedOpen(l, u),
			} {
				if i.IsEmpty() != (i.String() == "()") {
					t.Errorf("%s(%d, %d): IsEmpty() = %t but renders %s",
						i.Kind(), l, u, i.IsEmpty(), i)
				}
			}
		}
	}

	if !mk.Empty().IsEmpty() {
		t.Error("() is not empty")
	}
	if mk.Singleton(0).IsEmpty() {
		t.Error("[0] is empty")
	}
}

func TestEmptinessRule(t *testing.T) {
	mk := Elements[int]()

	tests := []struct {
		i     Interval[int]
		empty bool
	}{
		{mk.Open(3, 3), true},
		{mk.OpenClosed(3, 3), true},
		{mk.ClosedOpen(3, 3), true},
		{mk.Closed(3, 3), false},
		{mk.Closed(5, 3), true},
		{mk.Open(2, 3), false},
		{mk.Open(5, 3), true},
	}

	for _, test := range tests {
		if test.i.IsEmpty() != test.empty {
			t.Errorf("%s(%v): IsEmpty() = %t, expected %t",
				test.i.Kind(), test.i.lower, test.i.IsEmpty(), test.empty)
		}
	}
}

func TestEqualityViaRendering(t *testing.T) {
	mk := Elements[int]()

	if !mk.Closed(5, 3).Eq(mk.Empty()) {
		t.Error("[5, 3] should equal ()")
	}
	if !mk.Open(4, 4).Eq(mk.ClosedOpen(9, 1)) {
		t.Error("(4, 4) should equal [9, 1)")
	}
	if mk.Closed(3, 3).Eq(mk.Singleton(3)) {
		t.Error("[3, 3] and [3] render differently and must not be equal")
	}
	if mk.Open(1, 2).Eq(mk.Closed(1, 2)) {
		t.Error("(1, 2) should not equal [1, 2]")
	}
}

func TestClassification(t *testing.T) {
	mk := Elements[int]()

	type preds struct{ single, lo, lc, ro, rc bool }
	tests := []struct {
		i        Interval[int]
		expected preds
	}{
		{mk.Open(1, 2), preds{false, true, false, true, false}},
		{mk.Closed(1, 2), preds{false, false, true, false, true}},
		{mk.OpenClosed(1, 2), preds{false, true, false, false, true}},
		{mk.ClosedOpen(1, 2), preds{false, false, true, true, false}},
		{mk.Singleton(1), preds{true, false, false, false, false}},
		{mk.Empty(), preds{false, false, false, false, false}},
	}

	for _, test := range tests {
		res := preds{
			test.i.IsSingleton(),
			test.i.IsLeftOpen(), test.i.IsLeftClosed(),
			test.i.IsRightOpen(), test.i.IsRightClosed(),
		}
		if res != test.expected {
			t.Errorf("%s: predicates %+v, expected %+v", test.i.Kind(), res, test.expected)
		}
		if !test.i.IsAtomic() {
			t.Errorf("%s is not atomic", test.i)
		}
	}
}

func TestAccessors(t *testing.T) {
	mk := Elements[int]()

	if l, ok := mk.Singleton(4).Lower(); !ok || l != 4 {
		t.Errorf("[4].Lower() = %d, %t", l, ok)
	}
	if _, ok := mk.Singleton(4).Upper(); ok {
		t.Error("[4] should not have an upper end")
	}
	if _, ok := mk.Empty().Lower(); ok {
		t.Error("() should not have a lower end")
	}
	if u, ok := mk.OpenClosed(1, 9).Upper(); !ok || u != 9 {
		t.Errorf("(1, 9].Upper() = %d, %t", u, ok)
	}
	if k := (Interval[int]{}).Kind(); k != Empty {
		t.Errorf("zero interval has kind %s", k)
	}
}

func TestEndsPerKind(t *testing.T) {
	mk := Elements[int8]()

	tests := []struct {
		i            Interval[int8]
		kind         Kind
		lower, upper int8
		hasLo, hasUp bool
	}{
		{mk.Empty(), Empty, 0, 0, false, false},
		{mk.Singleton(-3), Singleton, -3, 0, true, false},
		{mk.Open(1, 4), Open, 1, 4, true, true},
		{mk.Closed(-128, 127), Closed, -128, 127, true, true},
		{mk.OpenClosed(2, 9), OpenClosed, 2, 9, true, true},
		{mk.ClosedOpen(5, 3), ClosedOpen, 5, 3, true, true},
	}

	for _, test := range tests {
		if k := test.i.Kind(); k != test.kind {
			t.Errorf("%s.Kind() = %s, expected %s", test.i, k, test.kind)
		}
		if l, ok := test.i.Lower(); ok != test.hasLo || l != test.lower {
			t.Errorf("%s.Lower() = %d, %t, expected %d, %t", test.i, l, ok, test.lower, test.hasLo)
		}
		if u, ok := test.i.Upper(); ok != test.hasUp || u != test.upper {
			t.Errorf("%s.Upper() = %d, %t, expected %d, %t", test.i, u, ok, test.upper, test.hasUp)
		}
	}
}

func TestPretty(t *testing.T) {
	mk := Elements[int]()
	i := mk.ClosedOpen(-1, 10)

	noColor := color.NoColor
	defer func() {
		color.NoColor = noColor
		utils.Opts().SetNoColorize(false)
	}()

	color.NoColor = false
	if res := i.Pretty(); !strings.Contains(res, "\x1b[") {
		t.Errorf("Pretty() = %q is not colorized", res)
	}
	if strings.Contains(i.String(), "\x1b[") {
		t.Errorf("String() = %q is colorized", i.String())
	}

	utils.Opts().SetNoColorize(true)
	if res := i.Pretty(); res != i.String() {
		t.Errorf("Pretty() = %q with -no-colorize, expected %q", res, i.String())
	}
}
