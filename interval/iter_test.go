package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterate(t *testing.T) {
	mk := Elements[uint8]()

	tests := []struct {
		i        Interval[uint8]
		expected []uint8
	}{
		{mk.Closed(2, 5), []uint8{2, 3, 4, 5}},
		{mk.Open(2, 5), []uint8{3, 4}},
		{mk.OpenClosed(2, 5), []uint8{3, 4, 5}},
		{mk.ClosedOpen(2, 5), []uint8{2, 3, 4}},
		{mk.Singleton(2), []uint8{2}},
		{mk.Empty(), []uint8{}},
		{mk.Open(2, 3), []uint8{}},
		{mk.Closed(5, 3), []uint8{}},
		{mk.Closed(7, 7), []uint8{7}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.expected, test.i.Elements()); diff != "" {
			t.Errorf("members of %s (-want +got):\n%s", test.i, diff)
		}
	}
}

func TestIterateDomainEdges(t *testing.T) {
	u8 := Elements[uint8]()
	i8 := Elements[int8]()

	if diff := cmp.Diff([]uint8{252, 253, 254, 255}, u8.OpenClosed(251, 255).Elements()); diff != "" {
		t.Errorf("members of (251, 255] (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0, 1}, u8.ClosedOpen(0, 2).Elements()); diff != "" {
		t.Errorf("members of [0, 2) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{255}, u8.Singleton(255).Elements()); diff != "" {
		t.Errorf("members of [255] (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int8{-128, -127}, i8.Closed(-128, -127).Elements()); diff != "" {
		t.Errorf("members of [-128, -127] (-want +got):\n%s", diff)
	}
	if n := len(u8.Closed(0, 255).Elements()); n != 256 {
		t.Errorf("[0, 255] has %d members, expected 256", n)
	}
	if n := len(i8.Open(-128, 127).Elements()); n != 254 {
		t.Errorf("(-128, 127) has %d members, expected 254", n)
	}
	if n := len(u8.Open(254, 255).Elements()); n != 0 {
		t.Errorf("(254, 255) has %d members, expected 0", n)
	}
}

func TestIteratorIsSinglePass(t *testing.T) {
	mk := Elements[int]()

	iter := mk.Closed(1, 2).Iterator()
	got := []int{}
	for !iter.Done() {
		got = append(got, iter.Next())
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("members of [1, 2] (-want +got):\n%s", diff)
	}

	if v := iter.Next(); !iter.Done() || v != 0 {
		t.Errorf("exhausted iterator yielded %d", v)
	}

	// A new iterator starts over.
	if v := mk.Closed(1, 2).Iterator().Next(); v != 1 {
		t.Errorf("fresh iterator yielded %d, expected 1", v)
	}
}

func TestForEach(t *testing.T) {
	sum := 0
	Elements[int]().OpenClosed(0, 4).ForEach(func(v int) {
		sum += v
	})
	if sum != 10 {
		t.Errorf("sum of (0, 4] = %d, expected 10", sum)
	}
}
