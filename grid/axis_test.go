package grid

import "testing"

func TestAxis_PositionOf_PrefixSums(t *testing.T) {
	a := NewAxis(5, 10, 3, 0)
	a.SetSize(1, 20)
	a.SetSize(3, 5)

	want := []int{0, 10, 30, 40, 45, 55}
	for i, w := range want {
		if got := a.PositionOf(i); got != w {
			t.Fatalf("PositionOf(%d): got %d, want %d", i, got, w)
		}
	}
	if got := a.Extent(); got != 55 {
		t.Fatalf("Extent: got %d, want 55", got)
	}
}

func TestAxis_SpanSize(t *testing.T) {
	a := NewAxis(5, 10, 3, 0)
	a.SetSize(1, 20)

	if got := a.SpanSize(0, 3); got != 40 {
		t.Fatalf("SpanSize(0, 3): got %d, want 40", got)
	}
	if got := a.SpanSize(2, 2); got != 0 {
		t.Fatalf("empty span: got %d, want 0", got)
	}
	if got := a.SpanSize(3, 100); got != 20 {
		t.Fatalf("clamped span: got %d, want 20", got)
	}
}

func TestAxis_SetSize_FloorsAtMinimum(t *testing.T) {
	a := NewAxis(3, 10, 4, 0)
	a.SetSize(0, 1)
	if got := a.Size(0); got != 4 {
		t.Fatalf("floored size: got %d, want 4", got)
	}
	a.SetSize(0, -50)
	if got := a.Size(0); got != 4 {
		t.Fatalf("negative size must floor: got %d, want 4", got)
	}
}

func TestAxis_IndexAt_BinarySearch(t *testing.T) {
	a := NewAxis(4, 10, 3, 0)
	cases := []struct {
		offset int
		want   int
	}{
		{-5, 0},
		{0, 0},
		{9, 0},
		{10, 1},
		{25, 2},
		{39, 3},
		{40, 3}, // past the end clamps to the last index
		{999, 3},
	}
	for _, tc := range cases {
		if got := a.IndexAt(tc.offset); got != tc.want {
			t.Fatalf("IndexAt(%d): got %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestAxis_VisibleRange_SlackAndBuffer(t *testing.T) {
	a := NewAxis(100, 10, 3, 5)

	// scroll 0: no backoff possible, fill 50 units = indices 0..4, +5 buffer.
	start, end := a.VisibleRange(0, 50)
	if start != 0 {
		t.Fatalf("start at scroll 0: got %d, want 0", start)
	}
	if end != 11 {
		t.Fatalf("end at scroll 0: got %d, want 11", end)
	}

	// scroll 95 lands in index 9; one index of backoff gives 8.
	start, end = a.VisibleRange(95, 50)
	if start != 8 {
		t.Fatalf("start at scroll 95: got %d, want 8", start)
	}
	if end <= start {
		t.Fatalf("end must exceed start: got [%d,%d)", start, end)
	}
}

func TestAxis_VisibleRange_MonotonicStart(t *testing.T) {
	a := NewAxis(200, 8, 3, 5)
	a.SetSize(17, 40)
	a.SetSize(90, 25)

	prev := 0
	for scroll := 0; scroll < a.Extent(); scroll += 7 {
		start, _ := a.VisibleRange(scroll, 120)
		if start < prev {
			t.Fatalf("start decreased at scroll %d: got %d, prev %d", scroll, start, prev)
		}
		prev = start
	}
}

func TestAxis_VisibleRange_EmptyAxis(t *testing.T) {
	a := NewAxis(0, 10, 3, 5)
	start, end := a.VisibleRange(100, 50)
	if start != 0 || end != 0 {
		t.Fatalf("empty axis range: got [%d,%d), want [0,0)", start, end)
	}
}

func TestAxis_ClearSizes(t *testing.T) {
	a := NewAxis(4, 10, 3, 0)
	a.SetSize(2, 30)
	a.ClearSizes()
	if got := a.Extent(); got != 40 {
		t.Fatalf("extent after clear: got %d, want 40", got)
	}
}
