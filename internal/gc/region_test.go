package gc

import "testing"

func TestRegionContains(t *testing.T) {
	r := Region{base: Ptr(1000), size: 64}

	cases := []struct {
		p    Ptr
		want bool
	}{
		{Ptr(999), false},
		{Ptr(1000), true},
		{Ptr(1063), true},
		{Ptr(1064), false},
		{Ptr(0), false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%d) = %v, want %v", c.p, got, c.want)
		}
	}

	if r.Base() != Ptr(1000) {
		t.Errorf("Base() = %d, want 1000", r.Base())
	}
	if r.End() != Ptr(1064) {
		t.Errorf("End() = %d, want 1064", r.End())
	}
	if r.Size() != 64 {
		t.Errorf("Size() = %d, want 64", r.Size())
	}
}

func TestAlignUpDown(t *testing.T) {
	cases := []struct{ n, align, up, down uintptr }{
		{0, 8, 0, 0},
		{1, 8, 8, 0},
		{8, 8, 8, 8},
		{9, 8, 16, 8},
		{15, 8, 16, 8},
	}
	for _, c := range cases {
		if got := alignUp(c.n, c.align); got != c.up {
			t.Errorf("alignUp(%d,%d) = %d, want %d", c.n, c.align, got, c.up)
		}
		if got := alignDown(c.n, c.align); got != c.down {
			t.Errorf("alignDown(%d,%d) = %d, want %d", c.n, c.align, got, c.down)
		}
	}
}

func TestObjectSizeBytes(t *testing.T) {
	cases := []struct {
		fieldCount int
		want       uintptr
	}{
		{0, 8},
		{1, 16},
		{3, 32},
		{4, 40},
	}
	for _, c := range cases {
		if got := objectSizeBytes(c.fieldCount, wordSize); got != c.want {
			t.Errorf("objectSizeBytes(%d) = %d, want %d", c.fieldCount, got, c.want)
		}
	}
}
