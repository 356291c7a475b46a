package gc

import "testing"

func TestRootLIFOEnforcement(t *testing.T) {
	h := newTestHeap(1<<12, 16)

	var p1, p2 Ptr
	h.PushRoot(&p1)
	h.PushRoot(&p2)

	if err := h.PopRoot(&p1); err == nil {
		t.Fatal("PopRoot(&p1) out of order succeeded, want CodeRootMisuse")
	} else if gcErr, ok := err.(*Error); !ok || gcErr.Code != CodeRootMisuse {
		t.Errorf("err = %v, want *Error{Code: CodeRootMisuse}", err)
	}
	if h.RootCount() != 2 {
		t.Errorf("RootCount() = %d after a rejected pop, want 2 (stack unchanged)", h.RootCount())
	}

	if err := h.PopRoot(&p2); err != nil {
		t.Fatalf("PopRoot(&p2) in correct order = %v, want nil", err)
	}
	if err := h.PopRoot(&p1); err != nil {
		t.Fatalf("PopRoot(&p1) after popping p2 = %v, want nil", err)
	}
	if h.RootCount() != 0 {
		t.Errorf("RootCount() = %d, want 0", h.RootCount())
	}
}

func TestPopRootOnEmptyStack(t *testing.T) {
	h := newTestHeap(1<<12, 16)
	var p Ptr
	if err := h.PopRoot(&p); err == nil {
		t.Fatal("PopRoot on an empty stack succeeded, want CodeRootMisuse")
	}
}
