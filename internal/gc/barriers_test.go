package gc

import "testing"

// TestReadBarrierIdempotence checks that forwarding the same field twice in
// a row, with no intervening collection, leaves its value unchanged and
// triggers the counter only on the call that actually moved something.
func TestReadBarrierIdempotence(t *testing.T) {
	h := newTestHeap(1<<12, 16)

	a, err := h.AllocateObject(1)
	if err != nil {
		t.Fatalf("alloc a: %v", err)
	}
	b, err := h.AllocateObject(1)
	if err != nil {
		t.Fatalf("alloc b: %v", err)
	}
	h.SetHeader(a, fieldCountHeader(1, 0))
	h.SetHeader(b, fieldCountHeader(1, 0))
	h.SetField(a, 0, PtrToWord(b))
	h.SetField(b, 0, Word(0))

	root := a
	h.PushRoot(&root)
	h.Collect()
	newA := root

	before := h.Snapshot().ReadBarrierTriggers
	h.ReadBarrier(newA, 0)
	firstValue := h.Field(newA, 0)
	afterFirst := h.Snapshot().ReadBarrierTriggers
	if afterFirst != before+1 {
		t.Errorf("ReadBarrierTriggers after first call = %d, want %d (the pointer actually moved)", afterFirst, before+1)
	}

	h.ReadBarrier(newA, 0)
	secondValue := h.Field(newA, 0)
	afterSecond := h.Snapshot().ReadBarrierTriggers

	if firstValue != secondValue {
		t.Errorf("field value changed on the second ReadBarrier call: %#x -> %#x", firstValue, secondValue)
	}
	if afterSecond != afterFirst {
		t.Errorf("ReadBarrierTriggers after second call = %d, want %d (already forwarded, nothing to do)", afterSecond, afterFirst)
	}
}

func TestWriteBarrierCountsWritesOnly(t *testing.T) {
	h := newTestHeap(1<<12, 16)

	h.WriteBarrier()
	h.WriteBarrier()
	h.WriteBarrier()

	snap := h.Snapshot()
	if snap.Writes != 3 {
		t.Errorf("Writes = %d, want 3", snap.Writes)
	}
	if snap.WriteBarrierTriggers != 0 {
		t.Errorf("WriteBarrierTriggers = %d, want 0 (the write barrier never conditionally triggers)", snap.WriteBarrierTriggers)
	}
}

func TestReadBarrierCountsReads(t *testing.T) {
	h := newTestHeap(1<<12, 16)

	a, err := h.AllocateObject(1)
	if err != nil {
		t.Fatalf("alloc a: %v", err)
	}
	h.SetHeader(a, fieldCountHeader(1, 0))
	h.SetField(a, 0, Word(7))

	h.ReadBarrier(a, 0)
	h.ReadBarrier(a, 0)

	if got := h.Snapshot().Reads; got != 2 {
		t.Errorf("Reads = %d, want 2", got)
	}
	if got := h.Field(a, 0); got != Word(7) {
		t.Errorf("non-pointer field value = %#x, want unchanged 7", got)
	}
}
