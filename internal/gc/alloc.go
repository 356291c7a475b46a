package gc

// Allocate carves size bytes off the top of from-space and returns a
// pointer to uninitialized object memory (spec.md §4.B). The caller must
// fill in the header and fields before any subsequent call that might
// relocate objects (Allocate, Collect, IncrementalForward) — any pointer
// held across such a call that isn't anchored through a root is dangling
// (spec.md §5).
//
// size is the total byte size of the object (header plus fields); callers
// that only know the field count should use AllocateObject.
func (h *Heap) Allocate(size uintptr) (Ptr, error) {
	h.initIfNeeded()
	size = alignUp(size, h.alignment)

	if size > h.regionSize {
		// Can never fit even with a full region free to it.
		return 0, h.eb.outOfMemory(size)
	}

	if h.freeBytes() < size {
		h.Collect()
	} else {
		h.IncrementalForward()
	}

	if h.freeBytes() < size {
		return 0, h.eb.outOfMemory(size)
	}

	h.limit = subPtr(h.limit, size)
	h.counters.recordAllocation(size)

	if h.tracer != nil {
		h.tracer.TraceAlloc(h.limit, size)
	}
	h.emit(EventAlloc)

	return h.limit, nil
}

// AllocateObject is a convenience wrapper over Allocate for callers who
// know an object's field count rather than its raw byte size.
func (h *Heap) AllocateObject(fieldCount int) (Ptr, error) {
	return h.Allocate(objectSizeBytes(fieldCount, h.alignment))
}
