package gc

// Collect runs a full collection cycle (spec.md §4.E). Unlike classical
// stop-the-world Cheney collection, it does not drain the scan queue: it
// flips the two spaces, resets scan/next/limit, and forwards every
// registered root (transitively copying whatever they reach via chase),
// then returns control to the mutator immediately. Whatever is left
// unforwarded inside freshly copied objects is resolved lazily, either by
// IncrementalForward during later allocations or by ReadBarrier at the
// point of access.
func (h *Heap) Collect() {
	h.initIfNeeded()

	h.counters.currentAllocatedBytes = 0
	h.counters.currentAllocatedObjects = 0
	h.counters.totalCycles++

	h.fromSpace, h.toSpace = h.toSpace, h.fromSpace
	h.scan = h.fromSpace.base
	h.next = h.fromSpace.base
	h.limit = h.fromSpace.End()

	if h.tracer != nil {
		h.tracer.TraceCollectStart(h.counters.totalCycles)
	}
	h.emit(EventCollectStart)

	for _, slot := range h.roots.slots {
		*slot = h.forward(*slot)
	}

	if h.tracer != nil {
		h.tracer.TraceCollectEnd(h.counters.totalCycles, len(h.roots.slots))
	}
	h.emit(EventCollectEnd)
}
