package gc

// Forward is the idempotent address translator at the heart of the
// collector (spec.md §4.D). If p does not point into to-space — because
// it's already a from-space pointer, or because it's a non-pointer
// immediate that happens not to fall in either region — it is returned
// unchanged. Otherwise the object it names is copied to from-space (via
// chase, if it hasn't been already) and its new address is returned.
//
// Forward never blocks and never allocates more than chase needs to copy
// the one object (plus whatever chase's eager child-following pulls in);
// it is safe to call from the read barrier on every field dereference.
func (h *Heap) Forward(p Ptr) Ptr {
	h.initIfNeeded()
	return h.forward(p)
}

func (h *Heap) forward(p Ptr) Ptr {
	if !h.toSpace.Contains(p) {
		return p
	}
	first := WordToPtr(h.view(p).Field(0))
	if h.fromSpace.Contains(first) {
		// Already copied; fields[0] is the forwarding pointer (spec.md §3,
		// invariant 4).
		return first
	}
	h.chase(p)
	return WordToPtr(h.view(p).Field(0))
}

// chase copies p, and eagerly follows one not-yet-copied to-space child per
// iteration, to keep the scan frontier short-lived in cache (spec.md §4.D).
// It terminates because each iteration either copies a new object (the
// reachable set is finite) or finds no qualifying child and stops.
func (h *Heap) chase(p Ptr) {
	for p != 0 {
		fc := h.fieldCounter(h.view(p).Header())
		size := objectSizeBytes(fc, h.alignment)

		q := h.next
		h.next = offsetPtr(h.next, size)
		h.counters.currentAllocatedBytes += uint64(size)
		h.counters.currentAllocatedObjects++

		src := h.view(p)
		dst := h.view(q)
		dst.SetHeader(src.Header())

		var r Ptr
		for i := 0; i < fc; i++ {
			v := src.Field(i)
			dst.SetField(i, v)

			child := WordToPtr(v)
			if h.toSpace.Contains(child) {
				childFirst := WordToPtr(h.view(child).Field(0))
				if !h.fromSpace.Contains(childFirst) {
					// Last unreached child wins, per spec.md §4.D step 3.
					r = child
				}
			}
		}

		// Install the forwarding pointer last, after q is fully written —
		// see spec.md §9 on ordering this install after the copy.
		src.SetField(0, PtrToWord(q))

		if h.tracer != nil {
			h.tracer.TraceForward(p, q)
		}

		p = r
	}
}
