package gc

// ReadBarrier is the correctness-critical hook a mutator must call before
// dereferencing any field of a managed object (spec.md §4.G). It forwards
// object.fields[fieldIndex] in place; the caller reads the field
// afterwards with Field. Without this, the mutator could observe a stale
// to-space pointer left over from before a collection.
//
// ReadBarrier increments ReadBarrierTriggers when forwarding actually
// moved the pointer (see DESIGN.md's Open Question decision on that
// counter) — a read of a field that was already a from-space pointer, or
// holds a non-pointer immediate, leaves the trigger count unchanged.
func (h *Heap) ReadBarrier(object Ptr, fieldIndex int) {
	h.initIfNeeded()
	h.counters.reads++

	o := h.view(object)
	before := o.Field(fieldIndex)
	after := h.forward(WordToPtr(before))
	afterWord := PtrToWord(after)
	if afterWord != before {
		h.counters.readBarrierTriggers++
	}
	o.SetField(fieldIndex, afterWord)
}

// WriteBarrier is called after the mutator stores a value into a field.
// The collector is incremental but not generational, so writes need no
// corrective action: whatever the mutator just wrote is already correct,
// and there is no remembered set to maintain (spec.md §9, "Why a read
// barrier but no write barrier"). It exists, and the mutator must still
// call it, purely so the ABI shape (spec.md §6) is stable for a future
// generational variant that would promote it to maintain one.
func (h *Heap) WriteBarrier() {
	h.initIfNeeded()
	h.counters.writes++
}
