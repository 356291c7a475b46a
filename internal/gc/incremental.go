package gc

// IncrementalForward performs up to RecordsToForward units of scan-frontier
// work: each unit forwards every field of the next not-yet-scanned copied
// object and advances scan past it (spec.md §4.F). This is the
// mutator-amortized analog of the classical Cheney scan loop, and is what
// makes collection incremental rather than stop-the-world: Collect only
// forwards roots, and the rest of the live set trickles through here (and
// through ReadBarrier) across subsequent allocations.
func (h *Heap) IncrementalForward() {
	h.initIfNeeded()

	budget := h.cfg.RecordsToForward
	for budget > 0 && ptrLess(h.scan, h.next) {
		o := h.view(h.scan)
		fc := h.fieldCounter(o.Header())
		for i := 0; i < fc; i++ {
			o.SetField(i, PtrToWord(h.forward(WordToPtr(o.Field(i)))))
		}
		h.scan = offsetPtr(h.scan, objectSizeBytes(fc, h.alignment))
		budget--
	}

	h.emit(EventIncrementalForward)
}
