package gc

import "fortio.org/safecast"

// objectView is a typed window onto one managed object living at addr: a
// header word followed by a contiguous run of field words. It never copies
// anything — every accessor reads or writes straight through to the heap
// buffer via readWord/writeWord.
type objectView struct {
	addr Ptr
}

func (h *Heap) view(p Ptr) objectView { return objectView{addr: p} }

func (o objectView) Header() Header { return Header(readWord(o.addr)) }

func (o objectView) SetHeader(hdr Header) { writeWord(o.addr, Word(hdr)) }

func (o objectView) fieldAddr(i int) Ptr {
	return offsetPtr(o.addr, wordSize+uintptr(i)*wordSize)
}

func (o objectView) Field(i int) Word { return readWord(o.fieldAddr(i)) }

func (o objectView) SetField(i int, w Word) { writeWord(o.fieldAddr(i), w) }

// objectSizeBytes is sizeof(header) + field_count*sizeof(pointer), rounded
// up to align (spec.md §3, "Size in bytes"). fieldCount comes from the
// runtime-supplied FieldCounter, not a trusted internal value, so the
// widening goes through safecast rather than a raw conversion — a
// negative field count becomes 0 fields instead of wrapping into a huge
// uintptr that would silently corrupt the allocator's arithmetic. Large
// positive counts are converted as they are.
func objectSizeBytes(fieldCount int, align uintptr) uintptr {
	n, err := safecast.Conv[uintptr](fieldCount)
	if err != nil {
		n = 0
	}
	raw := wordSize + n*wordSize
	return alignUp(raw, align)
}

// objectSize returns the byte size of the object currently at p, consulting
// the injected FieldCounter on its header.
func (h *Heap) objectSize(p Ptr) uintptr {
	fc := h.fieldCounter(h.view(p).Header())
	return objectSizeBytes(fc, h.alignment)
}

// Header returns the header word of the object at p, with no forwarding.
// Callers that might be looking at a stale to-space pointer should forward
// it (via ReadBarrier or Forward) first.
func (h *Heap) Header(p Ptr) Header { return h.view(p).Header() }

// SetHeader installs the header word of the object at p. Used by the
// mutator immediately after GCAlloc, before any call that might relocate
// the object (spec.md §6: "Caller must initialize the header and fields
// before any collection-triggering call").
func (h *Heap) SetHeader(p Ptr, hdr Header) { h.view(p).SetHeader(hdr) }

// Field reads field i of the object at p, with no forwarding. Prefer
// ReadBarrier for any field the mutator is about to dereference as a
// pointer.
func (h *Heap) Field(p Ptr, i int) Word { return h.view(p).Field(i) }

// SetField writes field i of the object at p. The mutator must call
// WriteBarrier after using this to store a value (spec.md §6).
func (h *Heap) SetField(p Ptr, i int, w Word) { h.view(p).SetField(i, w) }

// FieldCount returns the number of field slots the object at p carries,
// per the injected FieldCounter.
func (h *Heap) FieldCount(p Ptr) int { return h.fieldCounter(h.view(p).Header()) }
