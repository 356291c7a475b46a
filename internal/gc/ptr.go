package gc

import "unsafe"

// wordSize is the size in bytes of a header slot or a field slot.
const wordSize = uintptr(8)

// Ptr is an address inside the heap's byte buffer. Ptr(0) never occurs as a
// real address (the buffer is allocated once, far from the zero page), so it
// doubles as the "invalid/unset" sentinel.
type Ptr uintptr

// Word is the raw bit pattern stored in a header or field slot. A Word may
// hold a Ptr into either semispace, or an arbitrary mutator-chosen immediate
// (a tagged integer, a boolean, ...). The collector tells the two apart
// purely by address range (Region.Contains), never by inspecting bits — see
// invariant 5 in spec.md §3.
type Word uint64

// Header is the opaque per-object header word. The collector consults it
// only through a FieldCounter.
type Header uint64

// FieldCounter extracts the number of pointer-sized field slots that follow
// an object's header. It is supplied by the runtime emitting objects (see
// spec.md §4's "Header parsing" design note); the collector never decodes
// header bits itself.
type FieldCounter func(Header) int

// PtrToWord reinterprets a heap address as a field-slot bit pattern.
func PtrToWord(p Ptr) Word { return Word(uintptr(p)) }

// WordToPtr reinterprets a field-slot bit pattern as a heap address. This is
// always safe to call speculatively: a Word that isn't really a pointer just
// produces a Ptr that no Region will ever Contain.
func WordToPtr(w Word) Ptr { return Ptr(uintptr(w)) }

func offsetPtr(p Ptr, n uintptr) Ptr { return Ptr(uintptr(p) + n) }

func subPtr(p Ptr, n uintptr) Ptr { return Ptr(uintptr(p) - n) }

func ptrLess(a, b Ptr) bool { return uintptr(a) < uintptr(b) }

// alignUp rounds n up to the nearest multiple of align (align must be a
// power of two).
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// alignDown rounds n down to the nearest multiple of align.
func alignDown(n, align uintptr) uintptr {
	return n &^ (align - 1)
}

// readWord and writeWord are the only two primitives in this module that
// touch raw memory. Everything else — the allocator, forward/chase, the
// barriers — is built on top of these plus Region range checks, so the
// Cheney algorithm itself reads as ordinary field manipulation (see
// spec.md §9, "Raw pointer arithmetic over a byte buffer").
//
// This relies on the heap's backing []byte never being reallocated or moved
// for the lifetime of the Ptr values derived from it; Heap.initIfNeeded
// allocates storage exactly once and never grows it.
func readWord(p Ptr) Word {
	return Word(*(*uint64)(unsafe.Pointer(uintptr(p)))) //nolint:gosec
}

func writeWord(p Ptr, w Word) {
	*(*uint64)(unsafe.Pointer(uintptr(p))) = uint64(w) //nolint:gosec
}

// bufferBase returns the address of buf's first byte as a Ptr. buf must
// outlive every Ptr derived from this call — Heap.initIfNeeded allocates
// its storage exactly once and keeps it alive for the Heap's lifetime.
func bufferBase(buf []byte) Ptr {
	return Ptr(uintptr(unsafe.Pointer(&buf[0]))) //nolint:gosec
}
