package gc

import "io"

// This file is the C-style ABI surface spec.md §6 specifies, suitable for
// emission by a compiler: gc_alloc, gc_read_barrier, gc_write_barrier,
// gc_push_root, gc_pop_root, and the three print_* dumps. It wraps a single
// package-level Heap, since the original ABI has no notion of "which heap"
// — there is exactly one GC instance per process, lazily initialized on
// first use (spec.md §3, "Lifecycle"; §9 design note on global mutable
// state).
//
// Callers that want an explicit, non-singleton handle — multiple
// independent heaps in one process, as cmd/gcdemo's "bench" subcommand
// does — should use NewHeap directly instead of this file's functions.

var (
	global             *Heap
	globalFieldCounter FieldCounter
)

// SetFieldCounter installs the runtime's header-field-count extractor for
// the process-wide GC instance. This must be called once, before the first
// ABI call, by whatever emits managed objects — the collector has no way
// to guess a runtime's header layout on its own (spec.md §9, "Header
// parsing").
func SetFieldCounter(fc FieldCounter) { globalFieldCounter = fc }

func ensureGlobal() *Heap {
	if global == nil {
		global = NewHeap(DefaultConfig(), func(hdr Header) int {
			if globalFieldCounter == nil {
				return 0
			}
			return globalFieldCounter(hdr)
		})
	}
	return global
}

// GCAlloc is the gc_alloc(size) ABI entry point.
func GCAlloc(size uintptr) (Ptr, error) { return ensureGlobal().Allocate(size) }

// GCReadBarrier is the gc_read_barrier(object, field_index) ABI entry
// point.
func GCReadBarrier(object Ptr, fieldIndex int) { ensureGlobal().ReadBarrier(object, fieldIndex) }

// GCWriteBarrier is the gc_write_barrier(object, field_index, value) ABI
// entry point. Like the original, it does not perform the store itself —
// the caller stores value into the field separately via SetField — it only
// notifies the collector that a write happened.
func GCWriteBarrier(object Ptr, fieldIndex int, value Word) {
	_, _, _ = object, fieldIndex, value
	ensureGlobal().WriteBarrier()
}

// GCPushRoot is the gc_push_root(slot) ABI entry point.
func GCPushRoot(slot *Ptr) { ensureGlobal().PushRoot(slot) }

// GCPopRoot is the gc_pop_root(slot) ABI entry point.
func GCPopRoot(slot *Ptr) error { return ensureGlobal().PopRoot(slot) }

// PrintGCAllocStats is the print_gc_alloc_stats() ABI entry point.
func PrintGCAllocStats(w io.Writer) { ensureGlobal().PrintAllocationStatistics(w) }

// PrintGCState is the print_gc_state() ABI entry point.
func PrintGCState(w io.Writer) { ensureGlobal().PrintState(w) }

// PrintGCRoots is the print_gc_roots() ABI entry point.
func PrintGCRoots(w io.Writer) { ensureGlobal().PrintRoots(w) }

// ResetGlobal tears down the process-wide GC instance. Exists for tests
// that need a clean singleton between cases; the ABI itself never calls
// this (spec.md §3: "The heap is torn down with the process").
func ResetGlobal() {
	global = nil
	globalFieldCounter = nil
}
