package gc

import (
	"fmt"
	"io"
)

// Tracer writes a human-readable execution trace for debugging, the way
// the teacher's internal/vm.Tracer does for MIR execution. A nil *Tracer,
// or one with a nil writer, is always safe to call — every method checks
// first so call sites never need to branch on "is tracing enabled".
type Tracer struct {
	w io.Writer
}

// NewTracer creates a Tracer that writes to w.
func NewTracer(w io.Writer) *Tracer { return &Tracer{w: w} }

func (t *Tracer) TraceAlloc(p Ptr, size uintptr) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "[gc] alloc %d bytes at %#x\n", size, uintptr(p))
}

func (t *Tracer) TraceCollectStart(cycle uint64) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "[gc] collect #%d: flip spaces\n", cycle)
}

func (t *Tracer) TraceCollectEnd(cycle uint64, rootsForwarded int) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "[gc] collect #%d: forwarded %d root(s)\n", cycle, rootsForwarded)
}

func (t *Tracer) TraceForward(from, to Ptr) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "[gc] forward %#x -> %#x\n", uintptr(from), uintptr(to))
}
