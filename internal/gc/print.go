package gc

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	statsPrinter = message.NewPrinter(language.English)
	liveColor    = color.New(color.FgGreen, color.Bold)
	freeColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgRed, color.Bold)
	addrColor    = color.New(color.FgYellow)
)

// PrintAllocationStatistics renders the counters spec.md §4.H requires,
// grouped with locale-aware thousands separators (golang.org/x/text) and
// colorized the way the teacher's internal/version package paints its
// version string with fatih/color.
func (h *Heap) PrintAllocationStatistics(w io.Writer) {
	h.initIfNeeded()
	c := h.counters

	statsPrinter.Fprintf(w, "Total memory allocation: %v bytes (%v objects)\n",
		number.Decimal(c.totalAllocatedBytes), number.Decimal(c.totalAllocatedObjects))
	statsPrinter.Fprintf(w, "Total GC invocation: %v cycles\n", number.Decimal(c.totalCycles))
	liveColor.Fprint(w, statsPrinter.Sprintf("Maximum residency: %v bytes (%v objects)\n",
		number.Decimal(c.maxResidentBytes), number.Decimal(c.maxResidentObjects)))
	statsPrinter.Fprintf(w, "Total memory use: %v reads and %v writes\n",
		number.Decimal(c.reads), number.Decimal(c.writes))
	statsPrinter.Fprintf(w, "Total barriers triggering: %v read barriers and %v write barriers\n",
		number.Decimal(c.readBarrierTriggers), number.Decimal(writeBarrierTriggersConst))
}

// PrintState renders the full heap layout spec.md §6's print_gc_state
// calls for: from-space objects up to next, newly allocated objects from
// limit up to the top of from-space, the scan/next/limit frontiers, the
// root set, and current/available memory.
func (h *Heap) PrintState(w io.Writer) {
	h.initIfNeeded()

	fmt.Fprintln(w, "Heap state:")
	fmt.Fprintf(w, "From-space: %d bytes at %#x\n", h.fromSpace.Size(), uintptr(h.fromSpace.Base()))
	h.printObjectRun(w, h.fromSpace.Base(), h.next)
	h.printObjectRun(w, h.limit, h.fromSpace.End())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "To-space: %d bytes at %#x\n", h.toSpace.Size(), uintptr(h.toSpace.Base()))
	fmt.Fprintf(w, "GC variable values: scan = %#x, next = %#x, limit = %#x\n",
		uintptr(h.scan), uintptr(h.next), uintptr(h.limit))
	h.PrintRoots(w)

	liveColor.Fprintf(w, "Current memory allocation: %d bytes (%d objects)\n",
		h.counters.currentAllocatedBytes, h.counters.currentAllocatedObjects)
	free := h.freeBytes()
	if free < h.regionSize/8 {
		warnColor.Fprintf(w, "Current memory available: %d bytes\n", free)
	} else {
		freeColor.Fprintf(w, "Current memory available: %d bytes\n", free)
	}
}

func (h *Heap) printObjectRun(w io.Writer, start, end Ptr) {
	first := true
	p := start
	for ptrLess(p, end) {
		if !first {
			fmt.Fprint(w, ", ")
		}
		first = false
		fc := h.fieldCounter(h.view(p).Header())
		addrColor.Fprintf(w, "object with %d fields at %#x", fc, uintptr(p))
		p = offsetPtr(p, objectSizeBytes(fc, h.alignment))
	}
}

// PrintRoots renders the address of every registered root, matching the
// original's print_roots (spec.md §6, print_gc_roots).
func (h *Heap) PrintRoots(w io.Writer) {
	h.initIfNeeded()
	fmt.Fprint(w, "Set of roots: ")
	for i, slot := range h.roots.slots {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%#x", uintptr(*slot))
	}
	fmt.Fprintln(w)
}
