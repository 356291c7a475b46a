// Package gc implements a copying garbage collector over a fixed two-space
// heap, using Cheney-style forwarding driven incrementally by a Baker-style
// read barrier on to-space pointers. See SPEC_FULL.md for the full
// contract; this file covers heap region setup and lazy initialization
// (spec.md §4.A).
package gc

// Config configures a Heap. Both fields have the same meaning as the
// compile-time constants MAX_ALLOC_SIZE and RECORDS_TO_FORWARD in
// spec.md §6; here they're runtime values so a single binary can drive
// heaps of different sizes (e.g. in tests or the gcdemo CLI), but the
// collector still treats them as fixed for the life of a Heap — there is
// no heap growth (spec.md §1, non-goals).
type Config struct {
	// MaxAllocSize is the heap half-size budget. The actual REGION_SIZE is
	// the largest multiple of the object alignment not exceeding this.
	MaxAllocSize uintptr
	// RecordsToForward bounds the work IncrementalForward does per call.
	RecordsToForward int
}

const (
	defaultMaxAllocSize     = uintptr(1) << 20 // 1 MiB per semispace
	defaultRecordsToForward = 16
	defaultAlignment        = wordSize
)

// DefaultConfig returns the compiled-in defaults spec.md §6 calls out as
// compile-time constants.
func DefaultConfig() Config {
	return Config{
		MaxAllocSize:     defaultMaxAllocSize,
		RecordsToForward: defaultRecordsToForward,
	}
}

func (c Config) normalized() Config {
	if c.MaxAllocSize == 0 {
		c.MaxAllocSize = defaultMaxAllocSize
	}
	if c.RecordsToForward <= 0 {
		c.RecordsToForward = defaultRecordsToForward
	}
	return c
}

// Heap is a two-space copying collector instance. The zero value is not
// usable; construct one with NewHeap. A Heap is single-threaded: nothing in
// this package locks anything, matching spec.md §5 ("not safe to share
// across threads without external synchronization").
type Heap struct {
	cfg          Config
	fieldCounter FieldCounter
	alignment    uintptr
	regionSize   uintptr

	storage   []byte
	fromSpace Region
	toSpace   Region

	scan  Ptr
	next  Ptr
	limit Ptr

	roots    rootStack
	counters counters
	tracer   *Tracer
	events   chan<- Event

	eb     errorBuilder
	inited bool
}

// NewHeap constructs a Heap with the given configuration and field-count
// extractor. fieldCounter is the runtime-supplied capability spec.md §4's
// "Header parsing" design note calls for: the collector never decodes
// header bits itself, it only ever asks fieldCounter how many field slots
// follow a given header.
//
// The backing byte buffer is not allocated yet — that happens lazily on
// first use, per spec.md §4.A.
func NewHeap(cfg Config, fieldCounter FieldCounter) *Heap {
	cfg = cfg.normalized()
	return &Heap{
		cfg:          cfg,
		fieldCounter: fieldCounter,
		alignment:    defaultAlignment,
	}
}

// SetTracer attaches a diagnostic Tracer. Pass nil to disable tracing.
func (h *Heap) SetTracer(t *Tracer) { h.tracer = t }

// RegionSize returns REGION_SIZE: the size in bytes of one semispace.
func (h *Heap) RegionSize() uintptr {
	h.initIfNeeded()
	return h.regionSize
}

func (h *Heap) initIfNeeded() {
	if h.inited {
		return
	}
	h.regionSize = alignDown(h.cfg.MaxAllocSize, h.alignment)
	h.storage = make([]byte, 2*h.regionSize)
	base := bufferBase(h.storage)
	h.fromSpace = Region{base: base, size: h.regionSize}
	h.toSpace = Region{base: offsetPtr(base, h.regionSize), size: h.regionSize}
	h.scan = h.fromSpace.base
	h.next = h.fromSpace.base
	h.limit = h.fromSpace.End()
	h.inited = true
}

func (h *Heap) freeBytes() uintptr {
	return uintptr(h.limit) - uintptr(h.next)
}

// Detach moves h's entire live state — buffer, spaces, frontiers, roots,
// counters — into a freshly returned Heap, and resets h back to a fresh,
// uninitialized heap with the same configuration. This is the Go shape of
// the original C++ collector's move-assignment/swap (garbage_collector has
// a deleted copy constructor and a hand-written swap(); see SPEC_FULL.md
// §12). It lets an owner hand a live heap to someone else without copying
// the backing buffer.
func (h *Heap) Detach() *Heap {
	moved := &Heap{
		cfg:          h.cfg,
		fieldCounter: h.fieldCounter,
		alignment:    h.alignment,
		regionSize:   h.regionSize,
		storage:      h.storage,
		fromSpace:    h.fromSpace,
		toSpace:      h.toSpace,
		scan:         h.scan,
		next:         h.next,
		limit:        h.limit,
		roots:        h.roots,
		counters:     h.counters,
		tracer:       h.tracer,
		events:       h.events,
		inited:       h.inited,
	}
	*h = Heap{
		cfg:          h.cfg,
		fieldCounter: h.fieldCounter,
		alignment:    h.alignment,
	}
	return moved
}
