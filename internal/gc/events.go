package gc

// EventKind identifies what changed in a Heap when an Event fires.
type EventKind int

const (
	EventAlloc EventKind = iota
	EventCollectStart
	EventCollectEnd
	EventIncrementalForward
)

// Event carries a snapshot of heap state alongside the kind of change that
// produced it. internal/gcui consumes a channel of these exactly the way
// the teacher's internal/ui.NewProgressModel consumes a channel of
// buildpipeline.Event.
type Event struct {
	Kind     EventKind
	Snapshot Stats
}

// SetEventSink registers ch as the destination for heap-change
// notifications. Sends are non-blocking: a slow or absent consumer never
// stalls the mutator, since this collector has no suspension points of its
// own (spec.md §5).
func (h *Heap) SetEventSink(ch chan<- Event) { h.events = ch }

func (h *Heap) emit(kind EventKind) {
	if h.events == nil {
		return
	}
	select {
	case h.events <- Event{Kind: kind, Snapshot: h.Snapshot()}:
	default:
	}
}
