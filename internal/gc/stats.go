package gc

// counters tracks the monotonic and current-epoch statistics spec.md §4.H
// requires. current_* fields reset at each Collect and grow during chase;
// maximum_resident_* are raised to current_* by recordAllocation whenever
// current bytes exceed the recorded maximum. chase does not update them, so
// growth from copying is reflected at the next allocation.
type counters struct {
	totalAllocatedBytes     uint64
	totalAllocatedObjects   uint64
	currentAllocatedBytes   uint64
	currentAllocatedObjects uint64
	totalCycles             uint64
	maxResidentBytes        uint64
	maxResidentObjects      uint64
	reads                   uint64
	writes                  uint64
	readBarrierTriggers     uint64
}

// writeBarrierTriggersConst mirrors the original's compile-time-zero
// write_barrier_triggers_cnt_: the write barrier never does anything
// conditional, so there is nothing to trigger on (see DESIGN.md's Open
// Question decision).
const writeBarrierTriggersConst uint64 = 0

func (c *counters) recordAllocation(size uintptr) {
	c.totalAllocatedBytes += uint64(size)
	c.totalAllocatedObjects++
	c.currentAllocatedBytes += uint64(size)
	c.currentAllocatedObjects++
	if c.currentAllocatedBytes > c.maxResidentBytes {
		c.maxResidentBytes = c.currentAllocatedBytes
		c.maxResidentObjects = c.currentAllocatedObjects
	}
}

// Stats is an exported, serializable snapshot of a Heap's counters plus its
// current space geometry. It is the wire shape for Snapshot/EncodeSnapshot.
type Stats struct {
	TotalAllocatedBytes     uint64 `msgpack:"total_allocated_bytes"`
	TotalAllocatedObjects   uint64 `msgpack:"total_allocated_objects"`
	CurrentAllocatedBytes   uint64 `msgpack:"current_allocated_bytes"`
	CurrentAllocatedObjects uint64 `msgpack:"current_allocated_objects"`
	TotalCycles             uint64 `msgpack:"total_cycles"`
	MaxResidentBytes        uint64 `msgpack:"max_resident_bytes"`
	MaxResidentObjects      uint64 `msgpack:"max_resident_objects"`
	Reads                   uint64 `msgpack:"reads"`
	Writes                  uint64 `msgpack:"writes"`
	ReadBarrierTriggers     uint64 `msgpack:"read_barrier_triggers"`
	WriteBarrierTriggers    uint64 `msgpack:"write_barrier_triggers"`

	RegionSize     uint64 `msgpack:"region_size"`
	AvailableBytes uint64 `msgpack:"available_bytes"`
	RootCount      int    `msgpack:"root_count"`
}

// Snapshot returns a point-in-time copy of h's statistics and space
// geometry. Safe to call at any time; does not mutate h.
func (h *Heap) Snapshot() Stats {
	h.initIfNeeded()
	return Stats{
		TotalAllocatedBytes:     h.counters.totalAllocatedBytes,
		TotalAllocatedObjects:   h.counters.totalAllocatedObjects,
		CurrentAllocatedBytes:   h.counters.currentAllocatedBytes,
		CurrentAllocatedObjects: h.counters.currentAllocatedObjects,
		TotalCycles:             h.counters.totalCycles,
		MaxResidentBytes:        h.counters.maxResidentBytes,
		MaxResidentObjects:      h.counters.maxResidentObjects,
		Reads:                   h.counters.reads,
		Writes:                  h.counters.writes,
		ReadBarrierTriggers:     h.counters.readBarrierTriggers,
		WriteBarrierTriggers:    writeBarrierTriggersConst,
		RegionSize:              uint64(h.regionSize),
		AvailableBytes:          uint64(h.freeBytes()),
		RootCount:               len(h.roots.slots),
	}
}
