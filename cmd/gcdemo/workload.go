package main

import (
	"cheneygc/internal/gc"
	"cheneygc/internal/gcconfig"
)

// demoFieldCounter is the header scheme every gcdemo workload uses: the low
// byte of the header is the field count, nothing else is interpreted. Real
// embedders supply their own FieldCounter derived from their own object
// layout (see gc.SetFieldCounter); gcdemo just needs something concrete to
// drive the collector with.
func demoFieldCounter(h gc.Header) int { return int(uint64(h) & 0xFF) }

func demoHeader(fieldCount int) gc.Header { return gc.Header(fieldCount & 0xFF) }

// newDemoHeap builds a Heap from --config if set, or gc.DefaultConfig()
// otherwise.
func newDemoHeap(configPath string) (*gc.Heap, error) {
	cfg := gc.DefaultConfig()
	if configPath != "" {
		loaded, err := gcconfig.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return gc.NewHeap(cfg, demoFieldCounter), nil
}

// allocChain allocates a linked list of n single-field objects, each
// pointing at the next, and returns the head. Rooting the head (or not) is
// left to the caller.
func allocChain(h *gc.Heap, n int) (gc.Ptr, error) {
	var head, prev gc.Ptr
	for i := 0; i < n; i++ {
		p, err := h.AllocateObject(1)
		if err != nil {
			return 0, err
		}
		h.SetHeader(p, demoHeader(1))
		h.SetField(p, 0, 0)
		if i == 0 {
			head = p
		} else {
			h.SetField(prev, 0, gc.PtrToWord(p))
		}
		prev = p
	}
	return head, nil
}
