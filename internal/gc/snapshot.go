package gc

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeSnapshot writes s to w as msgpack, the way the teacher's
// internal/driver.DiskCache encodes its DiskPayload. Unlike DiskCache, the
// collector never does this on its own — no component of this package
// calls EncodeSnapshot internally, honoring spec.md §5/§6 ("persisted
// state: none"). It exists purely for tooling built on top (see
// cmd/gcdemo's "stats --format msgpack") that wants to pipe a snapshot
// somewhere else.
func EncodeSnapshot(w io.Writer, s Stats) error {
	return msgpack.NewEncoder(w).Encode(s)
}

// DecodeSnapshot reads a Stats value previously written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (Stats, error) {
	var s Stats
	err := msgpack.NewDecoder(r).Decode(&s)
	return s, err
}
