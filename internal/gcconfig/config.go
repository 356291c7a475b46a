// Package gcconfig loads a gc.toml file into a gc.Config, the way
// internal/project loads a surge.toml's [modules] section: decode into an
// unexported shape first, then validate and translate into the package's
// own types.
package gcconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"cheneygc/internal/gc"
)

// ErrHeapSectionMissing indicates that [heap] is missing from the file.
var ErrHeapSectionMissing = errors.New("missing [heap]")

type fileShape struct {
	Heap struct {
		MaxAllocSize     string `toml:"max_alloc_size"`
		RecordsToForward int    `toml:"records_to_forward"`
	} `toml:"heap"`
}

// Load parses path and returns the gc.Config it describes. MaxAllocSize is
// written as a size string ("1MiB", "64KiB", or a bare byte count) so a
// gc.toml reads the way a human would size a heap, not as a raw integer.
func Load(path string) (gc.Config, error) {
	var shape fileShape
	meta, err := toml.DecodeFile(path, &shape)
	if err != nil {
		return gc.Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("heap") {
		return gc.Config{}, fmt.Errorf("%s: %w", path, ErrHeapSectionMissing)
	}

	size, err := ParseSize(shape.Heap.MaxAllocSize)
	if err != nil {
		return gc.Config{}, fmt.Errorf("%s: max_alloc_size: %w", path, err)
	}

	return gc.Config{
		MaxAllocSize:     size,
		RecordsToForward: shape.Heap.RecordsToForward,
	}, nil
}

// ParseSize parses a size string with an optional KiB/MiB/GiB suffix (case
// insensitive) into a byte count. An empty string means "use the default",
// signaled by returning 0 — gc.Config treats a zero MaxAllocSize as
// "unset".
func ParseSize(s string) (uintptr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	mult := uintptr(1)
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "gib"):
		mult = 1 << 30
		s = s[:len(s)-3]
	case strings.HasSuffix(lower, "mib"):
		mult = 1 << 20
		s = s[:len(s)-3]
	case strings.HasSuffix(lower, "kib"):
		mult = 1 << 10
		s = s[:len(s)-3]
	}
	s = strings.TrimSpace(s)

	var n uint64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return uintptr(n) * mult, nil
}
