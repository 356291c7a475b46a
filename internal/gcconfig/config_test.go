package gcconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want uintptr
	}{
		{"", 0},
		{"4096", 4096},
		{"64KiB", 64 << 10},
		{"1MiB", 1 << 20},
		{"2GiB", 2 << 30},
		{" 8 MiB ", 8 << 20},
	}
	for _, c := range cases {
		got, err := ParseSize(c.in)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSizeRejectsGarbage(t *testing.T) {
	if _, err := ParseSize("lots"); err == nil {
		t.Fatal("ParseSize(\"lots\") succeeded, want an error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gc.toml")
	const contents = `
[heap]
max_alloc_size = "2MiB"
records_to_forward = 32
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxAllocSize != 2<<20 {
		t.Errorf("MaxAllocSize = %d, want %d", cfg.MaxAllocSize, 2<<20)
	}
	if cfg.RecordsToForward != 32 {
		t.Errorf("RecordsToForward = %d, want 32", cfg.RecordsToForward)
	}
}

func TestLoadMissingHeapSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gc.toml")
	if err := os.WriteFile(path, []byte("other = 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load with no [heap] section succeeded, want ErrHeapSectionMissing")
	}
}
