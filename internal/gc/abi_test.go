package gc

import "testing"

func TestABISingletonLazyInit(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	SetFieldCounter(headerFieldCount)

	p, err := GCAlloc(16)
	if err != nil {
		t.Fatalf("GCAlloc(16) = %v, want nil error", err)
	}

	var root Ptr = p
	GCPushRoot(&root)
	if err := GCPopRoot(&root); err != nil {
		t.Fatalf("GCPopRoot = %v, want nil", err)
	}

	GCReadBarrier(p, 0)  // must not panic even though the field is garbage
	GCWriteBarrier(p, 0, Word(1))

	if global == nil {
		t.Fatal("global heap was not lazily initialized by GCAlloc")
	}
}

func TestABIWriteBarrierIgnoresItsArguments(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()
	SetFieldCounter(headerFieldCount)

	before := ensureGlobal().Snapshot().Writes
	GCWriteBarrier(Ptr(0xdeadbeef), 3, Word(99))
	after := ensureGlobal().Snapshot().Writes

	if after != before+1 {
		t.Errorf("Writes after GCWriteBarrier = %d, want %d", after, before+1)
	}
}

func TestABIMissingFieldCounterDefaultsToZeroFields(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	p, err := GCAlloc(8)
	if err != nil {
		t.Fatalf("GCAlloc(8) = %v, want nil error", err)
	}
	if global.fieldCounter(global.Header(p)) != 0 {
		t.Errorf("field count with no installed FieldCounter = %d, want 0", global.fieldCounter(global.Header(p)))
	}
}
