package script

import (
	"errors"
	"testing"
)

func TestRegisterExplicitNumber(t *testing.T) {
	a := newRegisterAllocator()
	ref, err := a.getOrCreate("counter", 10)
	if err != nil {
		t.Fatalf("getOrCreate failed: %v", err)
	}
	if a.rec(ref).number != 10 {
		t.Errorf("number = %d, want 10", a.rec(ref).number)
	}

	// Same name resolves to the same record.
	again, err := a.getOrCreate("counter", -1)
	if err != nil {
		t.Fatalf("getOrCreate by name failed: %v", err)
	}
	if again != ref {
		t.Errorf("lookup by name returned a different record")
	}

	// Same number too.
	byNum, err := a.getOrCreate("", 10)
	if err != nil {
		t.Fatalf("getOrCreate by number failed: %v", err)
	}
	if byNum != ref {
		t.Errorf("lookup by number returned a different record")
	}
}

func TestRegisterNumberConflict(t *testing.T) {
	a := newRegisterAllocator()
	if _, err := a.getOrCreate("first", 5); err != nil {
		t.Fatal(err)
	}
	if _, err := a.getOrCreate("first", 6); !errors.Is(err, ErrRegisterConflict) {
		t.Errorf("expected ErrRegisterConflict for second number, got %v", err)
	}

	if _, err := a.getOrCreate("second", -1); err != nil {
		t.Fatal(err)
	}
	if _, err := a.getOrCreate("second", 5); !errors.Is(err, ErrRegisterConflict) {
		t.Errorf("expected ErrRegisterConflict for taken number, got %v", err)
	}
}

func TestRegisterNameConflict(t *testing.T) {
	a := newRegisterAllocator()
	if _, err := a.getOrCreate("alpha", 7); err != nil {
		t.Fatal(err)
	}
	if _, err := a.getOrCreate("beta", 7); !errors.Is(err, ErrRegisterConflict) {
		t.Errorf("expected ErrRegisterConflict for second name on one number, got %v", err)
	}
}

func TestRegisterAssignAllLowestFree(t *testing.T) {
	a := newRegisterAllocator()
	if _, err := a.getOrCreate("", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := a.getOrCreate("", 1); err != nil {
		t.Fatal(err)
	}
	ref, err := a.getOrCreate("free", -1)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.assignAll(); err != nil {
		t.Fatalf("assignAll failed: %v", err)
	}
	if a.rec(ref).number != 2 {
		t.Errorf("free register number = %d, want 2", a.rec(ref).number)
	}
}

func TestRegisterAssignAllChainAfterAnchor(t *testing.T) {
	// A named register constrained to follow a numbered one derives its
	// number from the anchor.
	a := newRegisterAllocator()
	anchor, err := a.getOrCreate("", 30)
	if err != nil {
		t.Fatal(err)
	}
	follower, err := a.getOrCreate("next", -1)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.constrain(anchor, follower); err != nil {
		t.Fatalf("constrain failed: %v", err)
	}
	if err := a.assignAll(); err != nil {
		t.Fatalf("assignAll failed: %v", err)
	}
	if a.rec(follower).number != 31 {
		t.Errorf("follower number = %d, want 31", a.rec(follower).number)
	}
}

func TestRegisterAssignAllFreeChain(t *testing.T) {
	// Three unnumbered registers constrained consecutively with 0 and 1
	// occupied get the block starting at 2. Note that the free block
	// search must skip the occupied low numbers.
	a := newRegisterAllocator()
	if _, err := a.getOrCreate("", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := a.getOrCreate("", 1); err != nil {
		t.Fatal(err)
	}
	var refs []regRef
	for _, name := range []string{"ca", "cb", "cc"} {
		ref, err := a.getOrCreate(name, -1)
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, ref)
	}
	if err := a.constrain(refs[0], refs[1]); err != nil {
		t.Fatal(err)
	}
	if err := a.constrain(refs[1], refs[2]); err != nil {
		t.Fatal(err)
	}
	if err := a.assignAll(); err != nil {
		t.Fatalf("assignAll failed: %v", err)
	}
	for i, ref := range refs {
		if got := a.rec(ref).number; got != int16(2+i) {
			t.Errorf("chain register %d number = %d, want %d", i, got, 2+i)
		}
	}
}

func TestRegisterConstrainNonConsecutive(t *testing.T) {
	a := newRegisterAllocator()
	first, err := a.getOrCreate("", 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.getOrCreate("", 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.constrain(first, second); !errors.Is(err, ErrRegisterConflict) {
		t.Errorf("expected ErrRegisterConflict for non-consecutive numbers, got %v", err)
	}
}

func TestRegisterConstrainWrap(t *testing.T) {
	// r255 followed by r0 is consecutive because numbers wrap.
	a := newRegisterAllocator()
	first, err := a.getOrCreate("", 255)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.getOrCreate("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.constrain(first, second); err != nil {
		t.Errorf("constrain across the wrap failed: %v", err)
	}
}

func TestRegisterPatch(t *testing.T) {
	a := newRegisterAllocator()
	ref, err := a.getOrCreate("slot", -1)
	if err != nil {
		t.Fatal(err)
	}
	code := []byte{0x10, 0xFF, 0x20, 0xFF}
	a.addPatchOffset(ref, 1)
	a.addPatchOffset(ref, 3)
	if err := a.assignAll(); err != nil {
		t.Fatalf("assignAll failed: %v", err)
	}
	a.patch(code)
	want := uint8(a.rec(ref).number)
	if code[1] != want || code[3] != want {
		t.Errorf("patched code = %v, want number %d at offsets 1 and 3", code, want)
	}
	if code[0] != 0x10 || code[2] != 0x20 {
		t.Errorf("patch touched unrelated bytes: %v", code)
	}
}

func TestRegisterExhausted(t *testing.T) {
	a := newRegisterAllocator()
	for z := 0; z < 0x100; z++ {
		if _, err := a.getOrCreate("", z); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := a.getOrCreate("overflow", -1); err != nil {
		t.Fatal(err)
	}
	if err := a.assignAll(); !errors.Is(err, ErrRegisterExhausted) {
		t.Errorf("expected ErrRegisterExhausted, got %v", err)
	}
}
