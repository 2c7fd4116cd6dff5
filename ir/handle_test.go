package ir

import "testing"

func TestAliasSeesReset(t *testing.T) {
	a := NewHandle(FromString("old"))
	b := a // alias: shares the cell

	b.Reset(FromString("new"))

	if v, _ := a.Node().Value(); v != "new" {
		t.Fatalf("alias a sees %q after reset through b, want new", v)
	}
}

func TestSnapshotUnaffectedByReset(t *testing.T) {
	a := NewHandle(FromString("old"))
	snap := a.Node()

	a.Reset(FromString("new"))

	if v, _ := snap.Value(); v != "old" {
		t.Fatalf("snapshot = %q after reset, want old", v)
	}
	if v, _ := a.Node().Value(); v != "new" {
		t.Fatalf("re-fetch = %q after reset, want new", v)
	}
}

func TestResetToAliasesNodeNotCell(t *testing.T) {
	a := NewHandle(FromString("a"))
	b := NewHandle(FromString("b"))

	a.ResetTo(b)
	if a.Node() != b.Node() {
		t.Fatal("a and b reference different nodes after ResetTo")
	}

	// the cells stay distinct: a later reset of b is not seen by a
	b.Reset(FromString("c"))
	if v, _ := a.Node().Value(); v != "b" {
		t.Fatalf("a = %q after b reset, want b", v)
	}
}

func TestHandleCloneUnshared(t *testing.T) {
	a := NewHandle(FromString("x"))
	c := a.Clone()
	a.Reset(FromString("y"))
	if v, _ := c.Node().Value(); v != "x" {
		t.Fatalf("clone = %q after original reset, want x", v)
	}
	if c.Node() == a.Node() {
		t.Fatal("clone shares node with original")
	}
}

func TestCapabilityCasts(t *testing.T) {
	tests := []struct {
		name   string
		h      Handle
		leaf   bool
		object bool
		array  bool
	}{
		{name: "leaf", h: NewHandle(FromInt(1)), leaf: true},
		{name: "null leaf", h: NewHandle(Null()), leaf: true},
		{name: "object", h: NewHandle(NewObject()), object: true},
		{name: "array", h: NewHandle(NewArray()), array: true},
		{name: "zero handle", h: Handle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.h.AsLeaf(); ok != tt.leaf {
				t.Errorf("AsLeaf ok = %v, want %v", ok, tt.leaf)
			}
			if _, ok := tt.h.AsObject(); ok != tt.object {
				t.Errorf("AsObject ok = %v, want %v", ok, tt.object)
			}
			if _, ok := tt.h.AsArray(); ok != tt.array {
				t.Errorf("AsArray ok = %v, want %v", ok, tt.array)
			}
		})
	}
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	if !h.IsZero() {
		t.Fatal("zero handle IsZero() = false")
	}
	if h.Node() != nil {
		t.Fatal("zero handle Node() != nil")
	}
	if NewHandle(Null()).IsZero() {
		t.Fatal("constructed handle IsZero() = true")
	}
}
