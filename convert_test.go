package jsondoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTo(t *testing.T) {
	t.Run("int from int leaf", func(t *testing.T) {
		v, ok := To[int64](FromInt(42))
		if !ok || v != 42 {
			t.Fatalf("got %d/%v", v, ok)
		}
	})
	t.Run("float from int leaf reparses", func(t *testing.T) {
		v, ok := To[float64](FromInt(42))
		if !ok || v != 42.0 {
			t.Fatalf("got %v/%v", v, ok)
		}
	})
	t.Run("int from float leaf truncates", func(t *testing.T) {
		v, ok := To[int](FromFloat(1.9))
		if !ok || v != 1 {
			t.Fatalf("got %d/%v", v, ok)
		}
	})
	t.Run("string verbatim", func(t *testing.T) {
		v, ok := To[string](FromString("x y"))
		if !ok || v != "x y" {
			t.Fatalf("got %q/%v", v, ok)
		}
	})
	t.Run("string from bool leaf is the internal encoding", func(t *testing.T) {
		v, ok := To[string](FromBool(true))
		if !ok || v != "1" {
			t.Fatalf("got %q/%v, want internal encoding 1", v, ok)
		}
		v, ok = To[string](FromBool(false))
		if !ok || v != "0" {
			t.Fatalf("got %q/%v, want internal encoding 0", v, ok)
		}
	})
	t.Run("string from number leaf", func(t *testing.T) {
		v, ok := To[string](FromInt(7))
		if !ok || v != "7" {
			t.Fatalf("got %q/%v", v, ok)
		}
	})
	t.Run("unparseable number", func(t *testing.T) {
		if _, ok := To[int64](FromString("oops")); ok {
			t.Fatal("ok on unparseable text")
		}
	})
	t.Run("null leaf", func(t *testing.T) {
		if _, ok := To[string](Null()); ok {
			t.Fatal("ok on null leaf")
		}
	})
	t.Run("non-leaf", func(t *testing.T) {
		if _, ok := To[int64](New()); ok {
			t.Fatal("ok on object")
		}
		if _, ok := To[string](Array()); ok {
			t.Fatal("ok on array")
		}
	})
}

func TestAsVectorSkipsUnconvertible(t *testing.T) {
	d, err := ParseString(`[1, 2, "oops", 4]`)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := AsVector[int](d)
	if !ok {
		t.Fatal("not ok on array")
	}
	if diff := cmp.Diff([]int{1, 2, 4}, got); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestAsVectorStrings(t *testing.T) {
	d := Array(FromString("a"), FromInt(1), FromBool(true), Null(), New())
	got, ok := AsVector[string](d)
	if !ok {
		t.Fatal("not ok on array")
	}
	// null and object elements are skipped; bool yields its encoding
	if diff := cmp.Diff([]string{"a", "1", "1"}, got); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestAsVectorNonArray(t *testing.T) {
	if _, ok := AsVector[int](FromInt(1)); ok {
		t.Fatal("ok on leaf")
	}
	if _, ok := AsVector[int](New()); ok {
		t.Fatal("ok on object")
	}
}

func TestSetSlice(t *testing.T) {
	d := New()
	SetSlice(d, []string{"a", "b"})
	if got := d.String(); got != `["a", "b"]` {
		t.Fatalf("after SetSlice: %s", got)
	}
}
