package jsondoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	d, err := ParseString(`{"b": true, "n": [1, 2.5, "s"]}`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"b": true,
		"n": []any{int64(1), 2.5, "s"},
	}
	if diff := cmp.Diff(want, ToAny(d)); diff != "" {
		t.Fatalf("ToAny mismatch (-want +got):\n%s", diff)
	}
	if got := ToAny(Null()); got != nil {
		t.Fatalf("ToAny(null) = %v", got)
	}
}

func TestFromAny(t *testing.T) {
	d, err := FromAny(map[string]any{
		"z": []any{1, true, nil},
		"a": "x",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != `{"a": "x", "z": [1, true, null]}` {
		t.Fatalf("FromAny = %s", got)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Fatal("no error for unsupported type")
	}
}

func TestFromAnyDocClones(t *testing.T) {
	src := FromInt(1)
	d, err := FromAny(src)
	if err != nil {
		t.Fatal(err)
	}
	src.SetInt(2)
	if got := d.String(); got != "1" {
		t.Fatalf("FromAny(Doc) shares state: %s", got)
	}
}
