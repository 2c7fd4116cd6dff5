package jsondoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/axfmt/jsondoc/parse"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": [1, 2]}`), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != `{"a": [1, 2]}` {
		t.Fatalf("parsed %s", got)
	}
}

func TestParseFileUnreadable(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
	if errors.Is(err, parse.ErrMalformed) {
		t.Fatal("unreadable file reported as malformed content")
	}
}

func TestParseFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a":}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !errors.Is(err, parse.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if errors.Is(err, ErrUnreadable) {
		t.Fatal("malformed content reported as unreadable")
	}
}
