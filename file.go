package jsondoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/axfmt/jsondoc/parse"
)

// ErrUnreadable reports that a source file could not be read. It is
// distinct from parse.ErrMalformed so callers can tell a bad path from
// bad content.
var ErrUnreadable = errors.New("unreadable source")

// ParseFile reads the whole file at path and parses it. Read failures
// wrap ErrUnreadable; content failures wrap parse.ErrMalformed.
func ParseFile(path string) (Doc, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return Parse(d, parse.ParseSource(path))
}
