package parse

import "errors"

// ErrMalformed reports a structural violation in the input. The parse is
// aborted; no partial document is ever returned.
var ErrMalformed = errors.New("malformed input")
