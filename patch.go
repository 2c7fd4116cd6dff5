package jsondoc

import (
	"github.com/axfmt/jsondoc/debug"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 JSON patch to the document and returns the
// patched result as a new document; the receiver is not modified. The
// patched output is reparsed, so values introduced by the patch must stay
// within the parser's JSON subset (no null literals, escapes, signed
// numbers or exponents).
func Patch(d Doc, patchDoc []byte) (Doc, error) {
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return Doc{}, err
	}
	in := []byte(d.String())
	out, err := ops.Apply(in)
	if err != nil {
		return Doc{}, err
	}
	if debug.Patch() {
		debug.Logf("patch: %s -> %s\n", in, out)
	}
	return Parse(out)
}
