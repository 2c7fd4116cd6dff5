package jsondoc

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a character-level diff of the canonical encodings of from
// and to, rendered with terminal colors by diffmatchpatch. Equal
// documents produce their shared encoding unchanged.
func Diff(from, to Doc) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from.String(), to.String(), false)
	return dmp.DiffPrettyText(diffs)
}

// DiffText is like Diff without color escapes: deletions are wrapped in
// [-...] and insertions in [+...].
func DiffText(from, to Doc) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from.String(), to.String(), false)
	res := make([]byte, 0, 64)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			res = append(res, "[-"...)
			res = append(res, d.Text...)
			res = append(res, ']')
		case diffpatch.DiffInsert:
			res = append(res, "[+"...)
			res = append(res, d.Text...)
			res = append(res, ']')
		case diffpatch.DiffEqual:
			res = append(res, d.Text...)
		}
	}
	return string(res)
}
