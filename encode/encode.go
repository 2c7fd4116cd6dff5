// Package encode renders document trees as canonical compact JSON text.
//
// Output is deterministic: object keys appear in ascending order (the ir
// layer stores them sorted), there is a single space after each colon and
// comma, and nothing else — no pretty printing, no trailing newline.
package encode

import (
	"errors"
	"io"
	"strconv"

	"github.com/axfmt/jsondoc/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	// Color, when set, wraps output spans for terminal display. It never
	// changes the span text itself.
	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes the canonical compact rendering of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeSpan(w, es, ir.LeafKind, ValueColor, "null")
	}
	switch node.Kind {
	case ir.LeafKind:
		return encodeLeaf(node, w, es)
	case ir.ObjectKind:
		return encodeObject(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	}
	return ErrEncoding
}

// encodeLeaf renders the payload per the leaf's format tag: Quoted wraps
// it in double quotes, Raw emits it verbatim, Boolean interprets the
// internal truth encoding and emits true or false. An absent payload is
// null regardless of format.
func encodeLeaf(node *ir.Node, w io.Writer, es *EncState) error {
	text, ok := node.Value()
	if !ok {
		return writeSpan(w, es, ir.LeafKind, ValueColor, "null")
	}
	switch node.Format {
	case ir.Quoted:
		return writeSpan(w, es, ir.LeafKind, ValueColor, `"`+text+`"`)
	case ir.Raw:
		return writeSpan(w, es, ir.LeafKind, ValueColor, text)
	case ir.Boolean:
		lit := "false"
		if i, err := strconv.Atoi(text); err == nil && i != 0 {
			lit = "true"
		}
		return writeSpan(w, es, ir.LeafKind, ValueColor, lit)
	}
	return ErrEncoding
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSpan(w, es, ir.ObjectKind, SepColor, "{"); err != nil {
		return err
	}
	for i, key := range node.Fields {
		if i > 0 {
			if err := writeSpan(w, es, ir.ObjectKind, SepColor, ", "); err != nil {
				return err
			}
		}
		if err := writeSpan(w, es, ir.ObjectKind, FieldColor, `"`+key+`"`); err != nil {
			return err
		}
		if err := writeSpan(w, es, ir.ObjectKind, SepColor, ": "); err != nil {
			return err
		}
		if err := encode(node.Values[i].Node(), w, es); err != nil {
			return err
		}
	}
	return writeSpan(w, es, ir.ObjectKind, SepColor, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSpan(w, es, ir.ArrayKind, SepColor, "["); err != nil {
		return err
	}
	for i := range node.Values {
		if i > 0 {
			if err := writeSpan(w, es, ir.ArrayKind, SepColor, ", "); err != nil {
				return err
			}
		}
		if err := encode(node.Values[i].Node(), w, es); err != nil {
			return err
		}
	}
	return writeSpan(w, es, ir.ArrayKind, SepColor, "]")
}

func writeSpan(w io.Writer, es *EncState, kind ir.Kind, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(kind, attr, s)
	}
	_, err := w.Write([]byte(s))
	return err
}
