// Package jsondoc is an in-memory JSON document library: a value model of
// objects, arrays and scalar leaves, a parser from JSON text into that
// model, and a compact serializer back to text, fronted by the Doc
// convenience type.
//
// Doc values have reference semantics. Copying a Doc shares the
// underlying slot, so a replacement through either copy is visible
// through both. Set instead aliases the current value: both documents
// reference the same node and observe in-place mutations of it, while a
// later Set* replacement through one side repoints only that side's
// slot. Clone severs all sharing: it rebuilds the whole tree into fresh
// slots.
//
// Shape mismatches are lenient. Indexing a non-object by key or a
// non-array by position yields a disconnected empty value, and typed
// extraction reports ok=false rather than failing. Only two operations
// return errors: parsing malformed text (parse.ErrMalformed) and reading
// an unavailable file (ErrUnreadable).
package jsondoc

import (
	"io"

	"github.com/axfmt/jsondoc/encode"
	"github.com/axfmt/jsondoc/ir"
	"github.com/axfmt/jsondoc/parse"
)

// Doc is a handle on a document value. The zero Doc is disconnected and
// inert; construct documents with New, the From* constructors, Object,
// Array or Parse.
type Doc struct {
	root ir.Handle
}

// New returns a document holding an empty object.
func New() Doc {
	return Doc{root: ir.NewHandle(ir.NewObject())}
}

func FromString(v string) Doc {
	return Doc{root: ir.NewHandle(ir.FromString(v))}
}

func FromInt(v int64) Doc {
	return Doc{root: ir.NewHandle(ir.FromInt(v))}
}

func FromFloat(v float64) Doc {
	return Doc{root: ir.NewHandle(ir.FromFloat(v))}
}

func FromBool(v bool) Doc {
	return Doc{root: ir.NewHandle(ir.FromBool(v))}
}

// Null returns a document holding the null leaf.
func Null() Doc {
	return Doc{root: ir.NewHandle(ir.Null())}
}

// KV is one key/value pair for Object.
type KV struct {
	Key string
	Val Doc
}

// Object builds an object document. Each entry's value node is shared
// with the given Doc, but through a fresh slot, so later Set calls on the
// source Doc are not observed by the object.
func Object(kvs ...KV) Doc {
	obj := ir.NewObject()
	for _, kv := range kvs {
		obj.Put(kv.Key, ir.NewHandle(kv.Val.root.Node()))
	}
	return Doc{root: ir.NewHandle(obj)}
}

// Array builds an array document. Elements share their slot with the
// given Docs, so a later Set on a source Doc is observed by the array.
func Array(elems ...Doc) Doc {
	arr := ir.NewArray()
	for _, e := range elems {
		if e.root.IsZero() {
			continue
		}
		arr.Append(e.root)
	}
	return Doc{root: ir.NewHandle(arr)}
}

// Key returns the child document under k. Reading a missing key inserts
// an empty object there: the key count grows by exactly one and a second
// read returns the same child. On a non-object, Key returns a
// disconnected empty document and changes nothing.
func (d Doc) Key(k string) Doc {
	obj, ok := d.root.AsObject()
	if !ok {
		return New()
	}
	return Doc{root: obj.Upsert(k)}
}

// Index returns the element at position i. Out-of-range reads return a
// transient null document and never grow the array. On a non-array,
// Index returns a disconnected empty document.
func (d Doc) Index(i int) Doc {
	arr, ok := d.root.AsArray()
	if !ok {
		return New()
	}
	h, ok := arr.At(i)
	if !ok {
		return Null()
	}
	return Doc{root: h}
}

// Set makes this document reference the node currently held by other.
// Both sides then observe in-place mutations of the shared node, such
// as writes through Key, but the slots stay distinct: a later Set*
// replacement through either side is not observed by the other. Set on
// or from a zero Doc is a no-op.
func (d Doc) Set(other Doc) Doc {
	if d.root.IsZero() || other.root.IsZero() {
		return d
	}
	d.root.ResetTo(other.root)
	return d
}

func (d Doc) SetString(v string) Doc { return d.reset(ir.FromString(v)) }
func (d Doc) SetInt(v int64) Doc     { return d.reset(ir.FromInt(v)) }
func (d Doc) SetFloat(v float64) Doc { return d.reset(ir.FromFloat(v)) }
func (d Doc) SetBool(v bool) Doc     { return d.reset(ir.FromBool(v)) }
func (d Doc) SetNull() Doc           { return d.reset(ir.Null()) }

func (d Doc) reset(n *ir.Node) Doc {
	if !d.root.IsZero() {
		d.root.Reset(n)
	}
	return d
}

// Append adds elements to an array document, sharing slots with the
// given Docs. On a non-array it is a no-op.
func (d Doc) Append(elems ...Doc) Doc {
	arr, ok := d.root.AsArray()
	if !ok {
		return d
	}
	for _, e := range elems {
		if e.root.IsZero() {
			continue
		}
		arr.Append(e.root)
	}
	return d
}

// Clone deep-copies the document. No slot is shared between the original
// and the clone; mutating one never affects the other.
func (d Doc) Clone() Doc {
	if d.root.IsZero() {
		return d
	}
	return Doc{root: d.root.Clone()}
}

// Len returns the element count of an array document, 0 otherwise.
func (d Doc) Len() int {
	arr, ok := d.root.AsArray()
	if !ok {
		return 0
	}
	return arr.Len()
}

// Keys returns the object keys in ascending order, nil for non-objects.
func (d Doc) Keys() []string {
	obj, ok := d.root.AsObject()
	if !ok {
		return nil
	}
	res := make([]string, len(obj.Fields))
	copy(res, obj.Fields)
	return res
}

func (d Doc) IsLeaf() bool {
	n := d.root.Node()
	return n != nil && n.Kind.IsLeaf()
}

func (d Doc) IsObject() bool {
	n := d.root.Node()
	return n != nil && n.Kind.KeyIndexable()
}

func (d Doc) IsArray() bool {
	n := d.root.Node()
	return n != nil && n.Kind.Indexable()
}

// String renders the document as canonical compact JSON.
func (d Doc) String() string {
	return encode.MustString(d.root.Node())
}

// Encode writes the canonical compact rendering to w.
func (d Doc) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.root.Node(), w, opts...)
}

// Equal reports structural equality. Canonical encoding is deterministic
// (keys ascending, fixed separators), so it doubles as the equality key.
func Equal(a, b Doc) bool {
	return a.String() == b.String()
}

// Parse parses JSON text into a document.
func Parse(d []byte, opts ...parse.ParseOption) (Doc, error) {
	h, err := parse.Parse(d, opts...)
	if err != nil {
		return Doc{}, err
	}
	return Doc{root: h}, nil
}

func ParseString(s string, opts ...parse.ParseOption) (Doc, error) {
	return Parse([]byte(s), opts...)
}
