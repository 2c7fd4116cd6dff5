package ir

import (
	"slices"
	"strconv"
	"strings"
)

// Node is a value in a document tree. It is a tagged union over the closed
// kind set: leaves carry an optional textual payload plus a render format,
// objects carry key-sorted fields, arrays carry ordered elements.
//
// The payload is textual for every leaf, including numbers and booleans.
// Numeric and boolean identity is not retained beyond the Format tag used
// at encode time. A nil Text denotes null.
//
// For ObjectKind, Fields[i] is the key for the child at Values[i], so both
// slices always have the same length and Fields is in ascending order. For
// ArrayKind only Values is populated, in append order.
type Node struct {
	Kind   Kind
	Format Format
	Text   *string

	Fields []string
	Values []Handle
}

func FromString(v string) *Node {
	return &Node{Kind: LeafKind, Format: Quoted, Text: &v}
}

func FromInt(v int64) *Node {
	s := strconv.FormatInt(v, 10)
	return &Node{Kind: LeafKind, Format: Raw, Text: &s}
}

// FromFloat keeps a decimal point in the payload so that reparsing the
// encoding stays on the float path even for integral values.
func FromFloat(v float64) *Node {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return &Node{Kind: LeafKind, Format: Raw, Text: &s}
}

// FromBool stores the internal truth encoding "1"/"0"; the Boolean format
// turns it back into true/false at encode time.
func FromBool(v bool) *Node {
	s := "0"
	if v {
		s = "1"
	}
	return &Node{Kind: LeafKind, Format: Boolean, Text: &s}
}

func Null() *Node {
	return &Node{Kind: LeafKind}
}

func NewObject() *Node {
	return &Node{Kind: ObjectKind}
}

func NewArray() *Node {
	return &Node{Kind: ArrayKind}
}

// Value returns the leaf payload text. ok is false for null leaves and for
// non-leaf nodes.
func (n *Node) Value() (string, bool) {
	if !n.Kind.IsLeaf() || n.Text == nil {
		return "", false
	}
	return *n.Text, true
}

// Clone deep-copies the node. Every object and array child is rebuilt into
// a fresh cell, so no aliasing survives between the original and the copy.
func (n *Node) Clone() *Node {
	res := &Node{Kind: n.Kind, Format: n.Format}
	if n.Text != nil {
		t := *n.Text
		res.Text = &t
	}
	if n.Fields != nil {
		res.Fields = slices.Clone(n.Fields)
	}
	if n.Values != nil {
		res.Values = make([]Handle, len(n.Values))
		for i, h := range n.Values {
			res.Values[i] = h.Clone()
		}
	}
	return res
}

// Get returns the child handle under key. It does not modify the key set.
func (n *Node) Get(key string) (Handle, bool) {
	i, ok := slices.BinarySearch(n.Fields, key)
	if !ok {
		return Handle{}, false
	}
	return n.Values[i], true
}

// Put binds key to h, replacing any existing binding. Fields stays sorted.
func (n *Node) Put(key string, h Handle) {
	i, ok := slices.BinarySearch(n.Fields, key)
	if ok {
		n.Values[i] = h
		return
	}
	n.Fields = slices.Insert(n.Fields, i, key)
	n.Values = slices.Insert(n.Values, i, h)
}

// Upsert returns the child handle under key, inserting a handle to a fresh
// empty object if the key is absent. A plain read of a missing key grows
// the object by exactly one entry; a second read returns the same child.
func (n *Node) Upsert(key string) Handle {
	i, ok := slices.BinarySearch(n.Fields, key)
	if ok {
		return n.Values[i]
	}
	h := NewHandle(NewObject())
	n.Fields = slices.Insert(n.Fields, i, key)
	n.Values = slices.Insert(n.Values, i, h)
	return h
}

// At returns the element at index i, or a zero Handle when i is out of
// range. The array never grows on read.
func (n *Node) At(i int) (Handle, bool) {
	if i < 0 || i >= len(n.Values) {
		return Handle{}, false
	}
	return n.Values[i], true
}

func (n *Node) Append(hs ...Handle) {
	n.Values = append(n.Values, hs...)
}

func (n *Node) Len() int {
	return len(n.Values)
}
