package ir

import "fmt"

// Kind discriminates the node variants. The set is closed: every consumer
// dispatches with an exhaustive switch over LeafKind, ObjectKind, ArrayKind.
type Kind int

const (
	LeafKind Kind = iota
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		LeafKind:   "Leaf",
		ObjectKind: "Object",
		ArrayKind:  "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf":   LeafKind,
		"Object": ObjectKind,
		"Array":  ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{LeafKind, ObjectKind, ArrayKind}
}

// IsLeaf reports whether nodes of this kind carry a scalar payload.
func (k Kind) IsLeaf() bool {
	return k == LeafKind
}

// KeyIndexable reports whether nodes of this kind support lookup by key.
func (k Kind) KeyIndexable() bool {
	return k == ObjectKind
}

// Indexable reports whether nodes of this kind support positional lookup.
func (k Kind) Indexable() bool {
	return k == ArrayKind
}

// Format selects how a leaf payload is rendered at encode time.
type Format int

const (
	// Quoted wraps the payload in double quotes.
	Quoted Format = iota
	// Raw emits the payload verbatim, used for numbers.
	Raw
	// Boolean interprets the payload as a truth value and emits
	// true or false.
	Boolean
)

func (f Format) String() string {
	s, ok := map[Format]string{
		Quoted:  "Quoted",
		Raw:     "Raw",
		Boolean: "Boolean",
	}[f]
	if ok {
		return s
	}
	return "<unknown format>"
}
