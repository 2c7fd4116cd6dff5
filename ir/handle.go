package ir

// cell is the shared indirection slot behind a Handle. Replacing its node
// is visible to every alias of the cell.
type cell struct {
	node *Node
}

// Handle references a cell. Copying a Handle shares the cell, so two
// handles produced by copying one another observe each other's resets.
// This is the two-level indirection (handle -> cell -> node) that lets
// assignment through one alias repoint what all aliases see, while a
// dereferenced *Node captured before a reset stays a snapshot.
//
// Cells are not synchronized; callers using handles from multiple
// goroutines must serialize access externally.
type Handle struct {
	c *cell
}

// NewHandle allocates a fresh cell referencing n.
func NewHandle(n *Node) Handle {
	return Handle{c: &cell{node: n}}
}

// IsZero reports whether the handle references no cell. Zero handles come
// from out-of-range array reads and from the zero Doc.
func (h Handle) IsZero() bool {
	return h.c == nil
}

// Node returns the cell's current node. The result is a snapshot: a later
// Reset through any alias does not update a previously returned pointer.
func (h Handle) Node() *Node {
	if h.c == nil {
		return nil
	}
	return h.c.node
}

// Reset repoints the cell to n. Every alias sharing the cell observes n on
// its next dereference.
func (h Handle) Reset(n *Node) {
	h.c.node = n
}

// ResetTo repoints the cell to the node currently referenced by other. The
// two handles then share the node but keep their distinct cells.
func (h Handle) ResetTo(other Handle) {
	h.c.node = other.c.node
}

// Clone deep-copies the current node into a brand-new, unshared cell.
func (h Handle) Clone() Handle {
	return NewHandle(h.c.node.Clone())
}

// AsLeaf returns the current node when it is a leaf.
func (h Handle) AsLeaf() (*Node, bool) {
	n := h.Node()
	if n == nil || !n.Kind.IsLeaf() {
		return nil, false
	}
	return n, true
}

// AsObject returns the current node when it is key indexable.
func (h Handle) AsObject() (*Node, bool) {
	n := h.Node()
	if n == nil || !n.Kind.KeyIndexable() {
		return nil, false
	}
	return n, true
}

// AsArray returns the current node when it is indexable.
func (h Handle) AsArray() (*Node, bool) {
	n := h.Node()
	if n == nil || !n.Kind.Indexable() {
		return nil, false
	}
	return n, true
}
