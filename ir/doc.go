// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// Documents are trees of Node values. A Node is a tagged union over a
// closed kind set:
//
//   - LeafKind: scalar with optional textual payload plus a render Format
//   - ObjectKind: key-sorted mapping from string keys to child handles
//   - ArrayKind: ordered sequence of child handles
//
// Leaf payloads are always text, including numbers and booleans; the
// Format tag (Quoted, Raw, Boolean) decides how the text is rendered when
// encoding. A leaf with no payload denotes null.
//
// # Handles and cells
//
// Children are held through Handle values rather than bare node pointers.
// A Handle references a cell, and copying a Handle shares the cell.
// Resetting the cell through any alias repoints what every alias sees,
// which is what gives the facade its reference-assignment semantics. A
// *Node obtained from Handle.Node before a reset is a snapshot and does
// not observe the reset.
//
// # Creating nodes
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	o := ir.NewObject()
//	o.Put("key", ir.NewHandle(s))
package ir
