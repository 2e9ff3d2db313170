// Package doctree provides the document model the event layer operates
// on: an immutable snapshot of a node tree with text leaves carrying
// inline marks, a schema of named node and mark types, and position
// resolution from absolute offsets down to the innermost node.
//
// A Snapshot is immutable by convention: edits build a new snapshot
// rather than mutating an existing one, so everything resolved against
// one snapshot stays consistent for as long as that snapshot is in use.
package doctree

// Snapshot is an immutable view of a document at one instant.
type Snapshot struct {
	// Schema is the set of node and mark types this document uses.
	Schema *Schema

	// Root is the document root node. Its type is Schema.Doc().
	Root *Node
}

// NewSnapshot creates a snapshot over the given root.
// A nil root is replaced by an empty document node.
func NewSnapshot(schema *Schema, root *Node) *Snapshot {
	if root == nil {
		root = NewNode(schema.Doc())
	}
	return &Snapshot{Schema: schema, Root: root}
}

// ContentSize returns the number of valid positions in the document:
// absolute positions range over [0, ContentSize].
func (s *Snapshot) ContentSize() int {
	return s.Root.ContentSize()
}
