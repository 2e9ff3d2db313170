package doctree

import "unicode/utf8"

// Node represents a single node in the document tree.
// Nodes form a tree structure with parent/child/sibling relationships.
//
// Positions are token positions: entering or leaving a non-text node
// costs one position, a childless leaf occupies one position, and each
// rune of a text leaf costs one position. Snapshot.Resolve maps an
// absolute position back onto the tree.
type Node struct {
	// Type identifies what kind of node this is.
	Type *NodeType

	// Attrs holds node attributes (e.g., a heading level). May be nil.
	Attrs map[string]any

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Text holds the runes of a text leaf. Empty for non-text nodes.
	Text string

	// Marks holds the annotations active on a text leaf.
	Marks MarkSet
}

// NewNode creates a node of the given non-text type with the given
// children appended in order.
func NewNode(t *NodeType, children ...*Node) *Node {
	n := &Node{Type: t}
	for _, child := range children {
		AppendChild(n, child)
	}
	return n
}

// NewText creates a text leaf carrying the given marks.
func NewText(t *NodeType, text string, marks ...Mark) *Node {
	return &Node{Type: t, Text: text, Marks: marks}
}

// IsText returns true for text leaves.
func (n *Node) IsText() bool {
	return n.Type != nil && n.Type.Text
}

// IsLeaf returns true for nodes that can never have content: text
// leaves and childless leaf types.
func (n *Node) IsLeaf() bool {
	return n.Type != nil && (n.Type.Text || n.Type.Leaf)
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Child returns the i-th direct child. It panics if i is out of range.
func (n *Node) Child(i int) *Node {
	idx := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		if idx == i {
			return child
		}
		idx++
	}
	panic("doctree: child index out of range")
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// TextLen returns the rune length of a text leaf, 0 otherwise.
func (n *Node) TextLen() int {
	if !n.IsText() {
		return 0
	}
	return utf8.RuneCountInString(n.Text)
}

// NodeSize returns the number of positions this node occupies in its
// parent: rune count for text leaves, 1 for childless leaf types, and
// content size plus the two boundary positions otherwise.
func (n *Node) NodeSize() int {
	if n.IsText() {
		return n.TextLen()
	}
	if n.Type != nil && n.Type.Leaf {
		return 1
	}
	return 2 + n.ContentSize()
}

// ContentSize returns the number of positions spanned by this node's
// content. For text leaves this is the rune count.
func (n *Node) ContentSize() int {
	if n.IsText() {
		return n.TextLen()
	}
	size := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		size += child.NodeSize()
	}
	return size
}

// TypeName returns the node's type name, or "" for an untyped node.
func (n *Node) TypeName() string {
	if n.Type == nil {
		return ""
	}
	return n.Type.Name
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild detaches a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}
	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// NodeWithPos pairs a node with the absolute position immediately
// before it. Values are borrowed from the snapshot active at the time
// they were produced and must not be retained past it.
type NodeWithPos struct {
	Node *Node

	// Pos is the absolute position of the node's start: the position of
	// its opening boundary, or 0 for the document root.
	Pos int
}
