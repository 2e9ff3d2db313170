package doctree

import "fmt"

// pathStep records one level of a resolved position's ancestor path.
type pathStep struct {
	// node is the tree node at this depth.
	node *Node

	// index is the child index the position falls at (boundary) or
	// descends into at this depth.
	index int

	// start is the absolute position where node's content begins.
	start int
}

// ResolvedPos describes where in the tree an absolute position falls,
// including its full ancestor path. Depth 0 is the document root; the
// innermost container has the greatest depth.
//
// A ResolvedPos is created fresh per event and borrows from the
// snapshot it was resolved against; it must not be cached beyond the
// handling of that event.
type ResolvedPos struct {
	// Pos is the absolute position this was resolved from.
	Pos int

	snapshot *Snapshot
	path     []pathStep

	// offset is the position relative to the innermost path node's
	// content start.
	offset int
}

// Resolve maps an absolute position onto the tree. It succeeds for
// every position in [0, ContentSize] and returns an error outside that
// range.
func (s *Snapshot) Resolve(pos int) (*ResolvedPos, error) {
	if pos < 0 || pos > s.ContentSize() {
		return nil, fmt.Errorf("doctree: position %d out of range [0, %d]", pos, s.ContentSize())
	}

	rp := &ResolvedPos{Pos: pos, snapshot: s}
	node, start, off := s.Root, 0, pos
	for {
		index, childStart := findIndex(node, off)
		rp.path = append(rp.path, pathStep{node: node, index: index, start: start})
		if off == childStart {
			// The position sits at a child boundary of node.
			rp.offset = off
			return rp, nil
		}

		child := node.Child(index)
		if child.IsText() {
			// Strictly inside a text leaf: the leaf itself is the
			// innermost level. Text has no boundary positions.
			rp.path = append(rp.path, pathStep{node: child, index: 0, start: start + childStart})
			rp.offset = off - childStart
			return rp, nil
		}

		// Descend past the child's opening boundary.
		node = child
		start += childStart + 1
		off -= childStart + 1
	}
}

// MustResolve is Resolve for positions known to be in range.
// It panics on an out-of-range position.
func (s *Snapshot) MustResolve(pos int) *ResolvedPos {
	rp, err := s.Resolve(pos)
	if err != nil {
		panic(err.Error())
	}
	return rp
}

// findIndex locates the child of n that the content-relative offset
// falls at or inside. It returns the child index and the offset of that
// child's start. An offset at a child's end boundary maps to the next
// index, so a boundary position always sits before the following child.
func findIndex(n *Node, off int) (index, childStart int) {
	if off == 0 {
		return 0, 0
	}
	cur := 0
	i := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		end := cur + child.NodeSize()
		if off <= end {
			if off == end {
				return i + 1, end
			}
			return i, cur
		}
		cur = end
		i++
	}
	return i, cur
}

// Snapshot returns the snapshot this position was resolved against.
func (rp *ResolvedPos) Snapshot() *Snapshot { return rp.snapshot }

// Depth returns the distance from the document root to the innermost
// node on the path. Depth 0 is the root itself.
func (rp *ResolvedPos) Depth() int { return len(rp.path) - 1 }

// Node returns the ancestor node at depth d.
func (rp *ResolvedPos) Node(d int) *Node {
	rp.checkDepth(d)
	return rp.path[d].node
}

// Index returns the child index the position falls at within the
// ancestor at depth d.
func (rp *ResolvedPos) Index(d int) int {
	rp.checkDepth(d)
	return rp.path[d].index
}

// Start returns the absolute position where the content of the ancestor
// at depth d begins.
func (rp *ResolvedPos) Start(d int) int {
	rp.checkDepth(d)
	return rp.path[d].start
}

// Before returns the absolute position immediately before the ancestor
// at depth d: its opening boundary, or 0 for the document root.
func (rp *ResolvedPos) Before(d int) int {
	rp.checkDepth(d)
	if d == 0 {
		return 0
	}
	step := rp.path[d]
	if step.node.IsText() {
		return step.start
	}
	return step.start - 1
}

// Parent returns the innermost node on the path. For a position inside
// a text leaf this is the leaf itself.
func (rp *ResolvedPos) Parent() *Node {
	return rp.path[len(rp.path)-1].node
}

// ParentOffset returns the position relative to the start of the
// innermost node's content.
func (rp *ResolvedPos) ParentOffset() int { return rp.offset }

// NodeAfter returns the child node immediately following the position,
// or nil when the position is inside a text leaf or at the very end of
// its container.
func (rp *ResolvedPos) NodeAfter() *Node {
	last := rp.path[len(rp.path)-1]
	if last.node.IsText() {
		return nil
	}
	if last.index >= last.node.ChildCount() {
		return nil
	}
	return last.node.Child(last.index)
}

// NodeBefore returns the child node immediately preceding the position,
// or nil when the position is inside a text leaf or at the very start
// of its container.
func (rp *ResolvedPos) NodeBefore() *Node {
	last := rp.path[len(rp.path)-1]
	if last.node.IsText() {
		return nil
	}
	if last.index == 0 {
		return nil
	}
	return last.node.Child(last.index - 1)
}

// Marks returns the set of marks active exactly at this position:
// the marks of the text leaf the position falls inside, or of the
// adjacent text leaf (preceding preferred) at a boundary.
func (rp *ResolvedPos) Marks() MarkSet {
	last := rp.path[len(rp.path)-1]
	if last.node.IsText() {
		return last.node.Marks
	}
	main := rp.NodeBefore()
	if main == nil {
		main = rp.NodeAfter()
	}
	if main == nil || !main.IsText() {
		return nil
	}
	return main.Marks
}

// AncestorChain returns the nodes touched by a hit at this position,
// ordered innermost first, walking outward through every containing
// ancestor and always ending at the document root. When the position
// sits between siblings the node immediately following it leads the
// chain, followed by its container; otherwise the chain starts at the
// position's immediate container, including hits at the very end of a
// container.
func (rp *ResolvedPos) AncestorChain() []NodeWithPos {
	depth := rp.Depth()
	chain := make([]NodeWithPos, 0, depth+2)
	if after := rp.NodeAfter(); after != nil {
		chain = append(chain, NodeWithPos{Node: after, Pos: rp.Pos})
	}
	for d := depth; d >= 0; d-- {
		chain = append(chain, NodeWithPos{Node: rp.Node(d), Pos: rp.Before(d)})
	}
	return chain
}

func (rp *ResolvedPos) checkDepth(d int) {
	if d < 0 || d >= len(rp.path) {
		panic(fmt.Sprintf("doctree: depth %d out of range [0, %d]", d, len(rp.path)-1))
	}
}
