package doctree

// MarkRange describes the maximal contiguous span, anchored at a
// resolved position, over which a mark instance applies. It is only
// well-defined relative to the snapshot the position was resolved
// against.
type MarkRange struct {
	// Mark is the mark instance found at the anchor.
	Mark Mark

	// From is the inclusive start position of the span.
	From int

	// To is the exclusive end position of the span.
	To int
}

// Contains reports whether the given position falls inside the range.
func (r MarkRange) Contains(pos int) bool {
	return pos >= r.From && pos < r.To
}

// RangeAt computes the contiguous range of content around rp covered by
// the given mark type, scanning outward over adjacent text leaves while
// the type (by identity, not attribute equality) stays present. A run
// never crosses its parent's boundary: adjacency is sibling adjacency
// within one inline sequence, mirroring how the model itself merges
// marks. The second result is false when the mark type is not active at
// the anchor.
//
// The anchor is the text leaf the position falls inside, or the leaf
// immediately following a boundary position, so From <= rp.Pos < To
// holds for every returned range.
func RangeAt(rp *ResolvedPos, t *MarkType) (MarkRange, bool) {
	parent, anchorIdx, parentStart, ok := anchorInlineChild(rp)
	if !ok {
		return MarkRange{}, false
	}

	anchor := parent.Child(anchorIdx)
	if !anchor.IsText() {
		return MarkRange{}, false
	}
	mark, ok := anchor.Marks.OfType(t)
	if !ok {
		return MarkRange{}, false
	}

	first, last := anchorIdx, anchorIdx
	for first > 0 {
		prev := parent.Child(first - 1)
		if !prev.IsText() || !prev.Marks.HasType(t) {
			break
		}
		first--
	}
	count := parent.ChildCount()
	for last < count-1 {
		next := parent.Child(last + 1)
		if !next.IsText() || !next.Marks.HasType(t) {
			break
		}
		last++
	}

	from := parentStart + offsetOfChild(parent, first)
	to := parentStart + offsetOfChild(parent, last) + parent.Child(last).NodeSize()
	return MarkRange{Mark: mark, From: from, To: to}, true
}

// RangesAt returns the mark ranges for every mark with a well-defined
// range at rp, in mark-set order.
func RangesAt(rp *ResolvedPos) []MarkRange {
	var ranges []MarkRange
	for _, m := range rp.Marks() {
		if r, ok := RangeAt(rp, m.Type); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// anchorInlineChild locates the inline parent and anchor child index
// for a mark-range scan. For a position inside a text leaf the anchor
// is the leaf itself; for a boundary position it is the following
// child, if any.
func anchorInlineChild(rp *ResolvedPos) (parent *Node, anchorIdx, parentStart int, ok bool) {
	last := rp.path[len(rp.path)-1]
	if last.node.IsText() {
		up := rp.path[len(rp.path)-2]
		return up.node, up.index, up.start, true
	}
	if last.index >= last.node.ChildCount() {
		return nil, 0, 0, false
	}
	return last.node, last.index, last.start, true
}

// offsetOfChild returns the content-relative offset of the start of the
// idx-th child of parent.
func offsetOfChild(parent *Node, idx int) int {
	off := 0
	i := 0
	for child := parent.FirstChild; child != nil && i < idx; child = child.Next {
		off += child.NodeSize()
		i++
	}
	return off
}
