package doctree

// Mark is one inline annotation instance: a type plus its attributes.
// A mark applies to whole text leaves; a contiguous run of text leaves
// carrying the same mark type forms one logical span.
type Mark struct {
	// Type identifies the kind of annotation.
	Type *MarkType

	// Attrs holds instance attributes (e.g., a link href). May be nil.
	Attrs map[string]any
}

// NewMark creates a mark of the given type with no attributes.
func NewMark(t *MarkType) Mark {
	return Mark{Type: t}
}

// SameType reports whether both marks have the same type, ignoring
// attributes. Type comparison is by identity.
func (m Mark) SameType(other Mark) bool {
	return m.Type == other.Type
}

// MarkSet is an ordered set of marks active on a text leaf or at a
// resolved position. Order follows the order of application.
type MarkSet []Mark

// HasType reports whether any mark in the set has the given type.
func (ms MarkSet) HasType(t *MarkType) bool {
	for _, m := range ms {
		if m.Type == t {
			return true
		}
	}
	return false
}

// OfType returns the mark of the given type and whether one exists.
func (ms MarkSet) OfType(t *MarkType) (Mark, bool) {
	for _, m := range ms {
		if m.Type == t {
			return m, true
		}
	}
	return Mark{}, false
}

// Types returns the mark types in set order.
func (ms MarkSet) Types() []*MarkType {
	types := make([]*MarkType, 0, len(ms))
	for _, m := range ms {
		types = append(types, m.Type)
	}
	return types
}
