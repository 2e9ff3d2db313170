package events

import "github.com/yaklabco/goeditev/pkg/doctree"

// Payload is the structured event handed to registered handlers. It is
// constructed once per raw event (or once per ancestor notification for
// click), and borrows from the snapshot active at event time: handlers
// must not retain it past their invocation.
type Payload struct {
	// Kind is the event kind this payload was dispatched for.
	Kind Kind

	// Raw is the originating low-level event.
	Raw *RawEvent

	// View is the active view collaborator.
	View View

	// Snapshot is the document snapshot the event was resolved against.
	Snapshot *doctree.Snapshot

	// Pos is the resolved absolute position, or -1 when the event
	// carries no position (focus/blur) or the coordinate missed
	// document content.
	Pos int

	// Resolved is the resolved position, nil when Pos is -1.
	Resolved *doctree.ResolvedPos

	// Nodes is the ancestor chain from the direct hit to the document
	// root. Empty on a resolution miss.
	Nodes []doctree.NodeWithPos

	// MarkRanges holds the ranges of the marks active at the hit point.
	MarkRanges []doctree.MarkRange

	// Node and NodePos identify the ancestor a click notification fires
	// for. Nil outside click dispatch.
	Node    *doctree.Node
	NodePos int

	// Direct is true only for the innermost click notification; every
	// ancestor notification carries false.
	Direct bool
}

// NodeOfType returns the entry of the ancestor chain with the named
// node type, if one was touched by this event.
//
// It panics when the name is not part of the schema: a handler asking
// for a nonexistent type is misconfigured, and the mismatch must not
// pass silently as a false negative.
func (p *Payload) NodeOfType(name string) (doctree.NodeWithPos, bool) {
	t := p.Snapshot.Schema.NodeType(name)
	for _, nw := range p.Nodes {
		if nw.Node.Type == t {
			return nw, true
		}
	}
	return doctree.NodeWithPos{}, false
}

// HasNodeOfType reports whether a node of the named type was touched by
// this event. It panics on an unknown type name, like NodeOfType.
func (p *Payload) HasNodeOfType(name string) bool {
	_, ok := p.NodeOfType(name)
	return ok
}

// MarkOfType returns the range of the named mark type at the hit point,
// if that mark is active there. It panics on an unknown type name, like
// NodeOfType.
func (p *Payload) MarkOfType(name string) (doctree.MarkRange, bool) {
	t := p.Snapshot.Schema.MarkType(name)
	for _, r := range p.MarkRanges {
		if r.Mark.Type == t {
			return r, true
		}
	}
	return doctree.MarkRange{}, false
}
