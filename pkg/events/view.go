package events

import "github.com/yaklabco/goeditev/pkg/doctree"

// View is the boundary with the document/view collaborator. The
// dispatch core consumes it to read document state and to hook the
// page-level listeners it cannot observe on its own.
type View interface {
	// Snapshot returns the current document snapshot.
	Snapshot() *doctree.Snapshot

	// PosAtCoords maps a viewport coordinate to an absolute document
	// position. The second result is false when the coordinate lands
	// outside document content (editor padding, margins); callers treat
	// that as "no structural event", not an error.
	PosAtCoords(c Coords) (int, bool)

	// ListenOncePointerUp registers a one-shot listener for the next
	// pointer release anywhere in the containing page, not just inside
	// the editor.
	ListenOncePointerUp(fn func())

	// RequestRefresh triggers a no-op state refresh so UI bound to
	// dispatcher state re-renders.
	RequestRefresh()
}
