// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"

	// Dispatch fields.
	FieldKind     = "kind"
	FieldPolicy   = "policy"
	FieldPos      = "pos"
	FieldDepth    = "depth"
	FieldNodes    = "nodes"
	FieldDirect   = "direct"
	FieldConsumed = "consumed"

	// Registration fields.
	FieldPriority  = "priority"
	FieldExtension = "extension"
	FieldHandlers  = "handlers"
)
