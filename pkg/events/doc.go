// Package events is the event-correlation and dispatch layer of the
// editor: it converts raw pointer/focus input callbacks into
// semantically meaningful editor events that carry the resolved
// document structure — the ancestor chain of nodes and the mark ranges
// under the pointer — and redistributes them to registered handlers.
//
// The host view delivers raw callbacks to a Dispatcher. For click-type
// events the host fires one callback per ancestor node during event
// bubbling; the dispatcher deduplicates those through a per-raw-event
// session so mark handlers run at most once per physical click while
// node handlers see every ancestor level.
//
// Handlers register in a Registry per event kind, ordered by ascending
// priority. Each kind carries one of two dispatch policies fixed at
// construction: early-return chains stop at the first handler that
// consumes the event, run-all chains always invoke every handler.
//
// Everything is single-threaded and synchronous: dispatch happens on
// the goroutine delivering the raw event, and registration must
// complete before dispatch begins.
package events
