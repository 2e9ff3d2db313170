package events

import (
	"fmt"
	"slices"
)

// Kind identifies a semantic editor event.
type Kind string

// Event kinds the dispatch core understands.
const (
	// KindFocus and KindBlur track editor focus. No position is
	// resolved for them.
	KindFocus Kind = "focus"
	KindBlur  Kind = "blur"

	// Pointer-button kinds.
	KindMouseDown Kind = "mousedown"
	KindMouseUp   Kind = "mouseup"

	// Pointer-crossing kinds. They additionally toggle the dispatcher's
	// pointer-over flag.
	KindMouseEnter Kind = "mouseenter"
	KindMouseLeave Kind = "mouseleave"

	// KindClick fires once per ancestor on the path from the directly
	// clicked node to the document root. KindClickMark fires once per
	// physical click, for handlers interested in the mark ranges under
	// the pointer.
	KindClick     Kind = "click"
	KindClickMark Kind = "clickMark"

	KindContextMenu Kind = "contextmenu"
	KindHover       Kind = "hover"
)

// Policy is the handler-chain execution policy of an event kind.
type Policy uint8

const (
	// PolicyEarlyReturn stops the chain at the first handler that
	// reports the event consumed; the aggregate result is true.
	PolicyEarlyReturn Policy = iota

	// PolicyRunAll invokes every handler regardless of individual
	// results; the aggregate result is the logical OR of all results.
	PolicyRunAll
)

// String returns the policy name for log output.
func (p Policy) String() string {
	switch p {
	case PolicyEarlyReturn:
		return "earlyReturn"
	case PolicyRunAll:
		return "runAll"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// policies fixes the dispatch policy per kind. The table is resolved
// once here, not inferred at dispatch time.
var policies = map[Kind]Policy{
	KindFocus:       PolicyEarlyReturn,
	KindBlur:        PolicyEarlyReturn,
	KindMouseDown:   PolicyEarlyReturn,
	KindMouseUp:     PolicyEarlyReturn,
	KindMouseLeave:  PolicyEarlyReturn,
	KindClick:       PolicyEarlyReturn,
	KindMouseEnter:  PolicyRunAll,
	KindContextMenu: PolicyRunAll,
	KindHover:       PolicyRunAll,
	KindClickMark:   PolicyRunAll,
}

// Valid reports whether k is a known event kind.
func (k Kind) Valid() bool {
	_, ok := policies[k]
	return ok
}

// Policy returns the dispatch policy for the kind.
//
// It panics for an unknown kind: referring to an event kind the
// dispatch core does not know is a programmer error.
func (k Kind) Policy() Policy {
	p, ok := policies[k]
	if !ok {
		panic(fmt.Sprintf("events: unknown event kind %q (known: %v)", k, Kinds()))
	}
	return p
}

// Kinds returns all known event kinds in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(policies))
	for k := range policies {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
