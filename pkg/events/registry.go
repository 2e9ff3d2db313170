package events

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Handler processes one structured event. Returning true marks the
// event consumed: an early-return chain stops, and the host is told to
// suppress default behavior.
type Handler func(p *Payload) bool

// Registration records one registered handler.
type Registration struct {
	// Kind is the event kind the handler listens for.
	Kind Kind

	// Priority orders invocation: lower priority numbers run first.
	// Ties are broken by registration order.
	Priority int

	// Owner names the extension that registered the handler, when it
	// was registered through an extension source. Empty otherwise.
	Owner string

	handler Handler
	seq     int
}

// Registry maps event kinds to ordered handler chains. Registrations
// are added during editor initialization and live for the editor
// instance's lifetime; teardown discards the whole registry.
type Registry struct {
	mu      sync.RWMutex
	chains  map[Kind][]*Registration
	nextSeq int
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		chains: make(map[Kind][]*Registration),
	}
}

// Register adds a handler for the kind at the given priority and
// returns its registration handle.
//
// It panics for an unknown kind or a nil handler; both indicate a
// misconfigured caller, not a runtime condition.
func (r *Registry) Register(kind Kind, priority int, h Handler) *Registration {
	return r.RegisterOwned(kind, priority, h, "")
}

// RegisterOwned is Register with an owning-extension identity attached
// to the registration.
func (r *Registry) RegisterOwned(kind Kind, priority int, h Handler, owner string) *Registration {
	if !kind.Valid() {
		panic(fmt.Sprintf("events: register for unknown event kind %q (known: %v)", kind, Kinds()))
	}
	if h == nil {
		panic(fmt.Sprintf("events: register nil handler for kind %q", kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reg := &Registration{
		Kind:     kind,
		Priority: priority,
		Owner:    owner,
		handler:  h,
		seq:      r.nextSeq,
	}
	r.nextSeq++
	r.chains[kind] = append(r.chains[kind], reg)
	return reg
}

// Chain returns the handler chain for the kind in invocation order:
// ascending priority, ties in registration order.
func (r *Registry) Chain(kind Kind) []*Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := slices.Clone(r.chains[kind])
	slices.SortFunc(chain, func(a, b *Registration) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return chain
}

// Count returns the number of handlers registered for the kind.
func (r *Registry) Count(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains[kind])
}
