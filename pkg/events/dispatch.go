package events

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/goeditev/internal/logging"
	"github.com/yaklabco/goeditev/pkg/doctree"
)

// FaultHandler receives the value recovered from a panicking event
// handler. It is the top-level fault boundary: the dispatcher never
// lets a handler fault escape to the host application.
type FaultHandler func(kind Kind, recovered any)

// Dispatcher is the dispatch core. The host view delivers raw input
// callbacks to it; it resolves the document structure under the event,
// builds the structured payload, and drives the handler registry.
//
// All dispatch is synchronous on the calling goroutine: handlers see a
// consistent snapshot for the whole dispatch, and a handler's return
// value is the only cancellation mechanism.
type Dispatcher struct {
	view     View
	registry *Registry
	logger   *log.Logger
	onFault  FaultHandler

	// interacting is true between a mousedown inside the editor and the
	// next pointer release anywhere in the page.
	interacting bool

	// pointerOver is true while the pointer is over the editor.
	pointerOver bool

	// sessions holds one dedup entry per in-flight physical click. An
	// entry is created on the first ancestor notification for a raw
	// event and deleted when that event's dispatch completes, so it can
	// never outlive the raw event.
	sessions map[*RawEvent]*clickSession
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch traces and handler
// faults.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithFaultHandler sets the callback invoked with values recovered from
// panicking handlers.
func WithFaultHandler(fn FaultHandler) Option {
	return func(d *Dispatcher) { d.onFault = fn }
}

// NewDispatcher creates a dispatcher over the given view and registry.
func NewDispatcher(view View, registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		view:     view,
		registry: registry,
		logger:   logging.Default(),
		sessions: make(map[*RawEvent]*clickSession),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// clickSession is the per-physical-click dedup entry. The ancestor
// chain and mark ranges are resolved once, on the first notification,
// and shared by every notification for the same raw event.
type clickSession struct {
	pos      int
	resolved *doctree.ResolvedPos
	nodes    []doctree.NodeWithPos
	marks    []doctree.MarkRange
	consumed bool
}

// IsInteracting reports whether the user is actively interacting with
// the editor: a pointer button is down and the pointer is over the
// editor.
func (d *Dispatcher) IsInteracting() bool {
	return d.interacting && d.pointerOver
}

// ClickOn handles one ancestor notification of a physical click. The
// host view invokes it once per node on the path from the directly
// clicked node to the root, innermost first, with direct true only for
// the innermost. pos is the resolved position of the hit, node and
// nodePos identify the ancestor this notification is for.
//
// The clickMark chain runs only on the first notification per raw
// event; the click chain runs on every notification. The aggregate
// result reports whether any handler consumed the event so far. A true
// result ends the session: the host suppresses further propagation for
// a consumed click, so no later notification can arrive for this raw
// event.
func (d *Dispatcher) ClickOn(raw *RawEvent, pos int, node *doctree.Node, nodePos int, direct bool) bool {
	sess, ok := d.sessions[raw]
	if !ok {
		sess = d.newClickSession(pos)
		d.sessions[raw] = sess
		if d.runChain(KindClickMark, d.markPayload(raw, sess)) {
			sess.consumed = true
		}
	}

	p := d.clickPayload(raw, sess)
	p.Node = node
	p.NodePos = nodePos
	p.Direct = direct
	d.logger.Debug("click notification",
		logging.FieldPos, sess.pos,
		logging.FieldDirect, direct,
	)
	if d.runChain(KindClick, p) {
		sess.consumed = true
	}
	if sess.consumed {
		// The dedup entry must not outlive the raw event, and a
		// consumed click gets no final notification.
		delete(d.sessions, raw)
	}
	return sess.consumed
}

// Click handles the final notification of a physical click and ends its
// dispatch session. A click that hit no node (the host delivered no
// ancestor notifications) still reaches both chains exactly once here,
// with the resolved position's container as the direct target.
func (d *Dispatcher) Click(raw *RawEvent, pos int) bool {
	sess, ok := d.sessions[raw]
	if ok {
		// The session's dedup entry must not outlive the raw event.
		delete(d.sessions, raw)
		return sess.consumed
	}

	sess = d.newClickSession(pos)
	if d.runChain(KindClickMark, d.markPayload(raw, sess)) {
		sess.consumed = true
	}
	p := d.clickPayload(raw, sess)
	if len(sess.nodes) > 0 {
		p.Node = sess.nodes[0].Node
		p.NodePos = sess.nodes[0].Pos
	}
	p.Direct = true
	if d.runChain(KindClick, p) {
		sess.consumed = true
	}
	return sess.consumed
}

// MouseDown handles a pointer press inside the editor. It marks the
// user as interacting and, on the transition into interaction, hooks a
// one-shot page-level listener so the flag clears on the next pointer
// release even when that happens outside the editor bounds.
func (d *Dispatcher) MouseDown(raw *RawEvent) bool {
	wasInteracting := d.interacting
	d.interacting = true
	if !wasInteracting {
		d.view.ListenOncePointerUp(func() {
			d.interacting = false
			d.view.RequestRefresh()
		})
	}
	return d.runChain(KindMouseDown, d.resolveCoords(KindMouseDown, raw))
}

// MouseUp handles a pointer release inside the editor. The interacting
// flag is cleared by the page-level listener hooked on mousedown, not
// here, so releases outside the editor behave the same.
func (d *Dispatcher) MouseUp(raw *RawEvent) bool {
	return d.runChain(KindMouseUp, d.resolveCoords(KindMouseUp, raw))
}

// MouseEnter handles the pointer entering the editor.
func (d *Dispatcher) MouseEnter(raw *RawEvent) bool {
	d.pointerOver = true
	return d.runChain(KindMouseEnter, d.resolveCoords(KindMouseEnter, raw))
}

// MouseLeave handles the pointer leaving the editor.
func (d *Dispatcher) MouseLeave(raw *RawEvent) bool {
	d.pointerOver = false
	return d.runChain(KindMouseLeave, d.resolveCoords(KindMouseLeave, raw))
}

// Hover handles a hover notification. A coordinate that misses document
// content still dispatches, with empty node and mark lists.
func (d *Dispatcher) Hover(raw *RawEvent) bool {
	return d.runChain(KindHover, d.resolveCoords(KindHover, raw))
}

// ContextMenu handles a context-menu gesture. Like Hover, a resolution
// miss dispatches with empty node and mark lists.
func (d *Dispatcher) ContextMenu(raw *RawEvent) bool {
	return d.runChain(KindContextMenu, d.resolveCoords(KindContextMenu, raw))
}

// Focus handles the editor gaining focus. No position is resolved.
func (d *Dispatcher) Focus(raw *RawEvent) bool {
	return d.runChain(KindFocus, d.barePayload(KindFocus, raw))
}

// Blur handles the editor losing focus. No position is resolved.
func (d *Dispatcher) Blur(raw *RawEvent) bool {
	return d.runChain(KindBlur, d.barePayload(KindBlur, raw))
}

// runChain invokes the kind's handler chain under its dispatch policy.
// A panicking handler is recovered at this boundary: a run-all chain
// continues with the remaining handlers, an early-return chain aborts
// for this event. When an early-return chain consumes the event, the
// dispatcher signals default-behavior suppression on the raw event.
func (d *Dispatcher) runChain(kind Kind, p *Payload) bool {
	policy := kind.Policy()
	chain := d.registry.Chain(kind)
	consumed := false
	for _, reg := range chain {
		result, fault := d.invoke(reg, p)
		if fault != nil {
			if policy == PolicyEarlyReturn {
				break
			}
			continue
		}
		if result {
			consumed = true
			if policy == PolicyEarlyReturn {
				break
			}
		}
	}
	if consumed && policy == PolicyEarlyReturn && p.Raw != nil {
		p.Raw.PreventDefault()
	}
	if len(chain) > 0 {
		d.logger.Debug("dispatched handler chain",
			logging.FieldKind, string(kind),
			logging.FieldPolicy, policy.String(),
			logging.FieldHandlers, len(chain),
			logging.FieldConsumed, consumed,
		)
	}
	return consumed
}

// invoke runs one handler with panic isolation. The recovered value, if
// any, is logged and forwarded to the fault handler.
func (d *Dispatcher) invoke(reg *Registration, p *Payload) (consumed bool, fault any) {
	defer func() {
		if r := recover(); r != nil {
			fault = r
			d.logger.Error("event handler fault",
				logging.FieldKind, string(reg.Kind),
				logging.FieldPriority, reg.Priority,
				logging.FieldExtension, reg.Owner,
				logging.FieldError, r,
			)
			if d.onFault != nil {
				d.onFault(reg.Kind, r)
			}
		}
	}()
	return reg.handler(p), nil
}

// newClickSession resolves the document structure under a click once.
// An unresolvable position yields an empty session rather than an
// error: the host guarantees in-range positions, so anything else is a
// stale notification for a superseded snapshot.
func (d *Dispatcher) newClickSession(pos int) *clickSession {
	sess := &clickSession{pos: pos}
	snap := d.view.Snapshot()
	rp, err := snap.Resolve(pos)
	if err != nil {
		d.logger.Debug("click position did not resolve",
			logging.FieldPos, pos,
			logging.FieldError, err,
		)
		return sess
	}
	sess.resolved = rp
	sess.nodes = rp.AncestorChain()
	sess.marks = doctree.RangesAt(rp)
	d.logger.Debug("resolved click target",
		logging.FieldPos, pos,
		logging.FieldDepth, rp.Depth(),
		logging.FieldNodes, len(sess.nodes),
	)
	return sess
}

// markPayload builds the clickMark payload for a session.
func (d *Dispatcher) markPayload(raw *RawEvent, sess *clickSession) *Payload {
	p := d.clickPayload(raw, sess)
	p.Kind = KindClickMark
	return p
}

// clickPayload builds a click payload sharing the session's resolved
// structure.
func (d *Dispatcher) clickPayload(raw *RawEvent, sess *clickSession) *Payload {
	pos := sess.pos
	if sess.resolved == nil {
		pos = -1
	}
	return &Payload{
		Kind:       KindClick,
		Raw:        raw,
		View:       d.view,
		Snapshot:   d.view.Snapshot(),
		Pos:        pos,
		Resolved:   sess.resolved,
		Nodes:      sess.nodes,
		MarkRanges: sess.marks,
	}
}

// resolveCoords builds a payload for a coordinate-carrying kind. A
// coordinate outside document content is a resolution miss: the payload
// carries empty node and mark lists and handlers decide what to do.
func (d *Dispatcher) resolveCoords(kind Kind, raw *RawEvent) *Payload {
	p := d.barePayload(kind, raw)
	pos, ok := d.view.PosAtCoords(raw.Coords)
	if !ok {
		return p
	}
	rp, err := p.Snapshot.Resolve(pos)
	if err != nil {
		d.logger.Debug("coordinate resolved to an out-of-range position",
			logging.FieldKind, string(kind),
			logging.FieldPos, pos,
			logging.FieldError, err,
		)
		return p
	}
	p.Pos = pos
	p.Resolved = rp
	p.Nodes = rp.AncestorChain()
	p.MarkRanges = doctree.RangesAt(rp)
	return p
}

// barePayload builds a payload with no resolved position.
func (d *Dispatcher) barePayload(kind Kind, raw *RawEvent) *Payload {
	return &Payload{
		Kind:     kind,
		Raw:      raw,
		View:     d.view,
		Snapshot: d.view.Snapshot(),
		Pos:      -1,
	}
}
