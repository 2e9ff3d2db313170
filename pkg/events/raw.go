package events

// Coords is a viewport coordinate pair.
type Coords struct {
	X float64
	Y float64
}

// Button identifies a pointer button.
type Button int

// Pointer buttons, matching the platform numbering.
const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// RawEvent is the low-level input event the host view delivers to the
// dispatch core. One RawEvent value stands for one physical user
// gesture; the host passes the same value to every callback that
// gesture triggers, which is what the dispatch core keys its
// deduplication on.
type RawEvent struct {
	// Coords is the viewport position of the pointer, when applicable.
	Coords Coords

	// Button is the pointer button involved, when applicable.
	Button Button

	// Modifier key state at the time of the event.
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool

	defaultPrevented bool
}

// PreventDefault signals the host view to suppress the default behavior
// for this event.
func (e *RawEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether default behavior was suppressed.
func (e *RawEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
