package tuist

import "fmt"

// RoutingStrategy selects the path a routed event travels through the tree.
type RoutingStrategy uint8

const (
	// Direct delivers only to the source element.
	Direct RoutingStrategy = iota
	// Bubble delivers to the source, then each ancestor up to the root.
	Bubble
	// Tunnel delivers from the root down to the source.
	Tunnel
)

func (s RoutingStrategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Bubble:
		return "bubble"
	case Tunnel:
		return "tunnel"
	}
	return "unknown"
}

// Payload names the data an event's args carry.
type Payload uint8

const (
	PayloadNone Payload = iota
	PayloadKey
	PayloadMouse
)

// RoutedEvent describes an event kind. Descriptors are created once at
// package initialisation and compared by identity; their fields cannot be
// changed after construction.
type RoutedEvent struct {
	name     string
	strategy RoutingStrategy
	payload  Payload
}

// NewRoutedEvent declares a routed event. Call it from a package-level var.
func NewRoutedEvent(name string, strategy RoutingStrategy, payload Payload) *RoutedEvent {
	return &RoutedEvent{name: name, strategy: strategy, payload: payload}
}

// Name returns the event name.
func (ev *RoutedEvent) Name() string { return ev.name }

// Strategy returns how the event is routed.
func (ev *RoutedEvent) Strategy() RoutingStrategy { return ev.strategy }

// Payload returns the kind of data the event's args carry.
func (ev *RoutedEvent) Payload() Payload { return ev.payload }

func (ev *RoutedEvent) String() string {
	return ev.name + "(" + ev.strategy.String() + ")"
}

var (
	KeyDownEvent     = NewRoutedEvent("KeyDown", Bubble, PayloadKey)
	MouseDownEvent   = NewRoutedEvent("MouseDown", Bubble, PayloadMouse)
	MouseEnterEvent  = NewRoutedEvent("MouseEnter", Direct, PayloadMouse)
	MouseLeaveEvent  = NewRoutedEvent("MouseLeave", Direct, PayloadMouse)
	GotFocusEvent    = NewRoutedEvent("GotFocus", Bubble, PayloadNone)
	LostFocusEvent   = NewRoutedEvent("LostFocus", Bubble, PayloadNone)
	ClickEvent       = NewRoutedEvent("Click", Bubble, PayloadNone)
	TextChangedEvent = NewRoutedEvent("TextChanged", Bubble, PayloadNone)
)

// EventArgs travels with a routed event. Setting Handled stops propagation
// at once: later handlers on the same element and later route elements are
// skipped.
type EventArgs struct {
	Event   *RoutedEvent
	Source  Node
	Handled bool

	Key   KeyEvent
	Mouse MouseEvent
}

// NewEventArgs creates args for an event without a payload.
func NewEventArgs(ev *RoutedEvent) *EventArgs {
	checkPayload(ev, PayloadNone)
	return &EventArgs{Event: ev}
}

// NewKeyEventArgs creates args for a key event.
func NewKeyEventArgs(ev *RoutedEvent, key KeyEvent) *EventArgs {
	checkPayload(ev, PayloadKey)
	return &EventArgs{Event: ev, Key: key}
}

// NewMouseEventArgs creates args for a mouse event.
func NewMouseEventArgs(ev *RoutedEvent, mouse MouseEvent) *EventArgs {
	checkPayload(ev, PayloadMouse)
	return &EventArgs{Event: ev, Mouse: mouse}
}

func checkPayload(ev *RoutedEvent, want Payload) {
	if ev == nil {
		panic(&PreconditionError{Op: "NewEventArgs", Err: fmt.Errorf("nil event")})
	}
	if ev.payload != want {
		panic(&PreconditionError{
			Op:  "NewEventArgs",
			Err: fmt.Errorf("event %s carries payload %d, not %d", ev.name, ev.payload, want),
		})
	}
}
