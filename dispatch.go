package tuist

import (
	"slices"

	"github.com/grindlemire/tuist/internal/debug"
)

// Handler receives a routed event. sender is the element currently being
// visited; args.Source is the element that raised the event.
type Handler func(sender Node, args *EventArgs)

// HandlerID identifies a registration for RemoveHandler.
type HandlerID uint64

type handlerEntry struct {
	id HandlerID
	fn Handler
}

// AddHandler registers fn for ev on this element. Handlers for the same
// event run in registration order.
func (e *Element) AddHandler(ev *RoutedEvent, fn Handler) HandlerID {
	if ev == nil || fn == nil {
		precondition("AddHandler", ErrNilAction)
	}
	if e.handlers == nil {
		e.handlers = make(map[*RoutedEvent][]handlerEntry)
	}
	e.nextHandler++
	e.handlers[ev] = append(e.handlers[ev], handlerEntry{id: e.nextHandler, fn: fn})
	return e.nextHandler
}

// RemoveHandler unregisters a handler. Unknown ids are ignored.
func (e *Element) RemoveHandler(ev *RoutedEvent, id HandlerID) {
	list := e.handlers[ev]
	i := slices.IndexFunc(list, func(h handlerEntry) bool { return h.id == id })
	if i < 0 {
		return
	}
	list = slices.Delete(slices.Clone(list), i, i+1)
	if len(list) == 0 {
		delete(e.handlers, ev)
		return
	}
	e.handlers[ev] = list
}

// OnKeyDown registers a KeyDownEvent handler.
func (e *Element) OnKeyDown(fn Handler) HandlerID {
	return e.AddHandler(KeyDownEvent, fn)
}

// OnMouseDown registers a MouseDownEvent handler.
func (e *Element) OnMouseDown(fn Handler) HandlerID {
	return e.AddHandler(MouseDownEvent, fn)
}

// OnGotFocus registers a GotFocusEvent handler.
func (e *Element) OnGotFocus(fn Handler) HandlerID {
	return e.AddHandler(GotFocusEvent, fn)
}

// OnLostFocus registers a LostFocusEvent handler.
func (e *Element) OnLostFocus(fn Handler) HandlerID {
	return e.AddHandler(LostFocusEvent, fn)
}

// OnClick registers a ClickEvent handler.
func (e *Element) OnClick(fn Handler) HandlerID {
	return e.AddHandler(ClickEvent, fn)
}

// RaiseEvent dispatches args along the route of its event's strategy,
// starting from this element. Source is set to this element.
func (e *Element) RaiseEvent(args *EventArgs) {
	if args == nil || args.Event == nil {
		precondition("RaiseEvent", ErrNilAction)
	}
	src := e.Node()
	args.Source = src
	for _, n := range EventRoute(src, args.Event.strategy) {
		n.Base().invoke(n, args)
		if args.Handled {
			return
		}
	}
}

// invoke calls this element's handlers for the event over a snapshot of the
// list, so handlers may add or remove registrations while running.
func (e *Element) invoke(sender Node, args *EventArgs) {
	list := e.handlers[args.Event]
	if len(list) == 0 {
		return
	}
	for _, h := range slices.Clone(list) {
		h.fn(sender, args)
		if args.Handled {
			debug.Log("event %s handled by %s", args.Event, e)
			return
		}
	}
}

// EventRoute returns the nodes a routed event raised on n visits, in order:
// just n for Direct, n up to the root for Bubble, root down to n for Tunnel.
func EventRoute(n Node, strategy RoutingStrategy) []Node {
	if n == nil {
		return nil
	}
	if strategy == Direct {
		return []Node{n}
	}
	var route []Node
	for e := n.Base(); e != nil; e = e.parent {
		route = append(route, e.Node())
	}
	if strategy == Tunnel {
		slices.Reverse(route)
	}
	return route
}
