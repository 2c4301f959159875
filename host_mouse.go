package tuist

import "slices"

// handleMouse routes a mouse event to the tree. Every event updates the hover
// chain. A press focuses the nearest focusable ancestor of the element under
// the pointer and raises MouseDownEvent on that element. The wheel scrolls the
// nearest Scroller.
func (h *Host) handleMouse(e MouseEvent) {
	if h.root == nil {
		return
	}
	if h.needsLayout {
		h.layout()
	}
	h.validateHover()
	hit := HitTest(h.root, e.Point())
	h.updateHover(hit, e)

	switch {
	case e.IsWheel():
		if s := nearestScroller(hit); s != nil {
			notches := 1
			if e.Button == MouseWheelUp {
				notches = -1
			}
			s.ScrollWheel(notches)
		}
	case e.Action == MousePress:
		if hit == nil {
			return
		}
		if f := nearestFocusable(hit); f != nil {
			h.focus.Validate(h.root)
			h.focus.SetFocused(f)
		}
		hit.Base().RaiseEvent(NewMouseEventArgs(MouseDownEvent, e))
	}
}

// updateHover marks hit and its ancestors as under the pointer. Elements that
// leave the chain get MouseLeaveEvent, deepest first; elements that join it
// get MouseEnterEvent, outermost first.
func (h *Host) updateHover(hit Node, e MouseEvent) {
	chain := EventRoute(hit, Bubble)

	for _, old := range h.hover {
		if !containsNode(chain, old) {
			old.Base().mouseOver = false
			old.Base().RaiseEvent(NewMouseEventArgs(MouseLeaveEvent, e))
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		if !containsNode(h.hover, n) {
			n.Base().mouseOver = true
			n.Base().RaiseEvent(NewMouseEventArgs(MouseEnterEvent, e))
		}
	}
	h.hover = chain
}

// validateHover silently drops hover state for elements no longer under the
// root.
func (h *Host) validateHover() {
	h.hover = slices.DeleteFunc(h.hover, func(n Node) bool {
		if h.root != nil && n.Base().IsDescendantOf(h.root) {
			return false
		}
		n.Base().mouseOver = false
		return true
	})
}

func containsNode(list []Node, n Node) bool {
	return slices.ContainsFunc(list, func(m Node) bool { return sameNode(m, n) })
}

func nearestFocusable(n Node) Node {
	for e := nodeBase(n); e != nil; e = e.parent {
		if e.Focusable {
			return e.Node()
		}
	}
	return nil
}

func nearestScroller(n Node) Scroller {
	for e := nodeBase(n); e != nil; e = e.parent {
		if s, ok := e.Node().(Scroller); ok {
			return s
		}
	}
	return nil
}

func nodeBase(n Node) *Element {
	if n == nil {
		return nil
	}
	return n.Base()
}
