package tuist

import (
	"slices"

	"github.com/grindlemire/tuist/internal/debug"
)

// FocusManager tracks the single element holding keyboard focus and moves it
// through the focusable elements of a tree in tab order.
type FocusManager struct {
	focused Node
}

// NewFocusManager creates a FocusManager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the focused node, or nil.
func (f *FocusManager) Focused() Node {
	return f.focused
}

// SetFocused moves focus to n. The previous element receives LostFocusEvent
// and then n receives GotFocusEvent, both bubbling. Focusing the current
// element again does nothing; nil clears focus.
func (f *FocusManager) SetFocused(n Node) {
	if sameNode(f.focused, n) {
		return
	}
	prev := f.focused
	f.focused = n

	if prev != nil {
		debug.Log("FocusManager: blur %s", prev.Base())
		prev.Base().focused = false
		prev.Base().RaiseEvent(NewEventArgs(LostFocusEvent))
	}
	if n != nil {
		debug.Log("FocusManager: focus %s", n.Base())
		n.Base().focused = true
		n.Base().RaiseEvent(NewEventArgs(GotFocusEvent))
	}
}

// Clear drops focus without raising events.
func (f *FocusManager) Clear() {
	if f.focused != nil {
		f.focused.Base().focused = false
	}
	f.focused = nil
}

// Validate clears focus, without raising events, if the focused element is no
// longer part of the tree under root.
func (f *FocusManager) Validate(root Node) {
	if f.focused == nil {
		return
	}
	if root == nil || !f.focused.Base().IsDescendantOf(root) {
		debug.Log("FocusManager: dropping detached focus %s", f.focused.Base())
		f.Clear()
	}
}

// MoveFocus focuses the next (or previous) focusable element under root.
// Elements are ordered by ascending TabIndex, ties keeping document order,
// and traversal wraps in both directions. With nothing focused, forward
// lands on the first element and backward on the last. It does nothing if
// root has no focusable elements.
func (f *FocusManager) MoveFocus(root Node, forward bool) {
	f.Validate(root)
	order := FocusOrder(root)
	if len(order) == 0 {
		return
	}

	cur := -1
	if f.focused != nil {
		cur = slices.IndexFunc(order, func(n Node) bool { return sameNode(n, f.focused) })
	}

	var next int
	switch {
	case forward:
		next = (cur + 1) % len(order)
	case cur < 0:
		next = len(order) - 1
	default:
		next = (cur - 1 + len(order)) % len(order)
	}
	f.SetFocused(order[next])
}

// FocusOrder returns the focusable nodes under root in traversal order.
func FocusOrder(root Node) []Node {
	var order []Node
	Walk(root, func(n Node) bool {
		if n.Base().Focusable {
			order = append(order, n)
		}
		return true
	})
	slices.SortStableFunc(order, func(a, b Node) int {
		ai, bi := a.Base().TabIndex, b.Base().TabIndex
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	})
	return order
}

func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base() == b.Base()
}
