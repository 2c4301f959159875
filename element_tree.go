package tuist

import "slices"

// Children is the ordered child collection of an element. It is the only
// owner of child links: inserting a node detaches it from its previous
// parent first, so a node is never the child of two parents.
type Children struct {
	owner *Element
	nodes []Node
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.nodes)
}

// At returns the child at index i.
func (c *Children) At(i int) Node {
	return c.nodes[i]
}

// All returns a copy of the children in order.
func (c *Children) All() []Node {
	return slices.Clone(c.nodes)
}

// IndexOf returns the position of n, or -1.
func (c *Children) IndexOf(n Node) int {
	if n == nil {
		return -1
	}
	b := n.Base()
	for i, child := range c.nodes {
		if child.Base() == b {
			return i
		}
	}
	return -1
}

// Add appends nodes in order.
func (c *Children) Add(nodes ...Node) {
	for _, n := range nodes {
		c.Insert(len(c.nodes), n)
	}
}

// Insert places n at index i, detaching it from any previous parent.
// Re-inserting an existing child moves it.
func (c *Children) Insert(i int, n Node) {
	c.adopt("Insert", n)
	if idx := c.IndexOf(n); idx >= 0 {
		c.nodes = slices.Delete(c.nodes, idx, idx+1)
		if idx < i {
			i--
		}
	} else {
		n.Base().Detach()
	}
	i = max(0, min(i, len(c.nodes)))
	c.nodes = slices.Insert(c.nodes, i, n)
	n.Base().parent = c.owner
}

// Set replaces the child at index i with n. The replaced child is detached.
func (c *Children) Set(i int, n Node) {
	c.adopt("Set", n)
	old := c.nodes[i]
	if old.Base() == n.Base() {
		return
	}
	c.RemoveAt(i)
	c.Insert(i, n)
}

// Remove detaches n if it is a child. Returns false if it was not.
func (c *Children) Remove(n Node) bool {
	i := c.IndexOf(n)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// RemoveAt detaches the child at index i.
func (c *Children) RemoveAt(i int) {
	n := c.nodes[i]
	c.nodes = slices.Delete(c.nodes, i, i+1)
	n.Base().parent = nil
}

// Clear detaches every child.
func (c *Children) Clear() {
	for _, n := range c.nodes {
		n.Base().parent = nil
	}
	c.nodes = nil
}

// adopt panics if n cannot become a child of the owner.
func (c *Children) adopt(op string, n Node) {
	if n == nil || n.Base() == nil {
		precondition(op, ErrNilNode)
	}
	b := n.Base()
	for p := c.owner; p != nil; p = p.parent {
		if p == b {
			precondition(op, ErrCycle)
		}
	}
}

// Parent returns the parent node, or nil for a root.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent.Node()
}

// Root returns the topmost ancestor, or the element's own node.
func (e *Element) Root() Node {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r.Node()
}

// IsDescendantOf reports whether ancestor is this element or one of its
// ancestors.
func (e *Element) IsDescendantOf(ancestor Node) bool {
	if ancestor == nil {
		return false
	}
	a := ancestor.Base()
	for p := e; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// Detach removes the element from its parent's children. It is a no-op for
// a root.
func (e *Element) Detach() {
	if e.parent == nil {
		return
	}
	e.parent.children.Remove(e.Node())
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips that node's subtree.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Base().children.nodes {
		Walk(child, fn)
	}
}

// HitTest returns the deepest node under the screen point p, preferring later
// siblings since they paint on top. It returns nil if p is outside root.
func HitTest(root Node, p Point) Node {
	if root == nil {
		return nil
	}
	return hitTest(root, p, Point{})
}

func hitTest(n Node, p Point, origin Point) Node {
	e := n.Base()
	b := e.bounds.Offset(origin.X, origin.Y)
	if !b.Contains(p.X, p.Y) {
		return nil
	}
	for i := len(e.children.nodes) - 1; i >= 0; i-- {
		if hit := hitTest(e.children.nodes[i], p, b.Location()); hit != nil {
			return hit
		}
	}
	return n
}
