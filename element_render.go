package tuist

// Render draws the element's children.
func (e *Element) Render(dc *DrawingContext) {
	e.RenderChildren(dc)
}

// RenderChildren draws every child translated to its arranged position.
// Widgets that paint their own content call it after painting.
func (e *Element) RenderChildren(dc *DrawingContext) {
	for _, child := range e.children.nodes {
		RenderChild(dc, child)
	}
}

// RenderChild draws a single node at its ActualBounds offset.
func RenderChild(dc *DrawingContext, n Node) {
	b := n.Base().bounds
	dc.PushOffset(b.X, b.Y)
	n.Render(dc)
	dc.PopOffset()
}

// RenderTree clears buf and draws the tree rooted at root into it.
func RenderTree(buf *ScreenBuffer, root Node) {
	buf.Clear()
	if root == nil {
		return
	}
	RenderChild(NewDrawingContext(buf), root)
}
