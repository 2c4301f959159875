package tuist

// Measure computes the element's desired size for the available space.
//
// Margin and padding are subtracted before the node's MeasureOverride sees
// the space and added back to its result. An explicit width or height is the
// element's full desired extent on that axis; the content space is limited
// to what remains of it after margin and padding. No step yields a negative
// size.
func (e *Element) Measure(available Size) Size {
	available = available.Clamp()
	inner := available.Shrink(e.Margin).Shrink(e.Padding)
	if e.hasWidth {
		inner.Width = min(inner.Width, max(0, e.width-e.Margin.Horizontal()-e.Padding.Horizontal()))
	}
	if e.hasHeight {
		inner.Height = min(inner.Height, max(0, e.height-e.Margin.Vertical()-e.Padding.Vertical()))
	}

	content := e.Node().MeasureOverride(inner).Clamp()
	desired := content.Grow(e.Padding).Grow(e.Margin)
	if e.hasWidth {
		desired.Width = e.width
	}
	if e.hasHeight {
		desired.Height = e.height
	}
	e.desired = desired
	return desired
}

// Arrange places the element inside final, given in the parent's local
// coordinates. Margin is inset first; a non-stretch alignment then shrinks
// the rect to the desired size on that axis and positions it. The padding
// inset, in the element's own coordinates, goes to ArrangeOverride.
func (e *Element) Arrange(final Rect) {
	slot := final.Inset(e.Margin)
	x, w := e.HorizontalAlignment.Place(slot.X, slot.Width, e.desired.Width-e.Margin.Horizontal())
	y, h := e.VerticalAlignment.Place(slot.Y, slot.Height, e.desired.Height-e.Margin.Vertical())
	e.bounds = NewRect(x, y, max(0, w), max(0, h))

	content := NewRect(0, 0, e.bounds.Width, e.bounds.Height).Inset(e.Padding)
	e.Node().ArrangeOverride(content)
}

// MeasureOverride measures every child against the full content space and
// returns the largest extent on each axis.
func (e *Element) MeasureOverride(available Size) Size {
	var size Size
	for _, child := range e.children.nodes {
		size = size.Max(child.Base().Measure(available))
	}
	return size
}

// ArrangeOverride gives every child the whole content rect.
func (e *Element) ArrangeOverride(content Rect) {
	for _, child := range e.children.nodes {
		child.Base().Arrange(content)
	}
}

// Layout measures and arranges n to fill an area of the given size at the
// origin. The host runs it once per frame.
func Layout(n Node, size Size) {
	e := n.Base()
	e.Measure(size)
	e.Arrange(NewRect(0, 0, size.Width, size.Height))
}
