package tuist

// StackPanel lays its children out one after another along Orientation.
// Each child is offered unbounded space along the stacking axis and the
// panel's space on the cross axis, and is stretched across the cross axis
// when arranged.
type StackPanel struct {
	Element

	Orientation Orientation
	// Spacing is the gap between adjacent children.
	Spacing int
}

// NewStackPanel creates an empty panel.
func NewStackPanel(orientation Orientation) *StackPanel {
	s := &StackPanel{Orientation: orientation}
	s.Init(s)
	return s
}

// MeasureOverride sums the children along the stacking axis and takes the
// largest extent on the cross axis.
func (s *StackPanel) MeasureOverride(available Size) Size {
	offer := available
	if s.Orientation == Horizontal {
		offer.Width = Unbounded.Width
	} else {
		offer.Height = Unbounded.Height
	}

	var size Size
	for i, child := range s.children.nodes {
		d := child.Base().Measure(offer)
		gap := 0
		if i > 0 {
			gap = s.Spacing
		}
		if s.Orientation == Horizontal {
			size.Width += d.Width + gap
			size.Height = max(size.Height, d.Height)
		} else {
			size.Height += d.Height + gap
			size.Width = max(size.Width, d.Width)
		}
	}
	return size
}

// ArrangeOverride places each child at a running offset, giving it its
// desired extent along the stacking axis and the full cross axis.
func (s *StackPanel) ArrangeOverride(content Rect) {
	x, y := content.X, content.Y
	for _, child := range s.children.nodes {
		d := child.Base().DesiredSize()
		if s.Orientation == Horizontal {
			child.Base().Arrange(NewRect(x, content.Y, d.Width, content.Height))
			x += d.Width + s.Spacing
		} else {
			child.Base().Arrange(NewRect(content.X, y, content.Width, d.Height))
			y += d.Height + s.Spacing
		}
	}
}

// Render paints children clipped to the panel so overflow along the
// stacking axis does not spill onto siblings.
func (s *StackPanel) Render(dc *DrawingContext) {
	dc.PushClip(NewRect(0, 0, s.bounds.Width, s.bounds.Height))
	s.RenderChildren(dc)
	dc.PopClip()
}
