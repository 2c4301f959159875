package tuist

// Scroller is implemented by elements that react to the mouse wheel. notches
// is negative for wheel up and positive for wheel down.
type Scroller interface {
	ScrollWheel(notches int)
}

// ScrollViewer shows a window onto a single child that may be larger than
// the viewer. The child is measured against unbounded space (or unbounded
// height only with ConstrainWidth), arranged shifted by the scroll offset,
// and rendered clipped to the viewer.
type ScrollViewer struct {
	Element

	// ConstrainWidth measures the child against the viewer's width so
	// wrapping content scrolls vertically only.
	ConstrainWidth bool
	// WheelStep is the number of rows one wheel notch scrolls.
	WheelStep int

	offset   Point
	viewport Size
	extent   Size
	toEnd    bool
}

var _ Scroller = (*ScrollViewer)(nil)

// NewScrollViewer creates an empty viewer.
func NewScrollViewer() *ScrollViewer {
	s := &ScrollViewer{WheelStep: 1}
	s.Init(s)
	s.OnKeyDown(func(_ Node, args *EventArgs) {
		page := max(1, s.viewport.Height-1)
		switch {
		case args.Key.Is(KeyPageUp, ModNone):
			s.ScrollBy(0, -page)
		case args.Key.Is(KeyPageDown, ModNone):
			s.ScrollBy(0, page)
		default:
			return
		}
		args.Handled = true
	})
	return s
}

// Content returns the scrolled node, or nil.
func (s *ScrollViewer) Content() Node {
	if s.children.Len() == 0 {
		return nil
	}
	return s.children.At(0)
}

// SetContent replaces the scrolled node. nil removes it.
func (s *ScrollViewer) SetContent(n Node) {
	s.children.Clear()
	if n != nil {
		s.children.Add(n)
	}
}

// ScrollOffset returns the top-left content cell currently shown.
func (s *ScrollViewer) ScrollOffset() Point {
	return s.offset
}

// SetScrollOffset scrolls to p, clamped to the content extent.
func (s *ScrollViewer) SetScrollOffset(p Point) {
	s.offset = s.clamp(p)
}

// ScrollBy scrolls by (dx, dy), clamped to the content extent.
func (s *ScrollViewer) ScrollBy(dx, dy int) {
	s.SetScrollOffset(s.offset.Add(Pt(dx, dy)))
}

// ScrollWheel scrolls WheelStep rows per notch.
func (s *ScrollViewer) ScrollWheel(notches int) {
	s.ScrollBy(0, notches*s.WheelStep)
}

// ScrollToEnd scrolls to the bottom of the content. It is applied again at
// the next arrange, so content added in the same tick is included.
func (s *ScrollViewer) ScrollToEnd() {
	s.toEnd = true
	s.SetScrollOffset(Pt(s.offset.X, s.extent.Height))
}

// ScrollIntoView scrolls the least amount needed to show r, given in content
// coordinates.
func (s *ScrollViewer) ScrollIntoView(r Rect) {
	off := s.offset
	if r.Bottom() > off.Y+s.viewport.Height {
		off.Y = r.Bottom() - s.viewport.Height
	}
	if r.Y < off.Y {
		off.Y = r.Y
	}
	if r.Right() > off.X+s.viewport.Width {
		off.X = r.Right() - s.viewport.Width
	}
	if r.X < off.X {
		off.X = r.X
	}
	s.SetScrollOffset(off)
}

// Viewport returns the visible size from the last arrange.
func (s *ScrollViewer) Viewport() Size {
	return s.viewport
}

// Extent returns the content size from the last measure.
func (s *ScrollViewer) Extent() Size {
	return s.extent
}

func (s *ScrollViewer) clamp(p Point) Point {
	maxX := max(0, s.extent.Width-s.viewport.Width)
	maxY := max(0, s.extent.Height-s.viewport.Height)
	return Pt(max(0, min(p.X, maxX)), max(0, min(p.Y, maxY)))
}

// MeasureOverride measures the content without limits and reports the
// smaller of that and the available space.
func (s *ScrollViewer) MeasureOverride(available Size) Size {
	child := s.Content()
	if child == nil {
		s.extent = Size{}
		return Size{}
	}
	offer := Unbounded
	if s.ConstrainWidth {
		offer.Width = available.Width
	}
	s.extent = child.Base().Measure(offer)
	return available.Min(s.extent)
}

// ArrangeOverride arranges the content at its full size, shifted by the
// scroll offset. The offset is re-clamped since the extent or viewport may
// have changed.
func (s *ScrollViewer) ArrangeOverride(content Rect) {
	s.viewport = content.Size()
	if s.toEnd {
		s.offset.Y = s.extent.Height
		s.toEnd = false
	}
	s.offset = s.clamp(s.offset)
	child := s.Content()
	if child == nil {
		return
	}
	w := max(s.extent.Width, content.Width)
	h := max(s.extent.Height, content.Height)
	child.Base().Arrange(NewRect(content.X-s.offset.X, content.Y-s.offset.Y, w, h))
}

// Render draws the content clipped to the viewer's bounds.
func (s *ScrollViewer) Render(dc *DrawingContext) {
	dc.PushClip(NewRect(0, 0, s.bounds.Width, s.bounds.Height))
	s.RenderChildren(dc)
	dc.PopClip()
}
