package tuist

// DrawingContext is the surface elements render into. It translates local
// coordinates by an accumulated offset and discards cells outside the current
// clip rectangle before they reach the ScreenBuffer.
//
// Offsets and clips are scoped: every Push must be matched by a Pop before
// the caller returns. An unbalanced Pop panics.
type DrawingContext struct {
	buf     *ScreenBuffer
	offsets []Point
	clips   []Rect
}

// NewDrawingContext creates a context covering the whole buffer with no offset.
func NewDrawingContext(buf *ScreenBuffer) *DrawingContext {
	return &DrawingContext{
		buf:     buf,
		offsets: []Point{{}},
		clips:   []Rect{buf.Bounds()},
	}
}

// Buffer returns the underlying screen buffer.
func (dc *DrawingContext) Buffer() *ScreenBuffer {
	return dc.buf
}

// Offset returns the current local-to-world translation.
func (dc *DrawingContext) Offset() Point {
	return dc.offsets[len(dc.offsets)-1]
}

// Clip returns the current clip rectangle in world coordinates.
func (dc *DrawingContext) Clip() Rect {
	return dc.clips[len(dc.clips)-1]
}

// PushOffset translates subsequent drawing by (dx, dy) relative to the
// current offset.
func (dc *DrawingContext) PushOffset(dx, dy int) {
	dc.offsets = append(dc.offsets, dc.Offset().Add(Pt(dx, dy)))
}

// PopOffset restores the offset active before the matching PushOffset.
func (dc *DrawingContext) PopOffset() {
	if len(dc.offsets) == 1 {
		panic("tuist: PopOffset without matching PushOffset")
	}
	dc.offsets = dc.offsets[:len(dc.offsets)-1]
}

// PushClip narrows the clip to r, given in local coordinates. The new clip is
// the intersection of r (translated to world coordinates) and the current clip.
func (dc *DrawingContext) PushClip(r Rect) {
	o := dc.Offset()
	dc.clips = append(dc.clips, r.Offset(o.X, o.Y).Intersect(dc.Clip()))
}

// PopClip restores the clip active before the matching PushClip.
func (dc *DrawingContext) PopClip() {
	if len(dc.clips) == 1 {
		panic("tuist: PopClip without matching PushClip")
	}
	dc.clips = dc.clips[:len(dc.clips)-1]
}

// visible translates a local coordinate and reports whether it lands inside
// the clip.
func (dc *DrawingContext) visible(x, y int) (int, int, bool) {
	o := dc.Offset()
	wx, wy := x+o.X, y+o.Y
	return wx, wy, dc.Clip().Contains(wx, wy)
}

// DrawChar writes a single rune at local (x, y).
func (dc *DrawingContext) DrawChar(x, y int, r rune, style Style) {
	wx, wy, ok := dc.visible(x, y)
	if !ok {
		return
	}
	if RuneWidth(r) == 2 && !dc.Clip().Contains(wx+1, wy) {
		r = ' '
	}
	dc.buf.SetRune(wx, wy, r, style)
}

// DrawString writes s starting at local (x, y) and returns the number of
// columns it advanced, including any clipped cells.
func (dc *DrawingContext) DrawString(x, y int, s string, style Style) int {
	col := 0
	for _, r := range s {
		dc.DrawChar(x+col, y, r, style)
		col += RuneWidth(r)
	}
	return col
}

// FillRect paints every visible cell of r (local coordinates) with ch.
func (dc *DrawingContext) FillRect(r Rect, ch rune, style Style) {
	o := dc.Offset()
	area := r.Offset(o.X, o.Y).Intersect(dc.Clip())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			dc.buf.SetRune(x, y, ch, style)
		}
	}
}
