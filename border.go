package tuist

import "github.com/mattn/go-runewidth"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone draws no frame and reserves no space for one.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

func (b BorderStyle) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderSingle:
		return "single"
	case BorderDouble:
		return "double"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	}
	return "unknown"
}

// ParseBorderStyle maps a configuration name to a style. Unknown names
// return BorderSingle and false.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	for b := BorderNone; b <= BorderThick; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return BorderSingle, false
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Chars returns the box-drawing characters for this border style. BorderNone
// and unknown styles return spaces.
func (b BorderStyle) Chars() BorderChars {
	if c, ok := borderChars[b]; ok {
		return c
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// Thickness returns the frame width reserved on each side: 1, or 0 for
// BorderNone.
func (b BorderStyle) Thickness() int {
	if b == BorderNone {
		return 0
	}
	return 1
}

// DrawBox draws a frame around r (local coordinates). Rects smaller than
// 2x2 and BorderNone draw nothing.
func DrawBox(dc *DrawingContext, r Rect, border BorderStyle, style Style) {
	if r.Width < 2 || r.Height < 2 || border == BorderNone {
		return
	}
	chars := border.Chars()
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	dc.DrawChar(left, top, chars.TopLeft, style)
	dc.DrawChar(right, top, chars.TopRight, style)
	dc.DrawChar(left, bottom, chars.BottomLeft, style)
	dc.DrawChar(right, bottom, chars.BottomRight, style)
	for x := left + 1; x < right; x++ {
		dc.DrawChar(x, top, chars.Top, style)
		dc.DrawChar(x, bottom, chars.Bottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		dc.DrawChar(left, y, chars.Left, style)
		dc.DrawChar(right, y, chars.Right, style)
	}
}

// Border frames zero or one child. The frame reserves one cell on every side
// unless the style is BorderNone. The whole area is filled with Background
// before anything is drawn so the border is opaque over lower layers.
type Border struct {
	Element

	BorderStyle BorderStyle
	// Title is drawn into the top edge, truncated to fit.
	Title       string
	BorderColor Color
	Background  Color
}

// NewBorder creates an empty border.
func NewBorder(style BorderStyle) *Border {
	b := &Border{BorderStyle: style}
	b.Init(b)
	return b
}

// Child returns the framed node, or nil.
func (b *Border) Child() Node {
	if b.children.Len() == 0 {
		return nil
	}
	return b.children.At(0)
}

// SetChild replaces the framed node. nil removes it.
func (b *Border) SetChild(n Node) {
	b.children.Clear()
	if n != nil {
		b.children.Add(n)
	}
}

func (b *Border) frame() Thickness {
	return Uniform(b.BorderStyle.Thickness())
}

// MeasureOverride measures the child inside the frame and adds the frame.
func (b *Border) MeasureOverride(available Size) Size {
	f := b.frame()
	var content Size
	if child := b.Child(); child != nil {
		content = child.Base().Measure(available.Shrink(f))
	}
	return content.Grow(f)
}

// ArrangeOverride gives the child the content rect minus the frame.
func (b *Border) ArrangeOverride(content Rect) {
	if child := b.Child(); child != nil {
		child.Base().Arrange(content.Inset(b.frame()))
	}
}

// Render fills the background, draws the frame and title, then the child
// clipped to the inside of the frame.
func (b *Border) Render(dc *DrawingContext) {
	w, h := b.bounds.Width, b.bounds.Height
	area := NewRect(0, 0, w, h)
	dc.FillRect(area, ' ', NewStyle(ColorDefault, b.Background))

	frameStyle := NewStyle(b.BorderColor, b.Background)
	DrawBox(dc, area, b.BorderStyle, frameStyle)
	if b.Title != "" && w > 4 {
		title := runewidth.Truncate(" "+b.Title+" ", w-4, "")
		dc.DrawString(2, 0, title, frameStyle)
	}

	dc.PushClip(area.Inset(b.Padding).Inset(b.frame()))
	b.RenderChildren(dc)
	dc.PopClip()
}
