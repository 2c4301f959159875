package tuist

import (
	"fmt"
	"math"
)

// Node is anything that can live in the element tree. Widgets embed Element
// (which supplies Base and default implementations) and override the layout
// and render hooks they need.
type Node interface {
	// Base returns the embedded Element holding tree, layout and event state.
	Base() *Element
	// MeasureOverride returns the content size for the given space, which
	// already excludes margin and padding.
	MeasureOverride(available Size) Size
	// ArrangeOverride lays out children inside content, given in the
	// element's local coordinates (the padding inset of its bounds).
	ArrangeOverride(content Rect)
	// Render draws the element. The context is already translated so (0, 0)
	// is the element's top-left corner.
	Render(dc *DrawingContext)
}

// Element is the state shared by every node: its place in the tree, layout
// properties and results, focus flags and routed-event handlers.
//
// A bare Element is a layering container: every child is measured against
// the full content space and arranged over the whole content rect.
type Element struct {
	self     Node
	parent   *Element
	children Children

	// Name labels the element in debug output.
	Name string

	Margin              Thickness
	Padding             Thickness
	HorizontalAlignment Alignment
	VerticalAlignment   Alignment

	width, height       int
	hasWidth, hasHeight bool

	// Focusable makes the element a focus traversal target.
	Focusable bool
	// TabIndex orders focus traversal; lower values come first.
	TabIndex int

	focused   bool
	mouseOver bool

	desired Size
	bounds  Rect

	handlers    map[*RoutedEvent][]handlerEntry
	nextHandler HandlerID
}

var _ Node = (*Element)(nil)

// NewElement creates a bare container element.
func NewElement() *Element {
	e := &Element{}
	e.Init(e)
	return e
}

// Init binds the element to the node that embeds it so layout and rendering
// dispatch to the outer widget's overrides. Widget constructors call it
// once, before the node is used.
func (e *Element) Init(self Node) {
	if self == nil {
		precondition("Init", ErrNilNode)
	}
	e.self = self
	e.children.owner = e
	e.TabIndex = math.MaxInt
}

// Base implements Node.
func (e *Element) Base() *Element {
	return e
}

// Node returns the outer node this element is embedded in.
func (e *Element) Node() Node {
	if e.self == nil {
		e.Init(e)
	}
	return e.self
}

// Children returns the child collection.
func (e *Element) Children() *Children {
	if e.children.owner == nil {
		e.children.owner = e
	}
	return &e.children
}

// Width returns the explicit width and whether one is set.
func (e *Element) Width() (int, bool) {
	return e.width, e.hasWidth
}

// SetWidth fixes the element's desired width. Negative values clamp to zero.
func (e *Element) SetWidth(w int) {
	e.width, e.hasWidth = max(0, w), true
}

// ClearWidth removes the explicit width.
func (e *Element) ClearWidth() {
	e.width, e.hasWidth = 0, false
}

// Height returns the explicit height and whether one is set.
func (e *Element) Height() (int, bool) {
	return e.height, e.hasHeight
}

// SetHeight fixes the element's desired height. Negative values clamp to zero.
func (e *Element) SetHeight(h int) {
	e.height, e.hasHeight = max(0, h), true
}

// ClearHeight removes the explicit height.
func (e *Element) ClearHeight() {
	e.height, e.hasHeight = 0, false
}

// IsFocused returns whether this element currently has keyboard focus.
func (e *Element) IsFocused() bool {
	return e.focused
}

// IsMouseOver returns whether the pointer is over this element.
func (e *Element) IsMouseOver() bool {
	return e.mouseOver
}

// DesiredSize returns the size computed by the last Measure, including
// margin and padding.
func (e *Element) DesiredSize() Size {
	return e.desired
}

// ActualBounds returns the rectangle granted by the last Arrange, in the
// parent's local coordinates and excluding margin.
func (e *Element) ActualBounds() Rect {
	return e.bounds
}

// ScreenBounds returns ActualBounds translated to absolute screen coordinates.
func (e *Element) ScreenBounds() Rect {
	r := e.bounds
	for p := e.parent; p != nil; p = p.parent {
		r = r.Offset(p.bounds.X, p.bounds.Y)
	}
	return r
}

func (e *Element) String() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("%T", e.Node())
	}
	return fmt.Sprintf("%s%v", name, e.bounds)
}
