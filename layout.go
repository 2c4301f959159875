// layout.go re-exports the geometric types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tuist

import "github.com/grindlemire/tuist/internal/layout"

// Point is an (X, Y) cell coordinate.
type Point = layout.Point

// Size is a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Thickness represents spacing on four sides (margin or padding).
type Thickness = layout.Thickness

// Alignment positions an element inside its arranged slot.
type Alignment = layout.Alignment

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
)

// Orientation is the stacking axis of a StackPanel.
type Orientation = layout.Orientation

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Unbounded is the size offered along an axis that may grow without limit.
var Unbounded = layout.Unbounded

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Pt creates a Point.
func Pt(x, y int) Point {
	return layout.Pt(x, y)
}

// Sz creates a Size.
func Sz(w, h int) Size {
	return layout.Sz(w, h)
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(n int) Thickness {
	return layout.Uniform(n)
}

// Symmetric creates a Thickness with horizontal and vertical values.
func Symmetric(h, v int) Thickness {
	return layout.Symmetric(h, v)
}
