package layout

import "fmt"

// Thickness represents spacing on the four sides of a box (margin or padding).
type Thickness struct {
	Left, Top, Right, Bottom int
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(n int) Thickness {
	return Thickness{Left: n, Top: n, Right: n, Bottom: n}
}

// Symmetric creates a Thickness with horizontal (left/right) and vertical
// (top/bottom) values.
func Symmetric(h, v int) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() int {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() int {
	return t.Top + t.Bottom
}

// IsZero returns true if all sides are zero.
func (t Thickness) IsZero() bool {
	return t == Thickness{}
}

func (t Thickness) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t.Left, t.Top, t.Right, t.Bottom)
}
