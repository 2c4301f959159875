package layout

import (
	"fmt"
	"math"
)

// Size is a width/height pair measured in terminal cells.
type Size struct {
	Width, Height int
}

// Unbounded is offered to children that may grow without limit along an axis.
// It is large enough to never constrain a terminal layout while leaving room
// for margin and padding arithmetic without overflow.
var Unbounded = Size{Width: math.MaxInt32, Height: math.MaxInt32}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Clamp returns the size with negative dimensions raised to zero.
func (s Size) Clamp() Size {
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// Shrink subtracts the thickness from both axes, clamping at zero.
func (s Size) Shrink(t Thickness) Size {
	return Size{Width: s.Width - t.Horizontal(), Height: s.Height - t.Vertical()}.Clamp()
}

// Grow adds the thickness to both axes.
func (s Size) Grow(t Thickness) Size {
	return Size{Width: s.Width + t.Horizontal(), Height: s.Height + t.Vertical()}
}

// Min returns the per-axis minimum of s and other.
func (s Size) Min(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

// Max returns the per-axis maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
