package layout

// Alignment positions an element inside the slot its parent arranged it into.
type Alignment uint8

const (
	// AlignStretch fills the slot on that axis (default).
	AlignStretch Alignment = iota
	// AlignStart keeps the element flush with the near edge.
	AlignStart
	// AlignCenter centres the element in the slot.
	AlignCenter
	// AlignEnd keeps the element flush with the far edge.
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "unknown"
}

// Place positions a span of the given desired extent inside [start, start+avail).
// Stretch returns the slot unchanged; the other modes shrink the span to
// min(desired, avail) and move it accordingly.
func (a Alignment) Place(start, avail, desired int) (pos, extent int) {
	if a == AlignStretch {
		return start, avail
	}
	extent = min(avail, max(0, desired))
	switch a {
	case AlignCenter:
		return start + (avail-extent)/2, extent
	case AlignEnd:
		return start + avail - extent, extent
	}
	return start, extent
}

// Orientation is the stacking axis of a linear layout.
type Orientation uint8

const (
	// Vertical stacks top to bottom.
	Vertical Orientation = iota
	// Horizontal stacks left to right.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
