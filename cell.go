package tuist

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the screen buffer.
// Wide characters occupy two cells; the first holds the rune and the second
// is a continuation cell with Rune == 0.
type Cell struct {
	Rune  rune
	Style Style
}

// blank is what Clear writes into every cell.
var blank = Cell{Rune: ' '}

// invalid never equals a drawable cell, so a generation filled with it
// forces every cell to be emitted on the next flush.
var invalid = Cell{Rune: -1}

// NewCell creates a Cell.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0
}

// RuneWidth returns the display width of a rune in terminal cells: 2 for
// wide characters, 1 otherwise. Zero-width and control runes count as 1 so
// they still occupy a cell.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
