package tuist

import (
	"fmt"
	"io"
	"strings"
)

// ScreenBuffer is a width x height grid of cells kept as two generations.
// Drawing mutates the current generation; Diff compares it against the
// previous generation (what the terminal shows) and then commits it.
type ScreenBuffer struct {
	current  []Cell
	previous []Cell
	width    int
	height   int
}

// Run is a horizontal span of changed cells on one row sharing a style.
// Continuation cells of wide characters are carried by their lead cell and
// contribute no text.
type Run struct {
	X, Y  int
	Style Style
	Text  string
}

// NewScreenBuffer allocates a buffer whose every cell will be emitted on the
// first flush. Negative dimensions are clamped to zero.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	b := &ScreenBuffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *ScreenBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *ScreenBuffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *ScreenBuffer) Size() Size {
	return Sz(b.width, b.height)
}

// Bounds returns the buffer area as a Rect at the origin.
func (b *ScreenBuffer) Bounds() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// Resize reallocates both generations. The current generation is blank and
// the previous one is invalidated so the next flush repaints everything.
func (b *ScreenBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width, b.height = width, height
	b.current = make([]Cell, width*height)
	b.previous = make([]Cell, width*height)
	b.Clear()
	b.Invalidate()
}

// Invalidate marks every cell as changed for the next flush.
func (b *ScreenBuffer) Invalidate() {
	for i := range b.previous {
		b.previous[i] = invalid
	}
}

// Clear blanks the current generation.
func (b *ScreenBuffer) Clear() {
	for i := range b.current {
		b.current[i] = blank
	}
}

func (b *ScreenBuffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the current cell at (x, y), or the zero Cell out of bounds.
func (b *ScreenBuffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.current[i]
}

// SetCell stores c at (x, y). Out of bounds writes are ignored.
func (b *ScreenBuffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.current[i] = c
	}
}

// SetRune writes r at (x, y) and returns the number of columns it occupies.
// A wide rune also claims the cell to its right as a continuation; one that
// would straddle the right edge is replaced by a space. Any wide character
// partially overwritten is blanked so no orphan halves remain.
func (b *ScreenBuffer) SetRune(x, y int, r rune, style Style) int {
	if b.idx(x, y) < 0 {
		return 0
	}
	w := RuneWidth(r)
	b.breakWide(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, Cell{Rune: ' ', Style: style})
			return 1
		}
		b.breakWide(x+1, y)
		b.SetCell(x, y, Cell{Rune: r, Style: style})
		b.SetCell(x+1, y, Cell{Rune: 0, Style: style})
		return 2
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style})
	return 1
}

// breakWide blanks the other half of a wide character occupying (x, y).
func (b *ScreenBuffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	if c.IsContinuation() && x > 0 {
		lead := b.Cell(x-1, y)
		b.SetCell(x-1, y, Cell{Rune: ' ', Style: lead.Style})
		return
	}
	if RuneWidth(c.Rune) == 2 && b.Cell(x+1, y).IsContinuation() {
		b.SetCell(x+1, y, Cell{Rune: ' ', Style: c.Style})
	}
}

// Diff returns the runs that differ from the previous generation and commits
// the current generation as the new previous one. An unchanged frame yields
// no runs.
func (b *ScreenBuffer) Diff() []Run {
	var runs []Run
	changed := make([]bool, b.width)
	var text strings.Builder

	for y := 0; y < b.height; y++ {
		row := y * b.width
		dirty := false
		for x := 0; x < b.width; x++ {
			changed[x] = b.current[row+x] != b.previous[row+x]
			dirty = dirty || changed[x]
		}
		if !dirty {
			continue
		}
		// Keep both halves of a wide character together.
		for x := 0; x < b.width; x++ {
			if !changed[x] {
				continue
			}
			if b.current[row+x].IsContinuation() && x > 0 {
				changed[x-1] = true
			}
			if x+1 < b.width && b.current[row+x+1].IsContinuation() {
				changed[x+1] = true
			}
		}

		for x := 0; x < b.width; {
			if !changed[x] {
				x++
				continue
			}
			run := Run{X: x, Y: y, Style: b.current[row+x].Style}
			text.Reset()
			for x < b.width && changed[x] {
				c := b.current[row+x]
				if c.IsContinuation() {
					if x == run.X {
						text.WriteByte(' ')
					}
					x++
					continue
				}
				if c.Style != run.Style {
					break
				}
				text.WriteRune(c.Rune)
				x++
			}
			run.Text = text.String()
			runs = append(runs, run)
		}
	}

	copy(b.previous, b.current)
	return runs
}

// EncodeRuns writes runs to w as cursor moves, style changes and text.
// ESC[0m precedes each style change; the first run always sets its style.
func EncodeRuns(w io.Writer, runs []Run) (int, error) {
	if len(runs) == 0 {
		return 0, nil
	}
	esc := newEscBuilder(len(runs) * 16)
	var last Style
	for i, r := range runs {
		esc.MoveTo(r.X, r.Y)
		if i == 0 || r.Style != last {
			esc.SetStyle(r.Style)
			last = r.Style
		}
		esc.WriteString(r.Text)
	}
	n, err := w.Write(esc.Bytes())
	if err != nil {
		return n, fmt.Errorf("write frame: %w", err)
	}
	return n, nil
}

// Flush diffs the buffer and writes the changes to w. A frame identical to
// the previous one writes nothing.
func (b *ScreenBuffer) Flush(w io.Writer) (int, error) {
	return EncodeRuns(w, b.Diff())
}

// String renders the current generation as plain text, one line per row.
func (b *ScreenBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.current[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
