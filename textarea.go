package tuist

import (
	"slices"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextArea is a multi-line text input with hard wrapping at the arranged
// width. Alt+Enter or Ctrl+J inserts a newline; plain Enter is left
// unhandled so it bubbles to an enclosing form. Like TextBox it raises
// TextChangedEvent after every edit.
type TextArea struct {
	Element

	// Placeholder is shown dimmed when the text is empty and the area is not
	// focused.
	Placeholder string

	// MaxLines caps the measured height in lines. Zero means no cap; the
	// area scrolls to keep the caret visible once the text is taller.
	MaxLines int

	text  []rune
	caret int
	top   int
}

// span is one display line: the runes text[start:end], without the newline.
type span struct {
	start, end int
}

// NewTextArea creates an empty, focusable text area.
func NewTextArea() *TextArea {
	t := &TextArea{}
	t.Init(t)
	t.Focusable = true
	t.OnKeyDown(t.handleKey)
	return t
}

// Text returns the current text.
func (t *TextArea) Text() string {
	return string(t.text)
}

// SetText replaces the text and moves the caret to the end. It does not
// raise TextChangedEvent.
func (t *TextArea) SetText(s string) {
	t.text = []rune(s)
	t.caret = len(t.text)
	t.top = 0
}

// Caret returns the caret as a rune index.
func (t *TextArea) Caret() int {
	return t.caret
}

// SetCaret moves the caret, clamped to the text.
func (t *TextArea) SetCaret(i int) {
	t.caret = max(0, min(i, len(t.text)))
}

// Insert inserts s at the caret and advances the caret past it.
func (t *TextArea) Insert(s string) {
	rs := []rune(s)
	if len(rs) == 0 {
		return
	}
	t.text = slices.Insert(t.text, t.caret, rs...)
	t.caret += len(rs)
	t.changed()
}

// Backspace deletes the rune before the caret.
func (t *TextArea) Backspace() bool {
	if t.caret == 0 {
		return false
	}
	t.text = slices.Delete(t.text, t.caret-1, t.caret)
	t.caret--
	t.changed()
	return true
}

// Delete deletes the rune at the caret.
func (t *TextArea) Delete() bool {
	if t.caret >= len(t.text) {
		return false
	}
	t.text = slices.Delete(t.text, t.caret, t.caret+1)
	t.changed()
	return true
}

// MoveUp moves the caret to the same column on the previous display line.
func (t *TextArea) MoveUp() bool {
	return t.moveLine(-1)
}

// MoveDown moves the caret to the same column on the next display line.
func (t *TextArea) MoveDown() bool {
	return t.moveLine(1)
}

// Home moves the caret to the start of its display line.
func (t *TextArea) Home() {
	lines := t.lines(t.wrapWidth())
	t.caret = lines[t.caretRow(lines)].start
}

// End moves the caret to the end of its display line.
func (t *TextArea) End() {
	lines := t.lines(t.wrapWidth())
	row := t.caretRow(lines)
	t.caret = t.clampToLine(lines, row, lines[row].end)
}

func (t *TextArea) moveLine(delta int) bool {
	lines := t.lines(t.wrapWidth())
	row := t.caretRow(lines)
	target := row + delta
	if target < 0 || target >= len(lines) {
		return false
	}
	col := runewidth.StringWidth(string(t.text[lines[row].start:t.caret]))
	t.caret = t.clampToLine(lines, target, t.posAt(lines[target], col))
	return true
}

func (t *TextArea) changed() {
	t.RaiseEvent(NewEventArgs(TextChangedEvent))
}

func (t *TextArea) handleKey(_ Node, args *EventArgs) {
	k := args.Key
	switch {
	case k.Is(KeyEnter, ModAlt), k.IsCtrl('j'):
		t.Insert("\n")
		args.Handled = true
	case k.Is(KeyBackspace):
		args.Handled = t.Backspace()
	case k.Is(KeyDelete):
		args.Handled = t.Delete()
	case k.Is(KeyLeft):
		t.SetCaret(t.caret - 1)
		args.Handled = true
	case k.Is(KeyRight):
		t.SetCaret(t.caret + 1)
		args.Handled = true
	case k.Is(KeyUp):
		args.Handled = t.MoveUp()
	case k.Is(KeyDown):
		args.Handled = t.MoveDown()
	case k.Is(KeyHome):
		t.Home()
		args.Handled = true
	case k.Is(KeyEnd):
		t.End()
		args.Handled = true
	case k.IsRune() && !unicode.IsControl(k.Rune):
		t.Insert(string(k.Rune))
		args.Handled = true
	}
}

// lines splits the text into display lines no wider than width cells.
// A width of zero or less only splits at newlines. There is always at
// least one line.
func (t *TextArea) lines(width int) []span {
	var out []span
	start, w := 0, 0
	for i, r := range t.text {
		if r == '\n' {
			out = append(out, span{start, i})
			start, w = i+1, 0
			continue
		}
		rw := RuneWidth(r)
		if width > 0 && w+rw > width && i > start {
			out = append(out, span{start, i})
			start, w = i, 0
		}
		w += rw
	}
	return append(out, span{start, len(t.text)})
}

// caretRow returns the display line holding the caret. A caret at a wrap
// point belongs to the line that starts there.
func (t *TextArea) caretRow(lines []span) int {
	row := 0
	for i, l := range lines {
		if l.start <= t.caret {
			row = i
		}
	}
	return row
}

// posAt returns the rune index in l closest to display column col.
func (t *TextArea) posAt(l span, col int) int {
	w := 0
	for i := l.start; i < l.end; i++ {
		rw := RuneWidth(t.text[i])
		if w+rw > col {
			return i
		}
		w += rw
	}
	return l.end
}

// clampToLine keeps pos on row when row ends at a wrap point, where the
// end index already belongs to the next line.
func (t *TextArea) clampToLine(lines []span, row, pos int) int {
	l := lines[row]
	if pos == l.end && l.end > l.start && row+1 < len(lines) && lines[row+1].start == l.end {
		return pos - 1
	}
	return pos
}

// wrapWidth is the text width for the arranged size; one column is kept
// free for the caret.
func (t *TextArea) wrapWidth() int {
	return t.bounds.Width - t.Padding.Horizontal() - 1
}

// MeasureOverride takes the available width, or the widest line when the
// width is unbounded, and one row per display line.
func (t *TextArea) MeasureOverride(available Size) Size {
	w := available.Width
	if w >= Unbounded.Width {
		w = 10
		for _, l := range t.lines(0) {
			w = max(w, runewidth.StringWidth(string(t.text[l.start:l.end]))+1)
		}
	}
	h := len(t.lines(w - 1))
	if t.MaxLines > 0 {
		h = min(h, t.MaxLines)
	}
	return Sz(w, min(h, available.Height))
}

// Render fills the area and draws the lines in view. The first visible line
// follows the caret. When focused the caret cell is drawn in inverse video.
func (t *TextArea) Render(dc *DrawingContext) {
	area := NewRect(0, 0, t.bounds.Width, t.bounds.Height)
	content := area.Inset(t.Padding)
	style := NewStyle(White, BrightBlack)
	if t.focused {
		style = style.Background(Blue)
	}
	dc.FillRect(area, ' ', style)

	dc.PushClip(content)
	defer dc.PopClip()

	if len(t.text) == 0 && !t.focused && t.Placeholder != "" {
		dc.DrawString(content.X, content.Y, t.Placeholder, NewStyle(Black, BrightBlack))
		return
	}

	lines := t.lines(content.Width - 1)
	row := t.caretRow(lines)
	if row < t.top {
		t.top = row
	}
	if content.Height > 0 && row >= t.top+content.Height {
		t.top = row - content.Height + 1
	}
	t.top = max(0, min(t.top, len(lines)-1))

	caret := NewStyle(Black, White)
	for r := t.top; r < len(lines) && r-t.top < content.Height; r++ {
		y := content.Y + r - t.top
		x := content.X
		for i := lines[r].start; i < lines[r].end; i++ {
			s := style
			if t.focused && i == t.caret {
				s = caret
			}
			dc.DrawChar(x, y, t.text[i], s)
			x += RuneWidth(t.text[i])
		}
		if t.focused && r == row && t.caret == lines[r].end {
			dc.DrawChar(x, y, ' ', caret)
		}
	}
}
