package tuist

import (
	"slices"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextBox is a single-line text input. The caret is a rune index in
// [0, len]. It handles KeyDown while focused and raises TextChangedEvent
// after every edit that changes the text.
type TextBox struct {
	Element

	// Placeholder is shown dimmed when the text is empty and the box is not
	// focused.
	Placeholder string

	text  []rune
	caret int
}

// NewTextBox creates an empty, focusable text box.
func NewTextBox() *TextBox {
	t := &TextBox{}
	t.Init(t)
	t.Focusable = true
	t.OnKeyDown(t.handleKey)
	return t
}

// Text returns the current text.
func (t *TextBox) Text() string {
	return string(t.text)
}

// SetText replaces the text, clamping the caret. It does not raise
// TextChangedEvent.
func (t *TextBox) SetText(s string) {
	t.text = []rune(s)
	t.caret = min(t.caret, len(t.text))
}

// Caret returns the caret position.
func (t *TextBox) Caret() int {
	return t.caret
}

// SetCaret moves the caret, clamped to the text.
func (t *TextBox) SetCaret(i int) {
	t.caret = max(0, min(i, len(t.text)))
}

// Insert inserts s at the caret and advances the caret past it.
func (t *TextBox) Insert(s string) {
	rs := []rune(s)
	if len(rs) == 0 {
		return
	}
	t.text = slices.Insert(t.text, t.caret, rs...)
	t.caret += len(rs)
	t.changed()
}

// Backspace deletes the rune before the caret.
func (t *TextBox) Backspace() bool {
	if t.caret == 0 {
		return false
	}
	t.text = slices.Delete(t.text, t.caret-1, t.caret)
	t.caret--
	t.changed()
	return true
}

// Delete deletes the rune at the caret.
func (t *TextBox) Delete() bool {
	if t.caret >= len(t.text) {
		return false
	}
	t.text = slices.Delete(t.text, t.caret, t.caret+1)
	t.changed()
	return true
}

// MoveLeft moves the caret one rune left.
func (t *TextBox) MoveLeft() { t.SetCaret(t.caret - 1) }

// MoveRight moves the caret one rune right.
func (t *TextBox) MoveRight() { t.SetCaret(t.caret + 1) }

// Home moves the caret to the start.
func (t *TextBox) Home() { t.caret = 0 }

// End moves the caret past the last rune.
func (t *TextBox) End() { t.caret = len(t.text) }

func (t *TextBox) changed() {
	t.RaiseEvent(NewEventArgs(TextChangedEvent))
}

func (t *TextBox) handleKey(_ Node, args *EventArgs) {
	k := args.Key
	switch {
	case k.Is(KeyBackspace):
		args.Handled = t.Backspace()
	case k.Is(KeyDelete):
		args.Handled = t.Delete()
	case k.Is(KeyLeft):
		t.MoveLeft()
		args.Handled = true
	case k.Is(KeyRight):
		t.MoveRight()
		args.Handled = true
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

// MeasureOverride asks for room for the text and the caret, at least ten
// columns, on a single row.
func (t *TextBox) MeasureOverride(available Size) Size {
	w := max(10, runewidth.StringWidth(string(t.text))+1)
	return Sz(min(w, available.Width), 1)
}

// scroll returns the first visible rune so the caret stays inside width
// columns.
func (t *TextBox) scroll(width int) int {
	if width <= 0 {
		return 0
	}
	start := 0
	for runewidth.StringWidth(string(t.text[start:t.caret])) >= width {
		start++
	}
	return start
}

// Render fills the box and draws the visible window of text. When focused
// the caret cell is drawn in inverse video.
func (t *TextBox) Render(dc *DrawingContext) {
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

	start := t.scroll(content.Width)
	x := content.X
	for i := start; i < len(t.text) && x < content.Right(); i++ {
		if i == t.caret && t.focused {
			dc.DrawChar(x, content.Y, t.text[i], NewStyle(Black, White))
		} else {
			dc.DrawChar(x, content.Y, t.text[i], style)
		}
		x += RuneWidth(t.text[i])
	}
	if t.focused && t.caret == len(t.text) && x < content.Right() {
		dc.DrawChar(x, content.Y, ' ', NewStyle(Black, White))
	}
}
