package tuist

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TextBlock displays read-only text. Lines are split on '\n' ("\r\n" is
// normalised first). With Wrap set, lines are word-wrapped to the width the
// block is measured and arranged with.
type TextBlock struct {
	Element

	Foreground Color
	Background Color
	Wrap       bool

	text  string
	lines []string
}

// NewTextBlock creates a text block showing text.
func NewTextBlock(text string) *TextBlock {
	t := &TextBlock{}
	t.Init(t)
	t.SetText(text)
	return t
}

// Text returns the displayed text.
func (t *TextBlock) Text() string {
	return t.text
}

// SetText replaces the displayed text.
func (t *TextBlock) SetText(text string) {
	t.text = strings.ReplaceAll(text, "\r\n", "\n")
	t.lines = t.layoutLines(Unbounded.Width)
}

func (t *TextBlock) layoutLines(width int) []string {
	if t.text == "" {
		return nil
	}
	if t.Wrap {
		return WrapText(t.text, width)
	}
	return strings.Split(t.text, "\n")
}

// MeasureOverride returns the widest line and the number of lines.
func (t *TextBlock) MeasureOverride(available Size) Size {
	t.lines = t.layoutLines(available.Width)
	return linesSize(t.lines)
}

// ArrangeOverride re-wraps to the arranged width.
func (t *TextBlock) ArrangeOverride(content Rect) {
	if t.Wrap {
		t.lines = t.layoutLines(content.Width)
	}
}

// Render draws the lines inside the padding, clipped to the block.
func (t *TextBlock) Render(dc *DrawingContext) {
	style := NewStyle(t.Foreground, t.Background)
	content := NewRect(0, 0, t.bounds.Width, t.bounds.Height).Inset(t.Padding)
	if t.Background != ColorDefault {
		dc.FillRect(NewRect(0, 0, t.bounds.Width, t.bounds.Height), ' ', style)
	}

	dc.PushClip(content)
	for i, line := range t.lines {
		if i >= content.Height {
			break
		}
		dc.DrawString(content.X, content.Y+i, line, style)
	}
	dc.PopClip()
}

func linesSize(lines []string) Size {
	var size Size
	for _, line := range lines {
		size.Width = max(size.Width, runewidth.StringWidth(line))
	}
	size.Height = len(lines)
	return size
}

// WrapText greedily word-wraps text to width display columns. Each input line
// wraps independently. Words are joined with single spaces while they fit; a
// word wider than width is split into width-sized chunks. A width of zero or
// less returns the text unchanged as a single line.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}

		var cur strings.Builder
		curWidth := 0
		for _, word := range strings.Split(line, " ") {
			ww := runewidth.StringWidth(word)
			sep := 0
			if curWidth > 0 {
				sep = 1
			}
			if curWidth+sep+ww <= width {
				if sep > 0 {
					cur.WriteByte(' ')
				}
				cur.WriteString(word)
				curWidth += sep + ww
				continue
			}

			if curWidth > 0 {
				out = append(out, cur.String())
			}
			cur.Reset()
			curWidth = 0
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// a single rune wider than width
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				out = append(out, head)
				word = word[len(head):]
			}
			cur.WriteString(word)
			curWidth = runewidth.StringWidth(word)
		}
		if curWidth > 0 {
			out = append(out, cur.String())
		}
	}
	return out
}
