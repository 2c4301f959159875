package tuist

// Button is a focusable label that raises ClickEvent when pressed with the
// mouse, or with Enter or Space while focused.
type Button struct {
	Element

	label *TextBlock
}

// NewButton creates a button showing text.
func NewButton(text string) *Button {
	b := &Button{label: NewTextBlock(text)}
	b.Init(b)
	b.Focusable = true
	b.Padding = Symmetric(1, 0)
	b.label.HorizontalAlignment = AlignCenter
	b.label.VerticalAlignment = AlignCenter
	b.children.Add(b.label)

	b.OnMouseDown(func(_ Node, args *EventArgs) {
		if args.Mouse.Button != MouseLeft {
			return
		}
		b.Click()
		args.Handled = true
	})
	b.OnKeyDown(func(_ Node, args *EventArgs) {
		if args.Key.Is(KeyEnter, ModNone) || (args.Key.IsRune() && args.Key.Rune == ' ') {
			b.Click()
			args.Handled = true
		}
	})
	return b
}

// Text returns the label.
func (b *Button) Text() string {
	return b.label.Text()
}

// SetText replaces the label.
func (b *Button) SetText(text string) {
	b.label.SetText(text)
}

// Click raises ClickEvent from the button.
func (b *Button) Click() {
	b.RaiseEvent(NewEventArgs(ClickEvent))
}

// Render paints the background for the focus and hover state, then the label.
func (b *Button) Render(dc *DrawingContext) {
	style := b.style()
	b.label.Foreground = style.Fg
	b.label.Background = style.Bg
	dc.FillRect(NewRect(0, 0, b.bounds.Width, b.bounds.Height), ' ', style)
	b.RenderChildren(dc)
}

func (b *Button) style() Style {
	switch {
	case b.mouseOver && b.focused:
		return NewStyle(White, BrightBlue)
	case b.mouseOver:
		return NewStyle(White, Black)
	case b.focused:
		return NewStyle(White, Blue)
	}
	return NewStyle(White, BrightBlack)
}
