package tuist

// fixedNode is a leaf with a constant content size that records the space it
// was offered.
type fixedNode struct {
	Element
	content  Size
	offered  []Size
	arranged []Rect
}

func newFixed(w, h int) *fixedNode {
	n := &fixedNode{content: Sz(w, h)}
	n.Init(n)
	return n
}

func (n *fixedNode) MeasureOverride(available Size) Size {
	n.offered = append(n.offered, available)
	return n.content
}

func (n *fixedNode) ArrangeOverride(content Rect) {
	n.arranged = append(n.arranged, content)
}

func named(name string) *Element {
	e := NewElement()
	e.Name = name
	return e
}

// render lays n out over a w x h buffer and draws it.
func render(n Node, w, h int) *ScreenBuffer {
	buf := NewScreenBuffer(w, h)
	Layout(n, buf.Size())
	RenderTree(buf, n)
	return buf
}

func key(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

func char(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// press raises KeyDownEvent on n and reports whether it was handled.
func press(n Node, k KeyEvent) bool {
	args := NewKeyEventArgs(KeyDownEvent, k)
	n.Base().RaiseEvent(args)
	return args.Handled
}

// countEvents counts ev arriving at n.
func countEvents(n Node, ev *RoutedEvent) *int {
	count := new(int)
	n.Base().AddHandler(ev, func(Node, *EventArgs) { *count++ })
	return count
}
