package tuist

// Overlay stacks layers on top of each other. The first child fills the
// overlay; every later child is centred at its desired size and painted
// above the ones before it, which is how dialogs are shown.
type Overlay struct {
	Element
}

// NewOverlay creates an overlay with base as its bottom layer. base may be nil.
func NewOverlay(base Node) *Overlay {
	o := &Overlay{}
	o.Init(o)
	if base != nil {
		o.children.Add(base)
	}
	return o
}

// Push adds a layer on top.
func (o *Overlay) Push(layer Node) {
	o.children.Add(layer)
}

// Pop removes and returns the top layer above the base, or nil if only the
// base remains.
func (o *Overlay) Pop() Node {
	n := o.children.Len()
	if n <= 1 {
		return nil
	}
	top := o.children.At(n - 1)
	o.children.RemoveAt(n - 1)
	return top
}

// Top returns the topmost layer, or nil.
func (o *Overlay) Top() Node {
	if o.children.Len() == 0 {
		return nil
	}
	return o.children.At(o.children.Len() - 1)
}

// HasLayers reports whether anything is shown above the base.
func (o *Overlay) HasLayers() bool {
	return o.children.Len() > 1
}

// ArrangeOverride fills content with the base and centres the other layers.
func (o *Overlay) ArrangeOverride(content Rect) {
	for i, child := range o.children.nodes {
		if i == 0 {
			child.Base().Arrange(content)
			continue
		}
		d := child.Base().DesiredSize().Min(content.Size())
		x := content.X + (content.Width-d.Width)/2
		y := content.Y + (content.Height-d.Height)/2
		child.Base().Arrange(NewRect(x, y, d.Width, d.Height))
	}
}
