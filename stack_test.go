package tuist

import "testing"

func TestStackPanel_Layout(t *testing.T) {
	type tc struct {
		orientation Orientation
		spacing     int
		children    []Size
		wantDesired Size
		wantBounds  []Rect
	}

	tests := map[string]tc{
		"vertical": {
			orientation: Vertical,
			children:    []Size{Sz(3, 1), Sz(5, 2)},
			wantDesired: Sz(5, 3),
			wantBounds:  []Rect{NewRect(0, 0, 10, 1), NewRect(0, 1, 10, 2)},
		},
		"horizontal": {
			orientation: Horizontal,
			children:    []Size{Sz(3, 1), Sz(5, 2)},
			wantDesired: Sz(8, 2),
			wantBounds:  []Rect{NewRect(0, 0, 3, 10), NewRect(3, 0, 5, 10)},
		},
		"vertical with spacing": {
			orientation: Vertical,
			spacing:     1,
			children:    []Size{Sz(1, 1), Sz(1, 1), Sz(1, 1)},
			wantDesired: Sz(1, 5),
			wantBounds:  []Rect{NewRect(0, 0, 10, 1), NewRect(0, 2, 10, 1), NewRect(0, 4, 10, 1)},
		},
		"empty": {
			orientation: Horizontal,
			wantDesired: Sz(0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStackPanel(tt.orientation)
			s.Spacing = tt.spacing
			var kids []*fixedNode
			for _, c := range tt.children {
				k := newFixed(c.Width, c.Height)
				kids = append(kids, k)
				s.Children().Add(k)
			}

			Layout(s, Sz(10, 10))

			if got := s.DesiredSize(); got != tt.wantDesired {
				t.Errorf("DesiredSize() = %v, want %v", got, tt.wantDesired)
			}
			for i, k := range kids {
				if got := k.ActualBounds(); got != tt.wantBounds[i] {
					t.Errorf("child %d bounds = %v, want %v", i, got, tt.wantBounds[i])
				}
			}
		})
	}
}

func TestStackPanel_OffersUnboundedAlongAxis(t *testing.T) {
	type tc struct {
		orientation Orientation
		want        Size
	}

	tests := map[string]tc{
		"vertical":   {orientation: Vertical, want: Sz(10, Unbounded.Height)},
		"horizontal": {orientation: Horizontal, want: Sz(Unbounded.Width, 4)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStackPanel(tt.orientation)
			k := newFixed(1, 1)
			s.Children().Add(k)
			s.Measure(Sz(10, 4))
			if k.offered[0] != tt.want {
				t.Errorf("offered %v, want %v", k.offered[0], tt.want)
			}
		})
	}
}

func TestStackPanel_ClipsOverflow(t *testing.T) {
	root := NewStackPanel(Vertical)
	root.Children().Add(NewTextBlock("one"), NewTextBlock("two"), NewTextBlock("three"))
	root.SetHeight(2)
	root.VerticalAlignment = AlignStart

	if got := render(root, 5, 3).String(); got != "one  \ntwo  \n     " {
		t.Errorf("render = %q", got)
	}
}
