package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y int
		want bool
	}

	r := NewRect(2, 3, 4, 2)
	tests := map[string]tc{
		"top-left inside":      {x: 2, y: 3, want: true},
		"last cell inside":     {x: 5, y: 4, want: true},
		"right edge outside":   {x: 6, y: 3, want: false},
		"bottom edge outside":  {x: 2, y: 5, want: false},
		"left of rect outside": {x: 1, y: 3, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 3, 3),
			want: NewRect(2, 2, 3, 3),
		},
		"disjoint": {
			a:    NewRect(0, 0, 3, 3),
			b:    NewRect(10, 10, 3, 3),
			want: NewRect(10, 10, 0, 0),
		},
		"touching edges": {
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(5, 0, 5, 5),
			want: NewRect(5, 0, 0, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
			if tt.want.IsEmpty() != got.IsEmpty() {
				t.Errorf("IsEmpty() = %v, want %v", got.IsEmpty(), tt.want.IsEmpty())
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect Rect
		t    Thickness
		want Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect: NewRect(0, 0, 10, 6),
			t:    Uniform(1),
			want: NewRect(1, 1, 8, 4),
		},
		"asymmetric": {
			rect: NewRect(2, 2, 10, 10),
			t:    Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4},
			want: NewRect(3, 4, 6, 4),
		},
		"larger than rect clamps to zero": {
			rect: NewRect(0, 0, 2, 2),
			t:    Uniform(3),
			want: NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.t); got != tt.want {
				t.Errorf("Inset(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRect_Offset(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Offset(-2, 5)
	if r != NewRect(-1, 7, 3, 4) {
		t.Errorf("Offset() = %v, want (-1, 7, 3, 4)", r)
	}
}
