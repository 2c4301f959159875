package tuist

import "testing"

func TestBorder_StackOfTextBlocks(t *testing.T) {
	stack := NewStackPanel(Vertical)
	stack.Children().Add(NewTextBlock("A"), NewTextBlock("BB"))
	border := NewBorder(BorderSingle)
	border.SetChild(stack)

	got := border.Measure(Sz(10, 10))

	if stack.DesiredSize() != Sz(2, 2) {
		t.Errorf("stack desired = %v, want 2x2", stack.DesiredSize())
	}
	if got != Sz(4, 4) {
		t.Errorf("border desired = %v, want 4x4", got)
	}
}

func TestBorder_Measure(t *testing.T) {
	type tc struct {
		style BorderStyle
		child Node
		avail Size
		want  Size
	}

	tests := map[string]tc{
		"empty frame": {
			style: BorderSingle,
			avail: Sz(10, 10),
			want:  Sz(2, 2),
		},
		"borderless empty": {
			style: BorderNone,
			avail: Sz(10, 10),
			want:  Sz(0, 0),
		},
		"borderless passes child through": {
			style: BorderNone,
			child: newFixed(3, 2),
			avail: Sz(10, 10),
			want:  Sz(3, 2),
		},
		"frame added to child": {
			style: BorderRounded,
			child: newFixed(3, 2),
			avail: Sz(10, 10),
			want:  Sz(5, 4),
		},
		"tiny space clamps child offer": {
			style: BorderDouble,
			child: newFixed(0, 0),
			avail: Sz(1, 1),
			want:  Sz(2, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBorder(tt.style)
			b.SetChild(tt.child)
			if got := b.Measure(tt.avail); got != tt.want {
				t.Errorf("Measure(%v) = %v, want %v", tt.avail, got, tt.want)
			}
		})
	}
}

func TestBorder_ChildArrangedInsideFrame(t *testing.T) {
	child := newFixed(1, 1)
	b := NewBorder(BorderSingle)
	b.Padding = Thickness{Left: 1}
	b.SetChild(child)

	Layout(b, Sz(8, 5))

	if got := child.ActualBounds(); got != NewRect(2, 1, 5, 3) {
		t.Errorf("child bounds = %v, want (2, 1, 5, 3)", got)
	}
}

func TestBorder_Render(t *testing.T) {
	type tc struct {
		style BorderStyle
		title string
		text  string
		w, h  int
		want  string
	}

	tests := map[string]tc{
		"single with title": {
			style: BorderSingle,
			title: "T",
			text:  "hi",
			w:     7, h: 3,
			want: "┌─ T ─┐\n│hi   │\n└─────┘",
		},
		"title truncated": {
			style: BorderSingle,
			title: "LONG",
			w:     6, h: 3,
			want: "┌─ L─┐\n│    │\n└────┘",
		},
		"no title when narrow": {
			style: BorderDouble,
			title: "X",
			w:     4, h: 2,
			want: "╔══╗\n╚══╝",
		},
		"child clipped to frame": {
			style: BorderRounded,
			text:  "abcdefgh",
			w:     5, h: 3,
			want: "╭───╮\n│abc│\n╰───╯",
		},
		"thick": {
			style: BorderThick,
			w:     3, h: 3,
			want: "┏━┓\n┃ ┃\n┗━┛",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBorder(tt.style)
			b.Title = tt.title
			if tt.text != "" {
				b.SetChild(NewTextBlock(tt.text))
			}
			if got := render(b, tt.w, tt.h).String(); got != tt.want {
				t.Errorf("render =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBorder_FillsBackground(t *testing.T) {
	b := NewBorder(BorderSingle)
	b.Background = Blue
	b.BorderColor = Yellow
	buf := render(b, 4, 3)

	if got := buf.Cell(1, 1).Style; got != NewStyle(ColorDefault, Blue) {
		t.Errorf("interior style = %v, want default on blue", got)
	}
	if got := buf.Cell(0, 0).Style; got != NewStyle(Yellow, Blue) {
		t.Errorf("frame style = %v, want yellow on blue", got)
	}
}

func TestBorder_SetChildReplaces(t *testing.T) {
	b := NewBorder(BorderSingle)
	first := NewTextBlock("a")
	second := NewTextBlock("b")
	b.SetChild(first)
	b.SetChild(second)

	if b.Children().Len() != 1 || b.Child() != Node(second) {
		t.Errorf("Child() = %v, want second", b.Child())
	}
	if first.Parent() != nil {
		t.Errorf("replaced child still has parent %v", first.Parent())
	}
	b.SetChild(nil)
	if b.Child() != nil {
		t.Errorf("Child() = %v after SetChild(nil), want nil", b.Child())
	}
}

func TestParseBorderStyle(t *testing.T) {
	type tc struct {
		name string
		want BorderStyle
		ok   bool
	}

	tests := map[string]tc{
		"rounded": {name: "rounded", want: BorderRounded, ok: true},
		"none":    {name: "none", want: BorderNone, ok: true},
		"unknown": {name: "dotted", want: BorderSingle, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseBorderStyle(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseBorderStyle(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
