package layout

import "testing"

func TestSize_Shrink(t *testing.T) {
	type tc struct {
		size Size
		t    Thickness
		want Size
	}

	tests := map[string]tc{
		"fits": {
			size: Sz(10, 5),
			t:    Symmetric(2, 1),
			want: Sz(6, 3),
		},
		"underflow clamps": {
			size: Sz(1, 1),
			t:    Uniform(2),
			want: Sz(0, 0),
		},
		"zero thickness": {
			size: Sz(4, 4),
			want: Sz(4, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.Shrink(tt.t); got != tt.want {
				t.Errorf("Shrink() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSize_MinMaxGrow(t *testing.T) {
	a, b := Sz(3, 9), Sz(7, 2)
	if got := a.Min(b); got != Sz(3, 2) {
		t.Errorf("Min() = %v, want 3x2", got)
	}
	if got := a.Max(b); got != Sz(7, 9) {
		t.Errorf("Max() = %v, want 7x9", got)
	}
	if got := a.Grow(Uniform(1)); got != Sz(5, 11) {
		t.Errorf("Grow() = %v, want 5x11", got)
	}
	if got := Sz(-3, 2).Clamp(); got != Sz(0, 2) {
		t.Errorf("Clamp() = %v, want 0x2", got)
	}
}

func TestThickness_Sums(t *testing.T) {
	th := Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if th.Horizontal() != 4 {
		t.Errorf("Horizontal() = %d, want 4", th.Horizontal())
	}
	if th.Vertical() != 6 {
		t.Errorf("Vertical() = %d, want 6", th.Vertical())
	}
	if th.IsZero() || !(Thickness{}).IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestAlignment_Place(t *testing.T) {
	type tc struct {
		align   Alignment
		desired int
		pos     int
		extent  int
	}

	// slot starts at 10 and is 20 wide
	tests := map[string]tc{
		"stretch ignores desired": {align: AlignStretch, desired: 4, pos: 10, extent: 20},
		"start":                   {align: AlignStart, desired: 4, pos: 10, extent: 4},
		"center":                  {align: AlignCenter, desired: 4, pos: 18, extent: 4},
		"end":                     {align: AlignEnd, desired: 4, pos: 26, extent: 4},
		"desired larger than slot": {align: AlignCenter, desired: 30, pos: 10, extent: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pos, extent := tt.align.Place(10, 20, tt.desired)
			if pos != tt.pos || extent != tt.extent {
				t.Errorf("Place() = (%d, %d), want (%d, %d)", pos, extent, tt.pos, tt.extent)
			}
		})
	}
}
