package tuist

// Style is the foreground/background color pair of a cell.
// Zero value represents default styling.
type Style struct {
	Fg Color
	Bg Color
}

// NewStyle returns a Style with the given colors.
func NewStyle(fg, bg Color) Style {
	return Style{Fg: fg, Bg: bg}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Inverse swaps foreground and background. When both are the default the
// result is black on white so the cell stays visible.
func (s Style) Inverse() Style {
	if s.Fg.IsDefault() && s.Bg.IsDefault() {
		return Style{Fg: Black, Bg: White}
	}
	fg, bg := s.Bg, s.Fg
	if fg.IsDefault() {
		fg = Black
	}
	if bg.IsDefault() {
		bg = White
	}
	return Style{Fg: fg, Bg: bg}
}

// IsDefault returns true if neither color is set.
func (s Style) IsDefault() bool {
	return s == Style{}
}

func (s Style) String() string {
	return s.Fg.String() + "/" + s.Bg.String()
}
