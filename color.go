package tuist

import (
	"fmt"
	"strings"
)

// Color is one of the 16 indexed terminal colors, or ColorDefault.
// The zero value is the terminal's default color.
type Color uint8

const (
	// ColorDefault leaves the terminal's own color in place.
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	"default",
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// IsDefault returns true if the color is unset.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Index returns the palette index (0-15) of the color, or -1 for ColorDefault
// and out-of-range values.
func (c Color) Index() int {
	if c == ColorDefault || c > BrightWhite {
		return -1
	}
	return int(c) - 1
}

// IsBright returns true for the upper half of the palette.
func (c Color) IsBright() bool {
	return c >= BrightBlack && c <= BrightWhite
}

// FgCode returns the SGR parameter selecting c as the foreground color
// (30-37, 90-97), or 39 for the default color.
func (c Color) FgCode() int {
	switch i := c.Index(); {
	case i < 0:
		return 39
	case i < 8:
		return 30 + i
	default:
		return 90 + i - 8
	}
}

// BgCode returns the SGR parameter selecting c as the background color
// (40-47, 100-107), or 49 for the default color.
func (c Color) BgCode() int {
	switch i := c.Index(); {
	case i < 0:
		return 49
	case i < 8:
		return 40 + i
	default:
		return 100 + i - 8
	}
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor looks a color up by name. Names are case-insensitive and may be
// written kebab-case, snake_case or run together: "bright-blue",
// "bright_blue" and "BrightBlue" are equivalent. "gray"/"grey" alias
// bright-black.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "", "default", "none":
		return ColorDefault, nil
	case "gray", "grey":
		return BrightBlack, nil
	}
	for i, n := range colorNames {
		if strings.ReplaceAll(n, "-", "") == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
