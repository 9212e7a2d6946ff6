package core

import (
	"fmt"
	"strconv"
)

// Color is a 24-bit RGB foreground color for a screen cell (0xRRGGBB).
// ColorDefault sits outside the 24-bit range and means "terminal default".
type Color uint32

// Colors used by the board and overlays.
const (
	ColorDefault Color = 1 << 24

	ColorPurple Color = 0x800080
	ColorRed    Color = 0xE53935
	ColorGreen  Color = 0x43A047
	ColorBrown  Color = 0x6D4C41
	ColorYellow Color = 0xFDD835
	ColorGray   Color = 0x8A8A8A
	ColorWhite  Color = 0xFFFFFF
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c > 0xFFFFFF
}

// Hex returns the color as "#rrggbb". The default color renders as "".
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c))
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return ColorDefault, fmt.Errorf("core: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}
