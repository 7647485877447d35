package palette

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse resolves a colour written either as a CSS/SVG colour name ("skyblue", "Forest Green")
// or as #RGB / #RRGGBB. Alpha is always 255. Returns black and false when s is not recognised.
func Parse(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if c, ok := colornames.Map[name]; ok {
		return c, true
	}
	return colornames.Black, false
}

// ParseHex parses #RGB or #RRGGBB.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return colornames.Black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return colornames.Black, false
		}
	}
	var r, g, b uint8
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r = nibble(hex[0]) * 17
		g = nibble(hex[1]) * 17
		b = nibble(hex[2]) * 17
	case 6:
		r = nibble(hex[0])<<4 + nibble(hex[1])
		g = nibble(hex[2])<<4 + nibble(hex[3])
		b = nibble(hex[4])<<4 + nibble(hex[5])
	default:
		return colornames.Black, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// MustParse is Parse for colours fixed at compile time; unknown values fall back to magenta so they stand out.
func MustParse(s string) color.RGBA {
	if c, ok := Parse(s); ok {
		return c
	}
	return colornames.Magenta
}

func nibble(c byte) uint8 {
	v, _ := hexByte(c)
	return v
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
