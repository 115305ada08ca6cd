package tcolor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexRegexp = regexp.MustCompile(`^#?([[:xdigit:]]{2})([[:xdigit:]]{2})([[:xdigit:]]{2})$`)
	// Shorthand needs the # so a bare word like "abc" isn't taken for a color.
	shortHexRegexp = regexp.MustCompile(`^#([[:xdigit:]])([[:xdigit:]])([[:xdigit:]])$`)
)

// ParseHex parses "#RRGGBB", "RRGGBB" or the "#RGB" shorthand (each digit doubled),
// case insensitive. The boolean is false if text isn't one of these forms.
func ParseHex(text string) (RGBColor, bool) {
	text = strings.TrimSpace(text)
	if m := shortHexRegexp.FindStringSubmatch(text); m != nil {
		text = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	m := hexRegexp.FindStringSubmatch(text)
	if m == nil {
		return RGBColor{}, false
	}
	return RGBColor{R: hexByte(m[1]), G: hexByte(m[2]), B: hexByte(m[3])}, true
}

// hexByte decodes 2 hex digits already validated by the regexp.
func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v) //nolint:gosec // 2 hex digits always fit.
}

// Hex returns the uppercase "#RRGGBB" form of the color.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
