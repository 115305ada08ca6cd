// Package tcolor provides the color models used by colorconv (RGB, hex, HSL, HSV, CMYK),
// the conversions between RGB and each of the others, and ANSI terminal color codes
// to display an RGB color.
package tcolor // import "fortio.org/colorconv/tcolor"

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/image/colornames"
)

// Reset is the ANSI sequence restoring the default terminal colors.
const Reset = "\033[0m"

// RGBColor is the hub representation: every other model converts to and from it.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Terminal foreground color string for RGBColor.
func (c RGBColor) Foreground() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Terminal background color string for RGBColor.
func (c RGBColor) Background() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// floats returns the channels normalized to [0,1].
func (c RGBColor) floats() (r, g, b float64) {
	return float64(c.R) / 255., float64(c.G) / 255., float64(c.B) / 255.
}

// FromName returns the color for a CSS/SVG color name (e.g. "darkslateblue"),
// case and space insensitive.
func FromName(name string) (RGBColor, bool) {
	name = strings.ToLower(strings.Join(strings.Fields(name), ""))
	c, ok := colornames.Map[name]
	if !ok {
		return RGBColor{}, false
	}
	return RGBColor{R: c.R, G: c.G, B: c.B}, true
}

// channel converts a nominally [0,1] value to a 0-255 channel, rounding half away
// from zero and clamping what falls outside (out of range HSL/HSV/CMYK inputs).
func channel(v float64) uint8 {
	return safecast.MustConvert[uint8](math.Round(min(255, max(0, v*255))))
}

// percent converts [0,1] to an integer percentage.
func percent(v float64) int {
	return int(math.Round(v * 100))
}

// degrees converts a [0,1) hue to integer degrees in [0,360).
func degrees(h float64) int {
	d := int(math.Round(h * 360))
	if d == 360 {
		return 0
	}
	return d
}

// unitHue maps a hue fraction (any real value) to [0,1).
func unitHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}

// hue returns the hue in [0,1) given normalized channels, their max and max-min (d > 0).
func hue(r, g, b, maxC, d float64) float64 {
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func RGBATo216(pixel RGBColor) uint8 {
	// Check if grayscale
	shift := 4
	if (pixel.R>>shift) == (pixel.G>>shift) && (pixel.G>>shift) == (pixel.B>>shift) {
		lum := (uint16(pixel.R) + uint16(pixel.G) + uint16(pixel.B)) / 3
		if lum < 9 { // 0-8, 9 levels
			return 16 // -> black
		}
		if lum > 247 { // 248-255 (incl) 8 levels
			return 231 // -> white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	// 6x6x6 color cube
	return 16 + 36*(pixel.R/51) + 6*(pixel.G/51) + pixel.B/51
}

// ColorOutput turns an RGBColor into terminal escapes, converting to the 216 colors
// cube when TrueColor is false.
type ColorOutput struct {
	TrueColor bool // true if the output supports true color, false for 256 colors
}

func (co ColorOutput) Foreground(c RGBColor) string {
	if co.TrueColor {
		return c.Foreground()
	}
	return fmt.Sprintf("\033[38;5;%dm", RGBATo216(c))
}

func (co ColorOutput) Background(c RGBColor) string {
	if co.TrueColor {
		return c.Background()
	}
	return fmt.Sprintf("\033[48;5;%dm", RGBATo216(c))
}
