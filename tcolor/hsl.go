package tcolor

import "fmt"

// HSLColor is hue in degrees [0,360), saturation and lightness in percent [0,100].
// Values parsed from user input aren't range checked and may be outside of these.
type HSLColor struct {
	H, S, L int
}

func (c HSLColor) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGB converts to RGB, clamping channels that end up out of range.
func (c HSLColor) RGB() RGBColor {
	return HSLToRGB(float64(c.H)/360., float64(c.S)/100., float64(c.L)/100.)
}

// HSL returns the rounded HSL representation of the color.
func (c RGBColor) HSL() HSLColor {
	h, s, l := RGBToHSL(c)
	return HSLColor{H: degrees(h), S: percent(s), L: percent(l)}
}

// RGBToHSL converts to h, s and l each in [0,1].
// Grays (all channels equal) have h and s of 0.
func RGBToHSL(c RGBColor) (h, s, l float64) {
	r, g, b := c.floats()
	maxC := max(r, g, b)
	minC := min(r, g, b)
	l = (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}
	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	return hue(r, g, b, maxC, d), s, l
}

// HSLToRGB converts HSL values to RGB. h, s and l in [0,1], h wraps around.
func HSLToRGB(h, s, l float64) RGBColor {
	var r, g, b float64
	h = unitHue(h)
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1. + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1/3.)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1/3.)
	}
	return RGBColor{R: channel(r), G: channel(g), B: channel(b)}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.
	}
	if t > 1 {
		t -= 1.
	}
	if t < 1/6. {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2/3. {
		return p + (q-p)*(2/3.-t)*6
	}
	return p
}
