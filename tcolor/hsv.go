package tcolor

import (
	"fmt"
	"math"
)

// HSVColor is hue in degrees [0,360), saturation and value in percent [0,100].
type HSVColor struct {
	H, S, V int
}

func (c HSVColor) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

func (c HSVColor) RGB() RGBColor {
	return HSVToRGB(float64(c.H)/360., float64(c.S)/100., float64(c.V)/100.)
}

func (c RGBColor) HSV() HSVColor {
	h, s, v := RGBToHSV(c)
	return HSVColor{H: degrees(h), S: percent(s), V: percent(v)}
}

// RGBToHSV converts to h, s and v each in [0,1]. Black has a saturation of 0.
func RGBToHSV(c RGBColor) (h, s, v float64) {
	r, g, b := c.floats()
	v = max(r, g, b)
	d := v - min(r, g, b)
	if v == 0 {
		return 0, 0, 0
	}
	s = d / v
	if d == 0 {
		return 0, s, v
	}
	return hue(r, g, b, v, d), s, v
}

// HSVToRGB converts h, s, v in [0,1] to RGB (h wraps around), using the
// 6 sectors reconstruction.
func HSVToRGB(h, s, v float64) RGBColor {
	h = unitHue(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGBColor{R: channel(r), G: channel(g), B: channel(b)}
}
