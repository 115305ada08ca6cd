package tcolor

import "fmt"

// CMYKColor is cyan, magenta, yellow and black, each in percent [0,100].
type CMYKColor struct {
	C, M, Y, K int
}

func (c CMYKColor) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

func (c CMYKColor) RGB() RGBColor {
	return CMYKToRGB(float64(c.C)/100., float64(c.M)/100., float64(c.Y)/100., float64(c.K)/100.)
}

func (c RGBColor) CMYK() CMYKColor {
	cy, m, y, k := RGBToCMYK(c)
	return CMYKColor{C: percent(cy), M: percent(m), Y: percent(y), K: percent(k)}
}

// RGBToCMYK converts to c, m, y, k each in [0,1].
// Pure black is k=1 with c, m and y all 0.
func RGBToCMYK(col RGBColor) (c, m, y, k float64) {
	r, g, b := col.floats()
	k = 1 - max(r, g, b)
	if k == 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB converts c, m, y, k in [0,1] to RGB.
func CMYKToRGB(c, m, y, k float64) RGBColor {
	return RGBColor{
		R: channel((1 - c) * (1 - k)),
		G: channel((1 - m) * (1 - k)),
		B: channel((1 - y) * (1 - k)),
	}
}
