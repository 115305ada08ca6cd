package ansipixels

import (
	"strings"

	"fortio.org/colorconv/tcolor"
)

// Swatch draws, at the current line, a rounded box whose inside (width x height cells)
// is filled with color. A non empty label is centered in the bottom border when it fits.
func (ap *AnsiPixels) Swatch(color tcolor.RGBColor, width, height int, label string) {
	width = max(1, width)
	co := tcolor.ColorOutput{TrueColor: ap.TrueColor}
	ap.WriteString(RoundTopLeft + strings.Repeat(Horizontal, width) + RoundTopRight + "\n")
	fill := co.Background(color) + strings.Repeat(" ", width) + Reset
	for range height {
		ap.WriteString(Vertical + fill + Vertical + "\n")
	}
	ap.WriteString(RoundBottomLeft + bottomBorder(width, label) + RoundBottomRight + "\n")
}

func bottomBorder(width int, label string) string {
	lw := ScreenWidth(label)
	if label == "" || lw+2 > width {
		return strings.Repeat(Horizontal, width)
	}
	left := (width - lw - 2) / 2
	right := width - lw - 2 - left
	return strings.Repeat(Horizontal, left) + " " + label + " " + strings.Repeat(Horizontal, right)
}

// Chip returns an inline swatch of n cells of color, for use within a line of text.
func (ap *AnsiPixels) Chip(color tcolor.RGBColor, n int) string {
	co := tcolor.ColorOutput{TrueColor: ap.TrueColor}
	return co.Background(color) + strings.Repeat(" ", n) + Reset
}
