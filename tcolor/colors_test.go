package tcolor_test

import (
	"testing"

	"fortio.org/colorconv/tcolor"
	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input    string
		expected tcolor.RGBColor
	}{
		{"#000000", tcolor.RGBColor{R: 0, G: 0, B: 0}},
		{"#FFFFFF", tcolor.RGBColor{R: 255, G: 255, B: 255}},
		{"#FF5733", tcolor.RGBColor{R: 255, G: 87, B: 51}},
		{"33FF57", tcolor.RGBColor{R: 51, G: 255, B: 87}},
		{"#3357ff", tcolor.RGBColor{R: 51, G: 87, B: 255}},
		{" #03F ", tcolor.RGBColor{R: 0, G: 0x33, B: 0xFF}},
		{"#abc", tcolor.RGBColor{R: 0xAA, G: 0xBB, B: 0xCC}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c, ok := tcolor.ParseHex(test.input)
			if !ok {
				t.Fatalf("Failed to parse %q", test.input)
			}
			if c != test.expected {
				t.Errorf("Parsed %q as %v, expected %v", test.input, c, test.expected)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "abc", "#abcd", "#12345", "#1234567", "#GG0000", "##FF0000", "rgb(1,2,3)"} {
		if c, ok := tcolor.ParseHex(input); ok {
			t.Errorf("Expected %q to be rejected, got %v", input, c)
		}
	}
}

func TestHexShorthandAndCase(t *testing.T) {
	short, _ := tcolor.ParseHex("#03F")
	long, _ := tcolor.ParseHex("#0033FF")
	if short != long {
		t.Errorf("#03F gave %v, #0033FF gave %v", short, long)
	}
	lower, _ := tcolor.ParseHex("#ff0000")
	upper, _ := tcolor.ParseHex("#FF0000")
	if lower != upper {
		t.Errorf("#ff0000 gave %v, #FF0000 gave %v", lower, upper)
	}
	if h := (tcolor.RGBColor{R: 1, G: 0xAB, B: 0}).Hex(); h != "#01AB00" {
		t.Errorf("Hex() = %q, expected #01AB00", h)
	}
}

// Expected values cross-checked against common web color pickers.
func TestModels(t *testing.T) {
	type models struct {
		HSL  tcolor.HSLColor
		HSV  tcolor.HSVColor
		CMYK tcolor.CMYKColor
	}
	tests := []struct {
		rgb      tcolor.RGBColor
		expected models
	}{
		{tcolor.RGBColor{R: 255}, models{
			tcolor.HSLColor{H: 0, S: 100, L: 50}, tcolor.HSVColor{H: 0, S: 100, V: 100}, tcolor.CMYKColor{C: 0, M: 100, Y: 100, K: 0},
		}},
		{tcolor.RGBColor{G: 255}, models{
			tcolor.HSLColor{H: 120, S: 100, L: 50}, tcolor.HSVColor{H: 120, S: 100, V: 100}, tcolor.CMYKColor{C: 100, M: 0, Y: 100, K: 0},
		}},
		{tcolor.RGBColor{B: 255}, models{
			tcolor.HSLColor{H: 240, S: 100, L: 50}, tcolor.HSVColor{H: 240, S: 100, V: 100}, tcolor.CMYKColor{C: 100, M: 100, Y: 0, K: 0},
		}},
		{tcolor.RGBColor{R: 128, G: 128, B: 128}, models{
			tcolor.HSLColor{H: 0, S: 0, L: 50}, tcolor.HSVColor{H: 0, S: 0, V: 50}, tcolor.CMYKColor{C: 0, M: 0, Y: 0, K: 50},
		}},
		{tcolor.RGBColor{}, models{
			tcolor.HSLColor{}, tcolor.HSVColor{}, tcolor.CMYKColor{C: 0, M: 0, Y: 0, K: 100},
		}},
		{tcolor.RGBColor{R: 255, G: 255, B: 255}, models{
			tcolor.HSLColor{H: 0, S: 0, L: 100}, tcolor.HSVColor{H: 0, S: 0, V: 100}, tcolor.CMYKColor{},
		}},
		{tcolor.RGBColor{R: 255, G: 87, B: 51}, models{
			tcolor.HSLColor{H: 11, S: 100, L: 60}, tcolor.HSVColor{H: 11, S: 80, V: 100}, tcolor.CMYKColor{C: 0, M: 66, Y: 80, K: 0},
		}},
		// Hue of 359.77 rounds to 360 which is reported as 0.
		{tcolor.RGBColor{R: 255, G: 0, B: 1}, models{
			tcolor.HSLColor{H: 0, S: 100, L: 50}, tcolor.HSVColor{H: 0, S: 100, V: 100}, tcolor.CMYKColor{C: 0, M: 100, Y: 100, K: 0},
		}},
	}
	for _, test := range tests {
		t.Run(test.rgb.Hex(), func(t *testing.T) {
			got := models{HSL: test.rgb.HSL(), HSV: test.rgb.HSV(), CMYK: test.rgb.CMYK()}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("%v mismatch (-want +got):\n%s", test.rgb, diff)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	red := tcolor.RGBColor{R: 255}
	tests := []struct {
		name     string
		got      tcolor.RGBColor
		expected tcolor.RGBColor
	}{
		{"hsl blue", tcolor.HSLColor{H: 240, S: 100, L: 50}.RGB(), tcolor.RGBColor{B: 255}},
		{"hsl 360 wraps", tcolor.HSLColor{H: 360, S: 100, L: 50}.RGB(), red},
		{"hsl 720 wraps", tcolor.HSLColor{H: 720, S: 100, L: 50}.RGB(), red},
		{"hsl gray", tcolor.HSLColor{H: 123, S: 0, L: 50}.RGB(), tcolor.RGBColor{R: 128, G: 128, B: 128}},
		{"hsv green", tcolor.HSVColor{H: 120, S: 100, V: 100}.RGB(), tcolor.RGBColor{G: 255}},
		{"hsv black", tcolor.HSVColor{H: 200, S: 50, V: 0}.RGB(), tcolor.RGBColor{}},
		{"cmyk red", tcolor.CMYKColor{C: 0, M: 100, Y: 100, K: 0}.RGB(), red},
		{"cmyk black", tcolor.CMYKColor{K: 100}.RGB(), tcolor.RGBColor{}},
		{"cmyk clamps", tcolor.CMYKColor{C: 500, M: 0, Y: 0, K: 0}.RGB(), tcolor.RGBColor{G: 255, B: 255}},
		{"hsl clamps", tcolor.HSLColor{H: 0, S: 500, L: 50}.RGB(), red},
		// From the HSL float tests of the terminal color package.
		{"hsl float 0.5", tcolor.HSLToRGB(0.5, 0.5, 0.5), tcolor.RGBColor{R: 64, G: 191, B: 191}},
		{"hsl float 0.1", tcolor.HSLToRGB(0.1, 1, 0.5), tcolor.RGBColor{R: 255, G: 153, B: 0}},
		{"hsl float 0.7", tcolor.HSLToRGB(0.7, 1, 0.5), tcolor.RGBColor{R: 51, G: 0, B: 255}},
	}
	for _, test := range tests {
		if test.got != test.expected {
			t.Errorf("%s: got %v, expected %v", test.name, test.got, test.expected)
		}
	}
}

func TestRoundTripsFloats(t *testing.T) {
	var mismatches int
	for r := range 256 {
		for g := range 256 {
			for b := range 256 {
				in := tcolor.RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}
				h, s, l := tcolor.RGBToHSL(in)
				hsl := tcolor.HSLToRGB(h, s, l)
				h, s, v := tcolor.RGBToHSV(in)
				hsv := tcolor.HSVToRGB(h, s, v)
				c, m, y, k := tcolor.RGBToCMYK(in)
				cmyk := tcolor.CMYKToRGB(c, m, y, k)
				hex, ok := tcolor.ParseHex(in.Hex())
				if hsl != in || hsv != in || cmyk != in || hex != in || !ok {
					mismatches++
					if mismatches <= 10 { // log only first few
						t.Errorf("Mismatch: in=%v hsl=%v hsv=%v cmyk=%v hex=%v", in, hsl, hsv, cmyk, hex)
					}
				}
			}
		}
	}
	if mismatches > 0 {
		t.Fatalf("Total mismatches: %d", mismatches)
	}
}

func TestFromName(t *testing.T) {
	c, ok := tcolor.FromName("Dark Slate Blue")
	if !ok || c != (tcolor.RGBColor{R: 0x48, G: 0x3D, B: 0x8B}) {
		t.Errorf("darkslateblue: got %v %t", c, ok)
	}
	if _, ok := tcolor.FromName("notacolor"); ok {
		t.Errorf("notacolor should not be found")
	}
}

func TestRGBATo216(t *testing.T) {
	tests := []struct {
		in       tcolor.RGBColor
		expected uint8
	}{
		{tcolor.RGBColor{}, 16},
		{tcolor.RGBColor{R: 255, G: 255, B: 255}, 231},
		{tcolor.RGBColor{R: 255}, 196},
		{tcolor.RGBColor{B: 255}, 21},
		{tcolor.RGBColor{R: 128, G: 128, B: 128}, 244},
	}
	for _, test := range tests {
		if got := tcolor.RGBATo216(test.in); got != test.expected {
			t.Errorf("RGBATo216(%v) = %d, expected %d", test.in, got, test.expected)
		}
	}
	co := tcolor.ColorOutput{}
	if got := co.Background(tcolor.RGBColor{R: 255}); got != "\033[48;5;196m" {
		t.Errorf("256 colors background = %q", got)
	}
	co.TrueColor = true
	if got := co.Foreground(tcolor.RGBColor{R: 1, G: 2, B: 3}); got != "\033[38;2;1;2;3m" {
		t.Errorf("true color foreground = %q", got)
	}
}
