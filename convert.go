package colorconv

import (
	"fmt"

	"fortio.org/colorconv/tcolor"
)

// Result holds a color in all the supported formats, with Output selecting which
// one Text returns.
type Result struct {
	RGB    tcolor.RGBColor
	Hex    string
	HSL    tcolor.HSLColor
	CMYK   tcolor.CMYKColor
	HSV    tcolor.HSVColor
	Output Format
}

// NewResult computes every representation of rgb.
func NewResult(rgb tcolor.RGBColor, output Format) Result {
	return Result{
		RGB:    rgb,
		Hex:    rgb.Hex(),
		HSL:    rgb.HSL(),
		CMYK:   rgb.CMYK(),
		HSV:    rgb.HSV(),
		Output: output,
	}
}

// Text is the formatted result in the Output format, e.g. "HSL: (0, 100%, 50%)".
func (r Result) Text() string {
	return r.Formatted(r.Output)
}

// Formatted returns the result formatted in f (or "" for an invalid f).
func (r Result) Formatted(f Format) string {
	switch f {
	case Hex:
		return "HEX: " + r.Hex
	case RGB:
		return fmt.Sprintf("RGB: (%d, %d, %d)", r.RGB.R, r.RGB.G, r.RGB.B)
	case HSL:
		return fmt.Sprintf("HSL: (%d, %d%%, %d%%)", r.HSL.H, r.HSL.S, r.HSL.L)
	case CMYK:
		return fmt.Sprintf("CMYK: (%d%%, %d%%, %d%%, %d%%)", r.CMYK.C, r.CMYK.M, r.CMYK.Y, r.CMYK.K)
	case HSV:
		return fmt.Sprintf("HSV: (%d, %d%%, %d%%)", r.HSV.H, r.HSV.S, r.HSV.V)
	default:
		return ""
	}
}

// Convert uses Default to convert raw from format in to format out.
func Convert(raw string, in, out Format) (Result, error) {
	return Default.Convert(raw, in, out)
}

// ConvertStrings uses Default to convert using format names.
func ConvertStrings(raw, in, out string) (Result, error) {
	return Default.ConvertStrings(raw, in, out)
}

// Convert parses raw in format in and returns all its representations with out selected.
// When raw is valid but out isn't a valid format, the returned Result still has all the
// representations (so a swatch can be shown) along with an ErrUnsupportedOutputFormat error.
func (c Converter) Convert(raw string, in, out Format) (Result, error) {
	rgb, err := c.Parse(raw, in)
	if err != nil {
		return Result{}, err
	}
	res := NewResult(rgb, out)
	if !out.Valid() {
		return res, fmt.Errorf("%w %s", ErrUnsupportedOutputFormat, out)
	}
	return res, nil
}

// ConvertStrings is Convert with the formats given by name, as typically received from
// a user interface. The input format is checked first, then raw, then the output format.
func (c Converter) ConvertStrings(raw, in, out string) (Result, error) {
	inFormat, ok := ParseFormat(in)
	if !ok {
		return Result{}, fmt.Errorf("%w %q, must be one of: %s", ErrUnsupportedInputFormat, in, FormatHelp)
	}
	rgb, err := c.Parse(raw, inFormat)
	if err != nil {
		return Result{}, err
	}
	outFormat, ok := ParseFormat(out)
	if !ok {
		return NewResult(rgb, HSV+1),
			fmt.Errorf("%w %q, must be one of: %s", ErrUnsupportedOutputFormat, out, FormatHelp)
	}
	return NewResult(rgb, outFormat), nil
}
