package colorconv

import (
	"fmt"
	"regexp"
	"strconv"

	"fortio.org/colorconv/tcolor"
	"fortio.org/safecast"
)

// Options changes how input text is parsed. The zero value is the lenient default.
type Options struct {
	// Strict rejects numbers outside of their component's range (including negative ones)
	// and text with more numbers than the format needs. By default (lenient) every
	// run of digits is taken as is, signs and extra numbers are ignored, and
	// channels that end up out of range after conversion are clamped.
	Strict bool
	// NamedColors also accepts CSS/SVG color names (e.g. "navy") as hex input.
	NamedColors bool
}

// Converter parses and converts colors according to its Options.
// It holds no other state and is safe for concurrent use.
type Converter struct {
	opts Options
}

// New returns a Converter using opts.
func New(opts Options) Converter {
	return Converter{opts: opts}
}

// Default is the lenient converter used by the package level functions.
var Default = Converter{}

// Parse uses Default to parse raw in format f.
func Parse(raw string, f Format) (tcolor.RGBColor, error) {
	return Default.Parse(raw, f)
}

var (
	digitsRegexp       = regexp.MustCompile(`\d+`)
	signedDigitsRegexp = regexp.MustCompile(`-?\d+`)
)

// component describes one number of a numeric format, for strict range checks.
// max is inclusive: a hue of 360 is accepted as the same angle as 0.
type component struct {
	name string
	max  int
}

var (
	rgbComponents  = []component{{"red", 255}, {"green", 255}, {"blue", 255}}
	hslComponents  = []component{{"hue", 360}, {"saturation", 100}, {"lightness", 100}}
	cmykComponents = []component{{"cyan", 100}, {"magenta", 100}, {"yellow", 100}, {"black", 100}}
	hsvComponents  = []component{{"hue", 360}, {"saturation", 100}, {"value", 100}}
)

// Parse parses raw as a color in format f and returns its RGB value.
// Errors wrap ErrUnsupportedInputFormat or ErrMalformedInput.
func (c Converter) Parse(raw string, f Format) (tcolor.RGBColor, error) {
	switch f {
	case Hex:
		return c.parseHex(raw)
	case RGB:
		v, err := c.numbers(raw, rgbComponents)
		if err != nil {
			return tcolor.RGBColor{}, err
		}
		return tcolor.RGBColor{R: clampChannel(v[0]), G: clampChannel(v[1]), B: clampChannel(v[2])}, nil
	case HSL:
		v, err := c.numbers(raw, hslComponents)
		if err != nil {
			return tcolor.RGBColor{}, err
		}
		return tcolor.HSLColor{H: v[0], S: v[1], L: v[2]}.RGB(), nil
	case CMYK:
		v, err := c.numbers(raw, cmykComponents)
		if err != nil {
			return tcolor.RGBColor{}, err
		}
		return tcolor.CMYKColor{C: v[0], M: v[1], Y: v[2], K: v[3]}.RGB(), nil
	case HSV:
		v, err := c.numbers(raw, hsvComponents)
		if err != nil {
			return tcolor.RGBColor{}, err
		}
		return tcolor.HSVColor{H: v[0], S: v[1], V: v[2]}.RGB(), nil
	default:
		return tcolor.RGBColor{}, fmt.Errorf("%w %s", ErrUnsupportedInputFormat, f)
	}
}

func (c Converter) parseHex(raw string) (tcolor.RGBColor, error) {
	if rgb, ok := tcolor.ParseHex(raw); ok {
		return rgb, nil
	}
	if c.opts.NamedColors {
		if rgb, ok := tcolor.FromName(raw); ok {
			return rgb, nil
		}
		return tcolor.RGBColor{}, fmt.Errorf("%w: %q is neither #RRGGBB, #RGB nor a color name", ErrMalformedInput, raw)
	}
	return tcolor.RGBColor{}, fmt.Errorf("%w: %q is neither #RRGGBB nor #RGB", ErrMalformedInput, raw)
}

// numbers extracts the runs of digits in raw, one per component.
func (c Converter) numbers(raw string, components []component) ([]int, error) {
	re := digitsRegexp
	if c.opts.Strict {
		re = signedDigitsRegexp
	}
	tokens := re.FindAllString(raw, -1)
	n := len(components)
	if len(tokens) < n {
		return nil, fmt.Errorf("%w: %q has %d numbers, need %d", ErrMalformedInput, raw, len(tokens), n)
	}
	if c.opts.Strict && len(tokens) > n {
		return nil, fmt.Errorf("%w: %q has %d numbers, expected %d", ErrMalformedInput, raw, len(tokens), n)
	}
	values := make([]int, n)
	for i, comp := range components {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrMalformedInput, comp.name, tokens[i], err)
		}
		if c.opts.Strict && (v < 0 || v > comp.max) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, &OutOfRangeError{Component: comp.name, Value: v, Max: comp.max})
		}
		values[i] = v
	}
	return values, nil
}

// clampChannel maps lenient (unchecked) rgb input to a channel.
func clampChannel(v int) uint8 {
	if c, err := safecast.Convert[uint8](v); err == nil {
		return c
	}
	if v < 0 {
		return 0
	}
	return 255
}
