// Package colorconv converts a color given as text in one of the supported formats
// (hex, rgb, hsl, cmyk, hsv) to its representation in another, going through RGB.
//
// The functions are pure and safe for concurrent use:
//
//	res, err := colorconv.Convert("#FF0000", colorconv.Hex, colorconv.RGB)
//	fmt.Println(res.Text()) // RGB: (255, 0, 0)
package colorconv // import "fortio.org/colorconv"

import (
	"strings"
)

// Format is one of the supported color text formats.
type Format uint8

const (
	Hex  Format = iota // hex
	RGB                // rgb
	HSL                // hsl
	CMYK               // cmyk
	HSV                // hsv
)

//go:generate stringer -type=Format -linecomment
var _ = HSV.String() // force compile error if go generate is missing.

// Formats lists all the valid formats, in order.
var Formats = []Format{Hex, RGB, HSL, CMYK, HSV}

// FormatHelp is the comma separated list of the format names, for usage/help strings.
var FormatHelp string

var formatMap map[string]Format

func init() {
	formatMap = make(map[string]Format, len(Formats))
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		formatMap[f.String()] = f
		names = append(names, f.String())
	}
	FormatHelp = strings.Join(names, ", ")
}

// ParseFormat returns the Format for a (case insensitive) name like "hsl".
func ParseFormat(name string) (Format, bool) {
	f, ok := formatMap[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Valid is true for the Formats listed above.
func (f Format) Valid() bool {
	return f <= HSV
}

// Label is the uppercase name used in results, e.g. "CMYK".
func (f Format) Label() string {
	return strings.ToUpper(f.String())
}
