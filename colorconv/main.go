// colorconv converts colors between hex, rgb, hsl, cmyk and hsv and shows a swatch
// of the color in the terminal.
package main

import (
	"os"

	"fortio.org/colorconv/colorconv/cli"
)

func main() {
	os.Exit(cli.Main())
}
