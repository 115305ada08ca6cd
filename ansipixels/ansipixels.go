// Package ansipixels renders colors on ANSI terminals: a buffered writer that
// strips escape sequences when the output isn't a terminal, and color swatches.
package ansipixels // import "fortio.org/colorconv/ansipixels"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

type AnsiPixels struct {
	fdOut int
	Out   io.Writer
	buf   bytes.Buffer
	W, H  int // Width and Height, when GetSize succeeded
	// TrueColor selects 24 bit colors vs the 216 colors cube.
	TrueColor bool
	// NoColor strips all the escape sequences on Flush.
	NoColor bool
}

// NewAnsiPixels writes to stdout, with color only when stdout is a terminal.
func NewAnsiPixels() *AnsiPixels {
	ap := &AnsiPixels{
		fdOut:     safecast.MustConvert[int](os.Stdout.Fd()),
		Out:       os.Stdout,
		TrueColor: DetectTrueColor(),
	}
	ap.NoColor = !ap.IsTerminal()
	return ap
}

// NewWriter is for output to w (not a terminal), keeping the escape sequences.
func NewWriter(w io.Writer) *AnsiPixels {
	return &AnsiPixels{fdOut: -1, Out: w, TrueColor: true}
}

// DetectTrueColor checks the COLORTERM environment variable for 24 bit support.
func DetectTrueColor() bool {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	return ct == "truecolor" || ct == "24bit"
}

func (ap *AnsiPixels) IsTerminal() bool {
	return ap.fdOut >= 0 && term.IsTerminal(ap.fdOut)
}

func (ap *AnsiPixels) GetSize() (err error) {
	if ap.fdOut < 0 {
		return errors.New("output is not a terminal")
	}
	ap.W, ap.H, err = term.GetSize(ap.fdOut)
	return
}

func (ap *AnsiPixels) WriteString(s string) {
	_, _ = ap.buf.WriteString(s)
}

func (ap *AnsiPixels) WriteRune(r rune) {
	_, _ = ap.buf.WriteRune(r)
}

func (ap *AnsiPixels) Printf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(&ap.buf, msg, args...)
}

// Flush writes what was buffered so far, cleaned of escape sequences if NoColor is set.
func (ap *AnsiPixels) Flush() error {
	data := ap.buf.Bytes()
	if ap.NoColor {
		data = AnsiClean(data)
	}
	_, err := ap.Out.Write(data)
	ap.buf.Reset()
	if err != nil {
		log.Errf("Error writing output: %v", err)
	}
	return err
}

// ScreenWidth is the number of terminal cells s uses, ignoring escape sequences.
func ScreenWidth(s string) int {
	return uniseg.StringWidth(string(AnsiClean([]byte(s))))
}
