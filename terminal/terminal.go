// Package terminal provides line editing on ansi/vt100 style terminals, for
// the interactive mode of colorconv.
package terminal // import "fortio.org/colorconv/terminal"

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/sets"
	"golang.org/x/term"
)

type Terminal struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
	Out      io.Writer
}

// Open opens stdin as a terminal, do `defer terminal.Close()`
// to restore the terminal to its original state upon exit.
func Open() (*Terminal, error) {
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stderr}
	t := &Terminal{
		fd: safecast.MustConvert[int](os.Stdin.Fd()),
	}
	t.term = term.NewTerminal(rw, "")
	t.Out = t.term
	if !t.IsTerminal() {
		t.Out = os.Stderr // no need to add \r for non raw mode.
		return t, nil
	}
	var err error
	t.oldState, err = term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	t.term.SetBracketedPasteMode(true) // Seems useful to have it on by default.
	return t, nil
}

// StdinIsTerminal is false when the input is piped or redirected, in which case
// lines should be read directly instead of through a Terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(safecast.MustConvert[int](os.Stdin.Fd()))
}

func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Raw is true when the terminal was put in raw mode by Open (and not yet closed),
// in which case other writes to the tty need \r\n line endings (see CRLFWriter).
func (t *Terminal) Raw() bool {
	return t.oldState != nil
}

// Setups fortio logger to write to the terminal as needed to preserve prompt.
func (t *Terminal) LoggerSetup() {
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	// t.Out will add the needed \r for each \n when term is in raw mode
	log.SetOutput(t.Out)
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	// To avoid prompt being repeated on the last line.
	t.term.SetPrompt("")
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	t.Out = os.Stderr
	log.SetOutput(os.Stderr)
	return err
}

func (t *Terminal) ReadLine() (string, error) {
	c, err := t.term.ReadLine()
	// That error isn't an error that needs to be propagated,
	// it's just to allow copy/paste without autocomplete.
	if errors.Is(err, term.ErrPasteIndicator) {
		return c, nil
	}
	return c, err
}

func (t *Terminal) SetPrompt(s string) {
	t.term.SetPrompt(s)
}

// Pass "this" back so AutoCompleteCallback can use t.Out etc.
// (compared to the original x/term callback).
type AutoCompleteCallback func(t *Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool)

func (t *Terminal) SetAutoCompleteCallback(f AutoCompleteCallback) {
	t.term.AutoCompleteCallback = func(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		return f(t, line, pos, key)
	}
}

// CompleteWord completes the word ending at pos to the single entry of words it is a prefix of.
// When several words match, the line is extended to their longest common prefix, if longer.
// pos and newPos are rune indexes, as in x/term callbacks. ok is false when there
// is nothing to complete.
func CompleteWord(line string, pos int, words sets.Set[string]) (newLine string, newPos int, ok bool) {
	runes := []rune(line)
	if pos < 0 || pos > len(runes) {
		return line, pos, false
	}
	start := pos
	for start > 0 && runes[start-1] != ' ' && runes[start-1] != '\t' {
		start--
	}
	prefix := strings.ToLower(string(runes[start:pos]))
	if prefix == "" {
		return line, pos, false
	}
	common := ""
	found := false
	for _, w := range sets.Sort(words) {
		if !strings.HasPrefix(w, prefix) {
			continue
		}
		if !found {
			common = w
			found = true
			continue
		}
		common = commonPrefix(common, w)
	}
	if !found {
		return line, pos, false
	}
	completion := common[len(prefix):]
	if words.Has(common) && !hasLongerMatch(words, common) {
		completion += " "
	}
	if completion == "" {
		return line, pos, false
	}
	return string(runes[:pos]) + completion + string(runes[pos:]), pos + utf8.RuneCountInString(completion), true
}

func hasLongerMatch(words sets.Set[string], prefix string) bool {
	for w := range words {
		if len(w) > len(prefix) && strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i]
}
