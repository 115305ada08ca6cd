package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"fortio.org/colorconv"
	"fortio.org/colorconv/ansipixels"
	"fortio.org/colorconv/terminal"
	"fortio.org/log"
	"fortio.org/sets"
)

const interactiveHelp = `Enter a color, optionally followed by input and output formats, e.g.
  #03F
  hsl(240, 100%, 50%) hsl cmyk
Commands:
  in <format>   change the default input format (currently %s)
  out <format>  change the default output format (currently %s)
  all           toggle showing all the formats
  help          this help
  quit          exit (also ^D)
Formats: %s (tab completes)
`

var completionWords = func() sets.Set[string] {
	words := sets.New("in", "out", "all", "help", "quit", "exit")
	for _, f := range colorconv.Formats {
		words.Add(f.String())
	}
	return words
}()

// Interactive reads colors and commands from the terminal until quit or EOF.
func (r *Runner) Interactive() int {
	t, err := terminal.Open()
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer t.Close()
	t.LoggerSetup()
	if t.Raw() {
		r.AP.Out = &terminal.CRLFWriter{Out: r.AP.Out}
	}
	t.SetPrompt("colorconv> ")
	t.SetAutoCompleteCallback(func(_ *terminal.Terminal, line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return line, pos, false
		}
		return terminal.CompleteWord(line, pos, completionWords)
	})
	log.Infof("Interactive mode, type help for help, input %s, output %s", r.Config.From, r.Config.To)
	for {
		l, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("EOF received, exiting.")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		quit := r.Execute(l)
		if ferr := r.AP.Flush(); ferr != nil {
			return 1
		}
		if quit {
			return 0
		}
	}
}

// Batch executes each line read from in, as if typed at the interactive prompt,
// until EOF or quit. Used when stdin isn't a terminal. Returns 1 if any line failed.
func (r *Runner) Batch(in io.Reader) int {
	status := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, ok := r.execute(scanner.Text())
		if !ok {
			status = 1
		}
		if err := r.AP.Flush(); err != nil {
			return 1
		}
		if quit {
			return status
		}
	}
	if err := scanner.Err(); err != nil {
		return log.FErrf("Error reading input: %v", err)
	}
	return status
}

// Execute handles one line of interactive input. Returns true when the user asked to quit.
func (r *Runner) Execute(line string) bool {
	quit, _ := r.execute(line)
	return quit
}

// execute is Execute also returning false when the line was a failed conversion
// or an invalid command.
func (r *Runner) execute(line string) (quit, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, true
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, true
	case "help", "?":
		r.AP.Printf(interactiveHelp, r.Config.From, r.Config.To, colorconv.FormatHelp)
		return false, true
	case "all":
		r.Config.All = !r.Config.All
		r.AP.Printf("Showing all formats: %t\n", r.Config.All)
		return false, true
	case "in", "out":
		return false, r.setFormat(fields)
	}
	from, to := r.Config.From, r.Config.To
	if n := len(fields); n >= 3 && isFormatPair(fields[n-2], fields[n-1]) {
		from, to = fields[n-2], fields[n-1]
		line = strings.Join(fields[:n-2], " ")
	}
	return false, r.Show(line, from, to)
}

func (r *Runner) setFormat(fields []string) bool {
	if len(fields) != 2 || !isFormat(fields[1]) {
		r.AP.Printf("Usage: %s <format>, format one of: %s\n", fields[0], colorconv.FormatHelp)
		return false
	}
	f, _ := colorconv.ParseFormat(fields[1])
	if strings.EqualFold(fields[0], "in") {
		r.Config.From = f.String()
	} else {
		r.Config.To = f.String()
	}
	r.AP.Printf(ansipixels.Green+"Converting from %s to %s"+ansipixels.Reset+"\n", r.Config.From, r.Config.To)
	return true
}

func isFormat(s string) bool {
	_, ok := colorconv.ParseFormat(s)
	return ok
}

// isFormatPair is true for 2 trailing words of which at least one is a format name,
// e.g. "hex xyz": the conversion then reports which of the two is invalid.
func isFormatPair(in, out string) bool {
	return isWord(in) && isWord(out) && (isFormat(in) || isFormat(out))
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
