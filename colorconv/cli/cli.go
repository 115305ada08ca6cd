// Package cli is the command line and interactive front end of colorconv:
// it reads colors and format selections and shows the converted value next
// to a swatch of the color.
package cli

import (
	"flag"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/colorconv"
	"fortio.org/colorconv/ansipixels"
	"fortio.org/colorconv/ansipixels/table"
	"fortio.org/colorconv/terminal"
	"fortio.org/log"
	"fortio.org/struct2env"
)

// EnvPrefix is the prefix of the environment variables setting Config defaults,
// e.g. COLORCONV_TO=hsl.
const EnvPrefix = "COLORCONV_"

// Config is the presentation configuration. Environment variables are applied
// first and the command line flags override them.
type Config struct {
	From         string // input format name
	To           string // output format name
	Strict       bool
	CSSNames     bool `env:"CSS_NAMES"`
	All          bool
	NoSwatch     bool
	SwatchWidth  int
	SwatchHeight int
	TrueColor    bool
}

// DefaultConfig is hex input and rgb output.
func DefaultConfig() Config {
	return Config{
		From:         colorconv.Hex.String(),
		To:           colorconv.RGB.String(),
		SwatchWidth:  16,
		SwatchHeight: 3,
		TrueColor:    ansipixels.DetectTrueColor(),
	}
}

// LoadConfig returns DefaultConfig updated from the COLORCONV_* environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	for _, err := range struct2env.SetFromEnv(EnvPrefix, &cfg) {
		log.Warnf("Ignoring environment setting: %v", err)
	}
	return cfg
}

func Main() int {
	cfg := LoadConfig()
	flag.StringVar(&cfg.From, "from", cfg.From, "Input `format`, one of: "+colorconv.FormatHelp)
	flag.StringVar(&cfg.To, "to", cfg.To, "Output `format`, one of: "+colorconv.FormatHelp)
	flag.BoolVar(&cfg.Strict, "strict", cfg.Strict,
		"Reject out of range or extra numbers instead of the lenient digits extraction")
	flag.BoolVar(&cfg.CSSNames, "css-names", cfg.CSSNames, "Also accept CSS color names (e.g. navy) as hex input")
	flag.BoolVar(&cfg.All, "all", cfg.All, "Show the color in all the formats")
	flag.BoolVar(&cfg.NoSwatch, "no-swatch", cfg.NoSwatch, "Don't draw the color swatch")
	flag.IntVar(&cfg.SwatchWidth, "swatch-width", cfg.SwatchWidth, "Swatch `width` in terminal columns")
	flag.IntVar(&cfg.SwatchHeight, "swatch-height", cfg.SwatchHeight, "Swatch `height` in lines")
	flag.BoolVar(&cfg.TrueColor, "truecolor", cfg.TrueColor,
		"Use 24 bit colors instead of the 256 colors palette (default from COLORTERM)")
	cli.MinArgs = 0
	cli.MaxArgs = -1
	cli.ArgsHelp = " [color...]\nConverts each color, or each line of stdin (interactive prompt on a terminal), e.g.\n" +
		"  colorconv '#FF0000'\n  colorconv -from hsl -to cmyk 'hsl(240, 100%, 50%)'"
	cli.Main()
	if cfg.SwatchWidth < 1 || cfg.SwatchHeight < 0 {
		return log.FErrf("Invalid swatch size %dx%d", cfg.SwatchWidth, cfg.SwatchHeight)
	}
	ap := ansipixels.NewAnsiPixels()
	ap.TrueColor = cfg.TrueColor
	if ap.IsTerminal() && ap.GetSize() == nil && ap.W > 2 {
		cfg.SwatchWidth = min(cfg.SwatchWidth, ap.W-2)
	}
	r := NewRunner(ap, cfg)
	if flag.NArg() > 0 {
		return r.Run(flag.Args())
	}
	if !terminal.StdinIsTerminal() {
		return r.Batch(os.Stdin)
	}
	return r.Interactive()
}

// Runner converts colors per its Config and writes results to its AnsiPixels.
type Runner struct {
	AP     *ansipixels.AnsiPixels
	Config Config
	conv   colorconv.Converter
}

func NewRunner(ap *ansipixels.AnsiPixels, cfg Config) *Runner {
	return &Runner{
		AP:     ap,
		Config: cfg,
		conv:   colorconv.New(colorconv.Options{Strict: cfg.Strict, NamedColors: cfg.CSSNames}),
	}
}

// Run converts each of colors, returns 1 if any failed (0 otherwise).
func (r *Runner) Run(colors []string) int {
	log.LogVf("Converting %d colors from %s to %s", len(colors), r.Config.From, r.Config.To)
	status := 0
	for _, c := range colors {
		if !r.Show(c, r.Config.From, r.Config.To) {
			status = 1
		}
	}
	if err := r.AP.Flush(); err != nil {
		return 1
	}
	return status
}

// Show converts raw and writes the swatch and result (or error message). Returns
// false on error. Like the output it's derived from, the swatch is shown even
// when only the output format is invalid.
func (r *Runner) Show(raw, from, to string) bool {
	res, err := r.conv.ConvertStrings(raw, from, to)
	if err != nil {
		log.LogVf("Conversion of %q from %q to %q failed: %v", raw, from, to, err)
	}
	if res.Hex != "" && !r.Config.NoSwatch {
		r.AP.Swatch(res.RGB, r.Config.SwatchWidth, r.Config.SwatchHeight, res.Hex)
	}
	if err != nil {
		r.AP.WriteString(ansipixels.Red + colorconv.Message(err) + ansipixels.Reset + "\n")
		return false
	}
	if !r.Config.All {
		r.AP.WriteString(res.Text() + "\n")
		return true
	}
	rows := make([][]string, 0, len(colorconv.Formats))
	for _, f := range colorconv.Formats {
		label, value, _ := strings.Cut(res.Formatted(f), ": ")
		marker := ""
		if f == res.Output {
			marker = r.AP.Chip(res.RGB, 1) + "*"
			label = ansipixels.Bold + label + ansipixels.Reset
		} else {
			label = ansipixels.Dim + label + ansipixels.Reset
		}
		rows = append(rows, []string{marker, label, value})
	}
	table.WriteTable(r.AP, []table.Alignment{table.Center, table.Right, table.Left}, 1, rows, table.BorderOuterColumns)
	return true
}
