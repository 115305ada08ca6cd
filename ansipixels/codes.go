package ansipixels

// Ansi codes.
const (
	Bold = "\x1b[1m"
	Dim  = "\x1b[2m"

	Reset = "\033[0m"

	Red   = "\033[31m"
	Green = "\033[32m"
)
