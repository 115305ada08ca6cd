package ansipixels

// AnsiClean returns a copy of str without the ANSI escape sequences: CSI
// sequences (ESC [ ... final byte) and 2 bytes escapes. Unterminated sequences
// at the end are dropped.
func AnsiClean(str []byte) []byte {
	n := len(str)
	res := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b := str[i]
		if b != 0x1b {
			res = append(res, b)
			continue
		}
		i++
		if i >= n || str[i] != '[' {
			continue
		}
		// Skip parameters and intermediate bytes, until the final byte (@ to ~).
		for i++; i < n && (str[i] < 0x40 || str[i] > 0x7e); i++ {
		}
	}
	return res
}
