package terminal

import (
	"bytes"
	"io"
)

// CRLFWriter converts \n to \r\n, as needed when writing directly to a terminal
// that is in raw mode (e.g. while a Terminal is open).
type CRLFWriter struct {
	// Out is the underlying writer to write to.
	Out io.Writer
}

func (w *CRLFWriter) Write(buf []byte) (n int, err error) {
	return CRLFWrite(w.Out, buf)
}

var (
	lf   = []byte{'\n'}
	crlf = []byte{'\r', '\n'}
)

// CRLFWrite writes buf to out, with \r\n instead of each \n, in a single Write.
// The returned count is in terms of buf (len(buf) when there is no error).
func CRLFWrite(out io.Writer, buf []byte) (n int, err error) {
	if len(buf) == 0 {
		return 0, nil
	}
	converted := buf
	if bytes.IndexByte(buf, '\n') >= 0 {
		converted = bytes.ReplaceAll(buf, lf, crlf)
	}
	_, err = out.Write(converted)
	if err != nil {
		return 0, err
	}
	// Auto flush
	if flusher, ok := out.(FlushWriter); ok {
		err = flusher.Flush()
	}
	return len(buf), err
}

func (w *CRLFWriter) Flush() error {
	// flush already done at the end of Write.
	return nil
}

type FlushWriter interface {
	io.Writer
	Flush() error
}
