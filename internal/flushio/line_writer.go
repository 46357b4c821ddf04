package flushio

import "io"

// LineWriter is a WriteFlusher that tracks whether everything written through
// it so far ends with a complete line.
type LineWriter struct {
	WriteFlusher
	partial bool
}

// NewLineWriter wraps w as by NewWriteFlusher.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{WriteFlusher: NewWriteFlusher(w)}
}

func (lw *LineWriter) Write(p []byte) (n int, err error) {
	n, err = lw.WriteFlusher.Write(p)
	if n > 0 {
		lw.partial = p[n-1] != '\n'
	}
	return n, err
}

// Partial returns true if the last line written has not been terminated.
func (lw *LineWriter) Partial() bool { return lw.partial }

// EndLine terminates any partial line, then flushes.
func (lw *LineWriter) EndLine() error {
	if lw.partial {
		if _, err := lw.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return lw.Flush()
}
