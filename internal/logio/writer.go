package logio

import (
	"bytes"
	"sync"
)

// Writer adapts a printf-style function, like testing.T.Logf, into an
// io.Writer that logs each completed line with one call.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu      sync.Mutex
	partial []byte
}

// Write logs every line completed by p, holding back any trailing partial
// line for a later Write or Close.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	rest := p
	for {
		line, more, found := bytes.Cut(rest, []byte{'\n'})
		if !found {
			break
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.Logf("%s", line)
		rest = more
	}
	lw.partial = append(lw.partial, rest...)
	return len(p), nil
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.Logf("%s", lw.partial)
		lw.partial = nil
	}
	return nil
}
