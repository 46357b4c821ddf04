// Package flushio provides console sinks that buffer output until flushed.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops all writes.
var Discard WriteFlusher = unbuffered{io.Discard}

// NewWriteFlusher adapts w into a WriteFlusher. Writers that can already
// flush are returned as is; in-memory buffers and io.Discard gain a no-op
// Flush; anything else is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return unbuffered{w}
	}
	if w == io.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

type unbuffered struct{ io.Writer }

func (unbuffered) Flush() error { return nil }

// Tee returns a WriteFlusher that writes to, and flushes, every given one in
// order. Nils are skipped, and nested tees are flattened; Tee returns nil if
// given nothing, or the sole remaining WriteFlusher.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

// Write stops at the first sink that fails or writes short.
func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// Flush flushes every sink, even after one fails, returning the first error.
func (t tee) Flush() error {
	var first error
	for _, wf := range t {
		if err := wf.Flush(); first == nil {
			first = err
		}
	}
	return first
}
