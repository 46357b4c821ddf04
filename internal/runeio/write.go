package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteRune writes a single rune to w in UTF-8 form, using the most specific
// write method that w provides.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < utf8.RuneSelf {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	var buf [utf8.UTFMax]byte
	return w.Write(buf[:utf8.EncodeRune(buf[:], r)])
}
