// Package runeio writes runes and strings onto io.Writer values without
// forcing every caller to care which optional write method the destination
// happens to implement.
package runeio

import "io"

type runeWriter interface {
	WriteRune(r rune) (n int, err error)
}

// WriteRune writes a single rune: ASCII runes go out as bare bytes, all
// others through the richest write method the destination offers.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	if r < 0x80 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}

// WriteString writes a string through the destination's StringWriter if it
// has one, falling back to a plain byte write.
func WriteString(w io.Writer, s string) (n int, err error) {
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(s)
	}
	return w.Write([]byte(s))
}
