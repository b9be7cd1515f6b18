// Package bitio provides the bit/byte I/O primitives the WBWT codec is
// built on: a growable byte buffer, an MSB-first bit writer/reader pair,
// unsigned LEB128 varints and little-endian u32 helpers.
package bitio

import "bytes"

// ByteWriter is a growable byte buffer with amortized doubling, used to
// assemble a frame's header and dictionary fields before the coded symbol
// stream is appended to it.
type ByteWriter struct {
	buf bytes.Buffer
}

// NewByteWriter returns a ByteWriter pre-grown to size bytes.
func NewByteWriter(size int) *ByteWriter {
	w := &ByteWriter{}
	w.buf.Grow(size)
	return w
}

func (w *ByteWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *ByteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteU32LE appends the 4-byte little-endian encoding of v.
func (w *ByteWriter) WriteU32LE(v uint32) {
	w.buf.Write(PutU32LE(nil, v))
}

// WriteUvarint appends the unsigned LEB128 encoding of v.
func (w *ByteWriter) WriteUvarint(v uint64) {
	w.buf.Write(PutUvarint(nil, v))
}

func (w *ByteWriter) Len() int {
	return w.buf.Len()
}

func (w *ByteWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *ByteWriter) Reset() {
	w.buf.Reset()
}
