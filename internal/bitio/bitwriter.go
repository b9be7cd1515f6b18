package bitio

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitWriter packs bits MSB-first into bytes on top of
// github.com/icza/bitio. On Finish, a partial final byte is left-shifted
// (via bitio's Align) so written bits occupy the high-order positions of
// the last byte.
type BitWriter struct {
	buf *bytes.Buffer
	bw  *bitio.Writer
}

func NewBitWriter() *BitWriter {
	var buf bytes.Buffer
	return &BitWriter{buf: &buf, bw: bitio.NewWriter(&buf)}
}

// WriteBit writes a single bit (0 or 1), MSB-first.
func (w *BitWriter) WriteBit(bit uint64) {
	w.bw.TryWriteBits(bit&1, 1)
}

// WriteBits writes the low nbBits of v, MSB-first.
func (w *BitWriter) WriteBits(v uint64, nbBits uint8) {
	w.bw.TryWriteBits(v, nbBits)
}

func (w *BitWriter) WriteByte(b byte) {
	w.bw.TryWriteByte(b)
}

func (w *BitWriter) Err() error {
	return w.bw.TryError
}

// Finish aligns the output to a full byte (padding low-order bits of the
// final byte with 0) and returns the accumulated bytes.
func (w *BitWriter) Finish() ([]byte, error) {
	if _, err := w.bw.Align(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}
