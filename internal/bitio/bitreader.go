package bitio

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitReader reads bits MSB-first, returning 0 once the underlying buffer is
// exhausted instead of propagating an error. This tail behaviour is
// required by the adaptive arithmetic decoder, which always reads a fixed
// number of bits past the logical end of the encoded stream (the initial
// 32-bit fill, and renormalization at the very end of the stream).
type BitReader struct {
	br  *bitio.Reader
	eof bool
}

func NewBitReader(data []byte) *BitReader {
	return &BitReader{br: bitio.NewReader(bytes.NewReader(data))}
}

// ReadBit returns the next bit, or 0 if the stream is exhausted.
func (r *BitReader) ReadBit() uint64 {
	if r.eof {
		return 0
	}
	b, err := r.br.ReadBits(1)
	if err != nil {
		r.eof = true
		return 0
	}
	return b
}

// ReadBits returns the next nbBits bits (MSB-first), zero-padded once the
// stream is exhausted.
func (r *BitReader) ReadBits(nbBits uint8) uint64 {
	var v uint64
	for i := uint8(0); i < nbBits; i++ {
		v = (v << 1) | r.ReadBit()
	}
	return v
}

// Exhausted reports whether the stream has already read past its real
// data, synthesizing zero bits. The arithmetic decoder's tail always does
// this briefly by construction, so it is not by itself a sign of a
// truncated frame; see DESIGN.md for why callers don't use it that way.
func (r *BitReader) Exhausted() bool {
	return r.eof
}
