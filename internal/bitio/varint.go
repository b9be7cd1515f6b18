package bitio

import "fmt"

// MaxVarintBytes bounds how many bytes a well-formed varint may occupy (a
// full 64-bit value needs all ten); a varint whose tenth byte still has its
// continuation bit set is a corrupt stream.
const MaxVarintBytes = 10

// PutUvarint appends the unsigned LEB128 encoding of v to buf and returns
// the extended slice: 7 data bits per byte, continuation bit in 0x80,
// little-endian groups.
func PutUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// Uvarint decodes an unsigned LEB128 varint from the front of buf, returning
// the value and the number of bytes consumed. An error is returned if the
// buffer is exhausted mid-sequence or if MaxVarintBytes continuation bytes
// are seen without a terminating byte.
func Uvarint(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < MaxVarintBytes; i++ {
		if i >= len(buf) {
			return 0, 0, fmt.Errorf("varint: truncated buffer")
		}
		b := buf[i]
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("varint: too many continuation bytes")
}
