package bitio

import "encoding/binary"

// PutU32LE appends the 4-byte little-endian encoding of v to buf.
func PutU32LE(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// U32LE decodes a 4-byte little-endian uint32 from the front of buf.
func U32LE(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, errTruncated
	}
	return binary.LittleEndian.Uint32(buf), nil
}

var errTruncated = errTruncatedErr{}

type errTruncatedErr struct{}

func (errTruncatedErr) Error() string { return "u32: truncated buffer" }
