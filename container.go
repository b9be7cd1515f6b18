package wbwt

import (
	"wbwt/internal/arith"
	"wbwt/internal/bitio"
	"wbwt/internal/fenwick"
	"wbwt/internal/rle"
)

const (
	magic = 0x57425754 // "TWBW" read as little-endian u32.

	version2 = 2
	version3 = 3
	version4 = 4
)

// Serialize encodes p as a version-4 frame. Encoders emit only v4; the
// v2/v3 paths below are decode-only, kept for payloads already living in
// the wild from earlier versions of this container format.
func Serialize(p Payload) []byte {
	dictCount := len(p.Dictionary)
	tokenCount := p.TokenCount()
	symbols := rle.Encode(p.MTF)

	w := bitio.NewByteWriter(32 + dictCount*8)
	w.WriteU32LE(magic)
	w.WriteU32LE(version4)
	w.WriteUvarint(uint64(dictCount))
	w.WriteUvarint(uint64(tokenCount))
	w.WriteUvarint(uint64(p.PrimaryIndex))
	w.WriteUvarint(uint64(len(symbols)))
	appendFrontCodedDict(w, p.Dictionary)

	a := p.AlphabetSize()
	modelSize := a + 2
	model := fenwick.New(modelSize)
	bw := bitio.NewBitWriter()
	enc := arith.NewEncoder(bw)
	for _, s := range symbols {
		enc.EncodeSymbol(model, int(s)+1)
	}
	coded, err := enc.Finish()
	if err != nil {
		// bitio.BitWriter only errors on an underlying io.Writer failure;
		// ours is a bytes.Buffer, which never fails a write.
		panic("wbwt: arithmetic encoder flush failed: " + err.Error())
	}
	w.Write(coded)
	return w.Bytes()
}

func appendFrontCodedDict(w *bitio.ByteWriter, dict []string) {
	var prev []byte
	for _, word := range dict {
		wb := []byte(word)
		prefixLen := commonPrefixLen(prev, wb)
		suffix := wb[prefixLen:]
		w.WriteUvarint(uint64(prefixLen))
		w.WriteUvarint(uint64(len(suffix)))
		w.Write(suffix)
		prev = wb
	}
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Deserialize decodes a v2, v3, or v4 frame into a Payload.
func Deserialize(data []byte) (Payload, error) {
	c := &cursor{buf: data}
	gotMagic, err := c.u32()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	if gotMagic != magic {
		return Payload{}, ErrInvalidHeader
	}
	version, err := c.u32()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}

	dictCount64, err := c.varint()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	tokenCount64, err := c.varint()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	primaryIndex64, err := c.varint()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	dictCount := int(dictCount64)
	tokenCount := int(tokenCount64)
	primaryIndex := int(primaryIndex64)

	switch version {
	case version4:
		return deserializeV4(c, dictCount, tokenCount, primaryIndex)
	case version3:
		return deserializeV3(c, dictCount, tokenCount, primaryIndex)
	case version2:
		return deserializeV2(c, dictCount, tokenCount, primaryIndex)
	default:
		return Payload{}, ErrInvalidHeader
	}
}

func deserializeV4(c *cursor, dictCount, tokenCount, primaryIndex int) (Payload, error) {
	symbolCount64, err := c.varint()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	symbolCount := int(symbolCount64)

	dictionary, err := readFrontCodedDict(c, dictCount)
	if err != nil {
		return Payload{}, err
	}

	a := dictCount + 1
	modelSize := a + 2
	model := fenwick.New(modelSize)
	br := bitio.NewBitReader(c.rest())
	dec := arith.NewDecoder(br)

	symbols := make([]uint32, symbolCount)
	for i := 0; i < symbolCount; i++ {
		idx := dec.DecodeSymbol(model)
		if idx < 1 || idx > a+1 {
			return Payload{}, ErrCorruptFrame
		}
		symbols[i] = uint32(idx - 1)
	}

	mtfOut := rle.Decode(symbols)
	if len(mtfOut) != tokenCount {
		return Payload{}, ErrCorruptFrame
	}
	return Payload{Dictionary: dictionary, PrimaryIndex: primaryIndex, MTF: mtfOut}, nil
}

func readFrontCodedDict(c *cursor, dictCount int) ([]string, error) {
	dictionary := make([]string, dictCount)
	var prev []byte
	for i := 0; i < dictCount; i++ {
		prefixLen64, err := c.varint()
		if err != nil {
			return nil, ErrCorruptFrame
		}
		suffixLen64, err := c.varint()
		if err != nil {
			return nil, ErrCorruptFrame
		}
		prefixLen, suffixLen := int(prefixLen64), int(suffixLen64)
		if prefixLen > len(prev) {
			return nil, ErrCorruptFrame
		}
		suffix, err := c.bytes(suffixLen)
		if err != nil {
			return nil, ErrCorruptFrame
		}
		word := make([]byte, 0, prefixLen+suffixLen)
		word = append(word, prev[:prefixLen]...)
		word = append(word, suffix...)
		dictionary[i] = string(word)
		prev = word
	}
	return dictionary, nil
}

// deserializeV3 decodes the legacy v3 layout: plain (len, bytes) dictionary
// entries, a packedLength prefix, an arithmetic-coded byte stream decoded
// to exactly packedLength bytes, then the legacy varint zero-run+literal
// MTF decoder over that byte buffer.
//
// A truncated v3 frame is not detected at the arithmetic-stream level:
// the coder's 32-bit lookahead fill and tail renormalization always read a
// few bits past the last real byte, on every valid frame and not just
// truncated ones, so BitReader.Exhausted() can't distinguish the two
// (see DESIGN.md). What is checked is the layer above: legacyDecodeMTF
// fails closed if the packed buffer runs out before tokenCount values have
// been produced.
func deserializeV3(c *cursor, dictCount, tokenCount, primaryIndex int) (Payload, error) {
	dictionary, err := readPlainDict(c, dictCount)
	if err != nil {
		return Payload{}, err
	}
	packedLength64, err := c.varint()
	if err != nil {
		return Payload{}, ErrCorruptFrame
	}
	packedLength := int(packedLength64)

	const byteAlphabet = 256
	modelSize := byteAlphabet + 2
	model := fenwick.New(modelSize)
	br := bitio.NewBitReader(c.rest())
	dec := arith.NewDecoder(br)

	packed := make([]byte, packedLength)
	for i := 0; i < packedLength; i++ {
		idx := dec.DecodeSymbol(model)
		if idx < 1 || idx > byteAlphabet {
			return Payload{}, ErrCorruptFrame
		}
		packed[i] = byte(idx - 1)
	}

	mtfOut, err := legacyDecodeMTF(packed, tokenCount)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Dictionary: dictionary, PrimaryIndex: primaryIndex, MTF: mtfOut}, nil
}

// deserializeV2 decodes the legacy v2 layout: identical dictionary framing
// to v3, but the legacy varint RLE bytes follow directly with no
// arithmetic coding layer and no packedLength prefix.
func deserializeV2(c *cursor, dictCount, tokenCount, primaryIndex int) (Payload, error) {
	dictionary, err := readPlainDict(c, dictCount)
	if err != nil {
		return Payload{}, err
	}
	mtfOut, err := legacyDecodeMTF(c.rest(), tokenCount)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Dictionary: dictionary, PrimaryIndex: primaryIndex, MTF: mtfOut}, nil
}

func readPlainDict(c *cursor, dictCount int) ([]string, error) {
	dictionary := make([]string, dictCount)
	for i := 0; i < dictCount; i++ {
		length64, err := c.varint()
		if err != nil {
			return nil, ErrCorruptFrame
		}
		raw, err := c.bytes(int(length64))
		if err != nil {
			return nil, ErrCorruptFrame
		}
		dictionary[i] = string(raw)
	}
	return dictionary, nil
}

// legacyDecodeMTF decodes the v2/v3 varint RLE encoding of an MTF stream:
// each varint's low bit distinguishes a zero run ((r<<1)|0) from a literal
// nonzero value ((v<<1)|1).
func legacyDecodeMTF(buf []byte, tokenCount int) ([]uint32, error) {
	out := make([]uint32, 0, tokenCount)
	pos := 0
	for len(out) < tokenCount {
		if pos >= len(buf) {
			return nil, ErrCorruptFrame
		}
		val, n, err := bitio.Uvarint(buf[pos:])
		if err != nil {
			return nil, ErrCorruptFrame
		}
		pos += n
		if val&1 == 0 {
			r := val >> 1
			for i := uint64(0); i < r && len(out) < tokenCount; i++ {
				out = append(out, 0)
			}
		} else {
			out = append(out, uint32(val>>1))
		}
	}
	if len(out) != tokenCount {
		return nil, ErrCorruptFrame
	}
	return out, nil
}

// cursor is a forward-only reader over a frame buffer shared by the
// header and all version-specific body decoders.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) u32() (uint32, error) {
	if len(c.buf)-c.pos < 4 {
		return 0, ErrCorruptFrame
	}
	v, err := bitio.U32LE(c.buf[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return v, nil
}

func (c *cursor) varint() (uint64, error) {
	v, n, err := bitio.Uvarint(c.buf[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || len(c.buf)-c.pos < n {
		return nil, ErrCorruptFrame
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}
