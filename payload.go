// Package wbwt implements the Word-Based Burrows-Wheeler Transform codec:
// tokenize -> normalize -> sorted dictionary ids -> sentinel -> cyclic BWT
// -> move-to-front -> RUNA/RUNB -> adaptive arithmetic coding, framed in a
// versioned binary container. The codec is a pure, single-shot, in-memory
// transform with no shared state across calls.
package wbwt

import (
	"wbwt/internal/bwt"
	"wbwt/internal/dict"
	"wbwt/internal/mtf"
	"wbwt/internal/token"
)

// Payload is the decoded, in-memory form of a WBWT frame: the sorted
// dictionary, the BWT primary index, and the MTF stream (before RUNA/RUNB
// coding, which Serialize applies). TokenCount (n, the BWT length) is implicit in len(MTF).
type Payload struct {
	Dictionary   []string
	PrimaryIndex int
	MTF          []uint32
}

// TokenCount returns n, the BWT length (the id stream length including the
// trailing sentinel, or 0 for the canonical empty form).
func (p Payload) TokenCount() int {
	return len(p.MTF)
}

// AlphabetSize returns A = |dictionary| + 1, the BWT/MTF id alphabet size
// (the dictionary ids plus the reserved sentinel 0).
func (p Payload) AlphabetSize() int {
	return len(p.Dictionary) + 1
}

// Compress runs the full forward pipeline over text and returns the
// resulting Payload.
func Compress(text string) Payload {
	raw := token.Tokenize(text)
	norm := token.Normalize(raw)
	dictionary, ids := dict.Build(norm)

	// Canonical empty form: an empty normalized stream skips the sentinel
	// entirely rather than producing a length-1 BWT of just the sentinel,
	// so that Compress("") yields an empty MTF array.
	var x []uint32
	if len(ids) > 0 {
		x = append(ids, 0)
	}

	l, primaryIndex := bwt.Forward(x)
	a := len(dictionary) + 1
	mtfOut := mtf.Encode(l, a)

	return Payload{Dictionary: dictionary, PrimaryIndex: primaryIndex, MTF: mtfOut}
}

// Decompress runs the full inverse pipeline over a Payload and returns the
// reconstructed text.
func Decompress(p Payload) (string, error) {
	if len(p.Dictionary) == 0 || len(p.MTF) == 0 {
		return "", nil
	}

	a := p.AlphabetSize()
	l := mtf.Decode(p.MTF, a)
	x := bwt.Inverse(l, p.PrimaryIndex, a)
	ids := x[:len(x)-1]
	norm := dict.Tokens(p.Dictionary, ids)
	text, err := token.Render(norm)
	if err != nil {
		return "", ErrCorruptFrame
	}
	return text, nil
}
