// Package mtf implements move-to-front coding over the BWT output's id
// alphabet: each symbol is replaced by its current rank in a
// recency-ordered list of the alphabet, and the list is then updated so
// that symbol moves to the front. Recently-seen symbols cluster near rank
// zero, which is what makes the following run-length stage effective.
package mtf

// Encode returns the move-to-front rank stream for l, an alphabet of size
// alphabetSize initialized in ascending order [0, 1, ..., alphabetSize-1].
func Encode(l []uint32, alphabetSize int) []uint32 {
	alphabet := make([]uint32, alphabetSize)
	for i := range alphabet {
		alphabet[i] = uint32(i)
	}

	out := make([]uint32, len(l))
	for i, sym := range l {
		rank := indexOf(alphabet, sym)
		out[i] = uint32(rank)
		moveToFront(alphabet, rank)
	}
	return out
}

// Decode reverses Encode: given the rank stream, recovers the original
// symbol stream using the same alphabet initialization and update rule.
func Decode(ranks []uint32, alphabetSize int) []uint32 {
	alphabet := make([]uint32, alphabetSize)
	for i := range alphabet {
		alphabet[i] = uint32(i)
	}

	out := make([]uint32, len(ranks))
	for i, rank := range ranks {
		sym := alphabet[rank]
		out[i] = sym
		moveToFront(alphabet, int(rank))
	}
	return out
}

func indexOf(alphabet []uint32, sym uint32) int {
	for i, v := range alphabet {
		if v == sym {
			return i
		}
	}
	panic("mtf: symbol not in alphabet")
}

// moveToFront shifts alphabet[0:rank] right by one and places the symbol
// that was at rank into position 0, in place.
func moveToFront(alphabet []uint32, rank int) {
	sym := alphabet[rank]
	copy(alphabet[1:rank+1], alphabet[0:rank])
	alphabet[0] = sym
}
