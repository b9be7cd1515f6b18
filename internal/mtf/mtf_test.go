package mtf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		x        []uint32
		alphabet int
	}{
		{[]uint32{0}, 1},
		{[]uint32{3, 3, 3, 3}, 5},
		{[]uint32{0, 1, 2, 3, 4}, 5},
		{[]uint32{4, 3, 2, 1, 0}, 5},
		{[]uint32{1, 2, 1, 2, 1, 2}, 4},
	}
	for _, c := range cases {
		ranks := Encode(c.x, c.alphabet)
		require.Len(t, ranks, len(c.x))
		got := Decode(ranks, c.alphabet)
		require.Equal(t, c.x, got)
	}
}

func TestEncodeRepeatedSymbolStaysAtRankZero(t *testing.T) {
	ranks := Encode([]uint32{7, 7, 7, 7}, 10)
	require.Equal(t, []uint32{7, 0, 0, 0}, ranks)
}

func TestEncodeDecodeRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		alphabet := 1 + rng.Intn(30)
		n := rng.Intn(300)
		x := make([]uint32, n)
		for i := range x {
			x[i] = uint32(rng.Intn(alphabet))
		}
		ranks := Encode(x, alphabet)
		got := Decode(ranks, alphabet)
		require.Equal(t, x, got)
	}
}
