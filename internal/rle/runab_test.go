package rle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]uint32{
		{},
		{0},
		{0, 0, 0},
		{1, 2, 3},
		{0, 0, 1, 6, 3, 0, 0, 0, 2, 1, 0, 4},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for _, mtf := range cases {
		symbols := Encode(mtf)
		got := Decode(symbols)
		require.Equal(t, mtf, got)
	}
}

func TestEncodeSingleZeroIsOneDigit(t *testing.T) {
	require.Equal(t, []uint32{0}, Encode([]uint32{0}))
}

func TestEncodeKnownRunLengths(t *testing.T) {
	require.Len(t, Encode(make([]uint32, 1)), 1)
	require.Len(t, Encode(make([]uint32, 2)), 1)
	require.Len(t, Encode(make([]uint32, 3)), 2)
	require.Len(t, Encode(make([]uint32, 4)), 2)
}

func TestDecodeFlushesTrailingZeroRun(t *testing.T) {
	symbols := Encode([]uint32{5, 0, 0, 0, 0, 0})
	got := Decode(symbols)
	require.Equal(t, []uint32{5, 0, 0, 0, 0, 0}, got)
}

func TestEncodeDecodeRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(200)
		mtf := make([]uint32, n)
		for i := range mtf {
			if rng.Intn(3) == 0 {
				mtf[i] = uint32(1 + rng.Intn(30))
			}
		}
		symbols := Encode(mtf)
		got := Decode(symbols)
		require.Equal(t, mtf, got)
	}
}
