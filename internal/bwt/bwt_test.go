package bwt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func alphabetSize(x []uint32) int {
	max := uint32(0)
	for _, v := range x {
		if v > max {
			max = v
		}
	}
	return int(max) + 1
}

func TestForwardInverseRoundTrip(t *testing.T) {
	cases := [][]uint32{
		{0},
		{5, 0},
		{3, 1, 4, 1, 5, 9, 2, 6, 0},
		{1, 1, 1, 1, 1, 0},
		{7, 6, 5, 4, 3, 2, 1, 0},
	}
	for _, x := range cases {
		l, primary := Forward(x)
		require.Len(t, l, len(x))
		got := Inverse(l, primary, alphabetSize(x))
		require.Equal(t, x, got)
	}
}

func TestForwardInverseEmpty(t *testing.T) {
	l, primary := Forward(nil)
	require.Empty(t, l)
	require.Equal(t, 0, primary)
	require.Empty(t, Inverse(nil, 0, 1))
}

func TestForwardInverseSingleton(t *testing.T) {
	l, primary := Forward([]uint32{0})
	require.Equal(t, []uint32{0}, l)
	require.Equal(t, 0, primary)
	require.Equal(t, []uint32{0}, Inverse(l, primary, 1))
}

func TestForwardInverseRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(200)
		alphabet := uint32(1 + rng.Intn(20))
		x := make([]uint32, n)
		for i := 0; i < n-1; i++ {
			x[i] = 1 + uint32(rng.Intn(int(alphabet)))
		}
		x[n-1] = 0

		l, primary := Forward(x)
		got := Inverse(l, primary, int(alphabet+1))
		require.Equal(t, x, got)
	}
}

func TestForwardGroupsRepeatedSymbols(t *testing.T) {
	x := []uint32{1, 2, 1, 2, 1, 2, 0}
	l, primary := Forward(x)
	require.Equal(t, []uint32{2, 2, 2, 0, 1, 1, 1}, l)
	require.Equal(t, 3, primary)
	got := Inverse(l, primary, 3)
	require.Equal(t, x, got)
}
