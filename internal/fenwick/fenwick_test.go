package fenwick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformPriorSums(t *testing.T) {
	m := New(10)
	require.Equal(t, int64(10), m.Total())
	for i := 1; i <= 10; i++ {
		require.Equal(t, int64(i), m.Sum(i))
	}
}

func TestAddUpdatesSums(t *testing.T) {
	m := New(5)
	m.Add(3, 10)
	require.Equal(t, int64(1), m.Sum(1))
	require.Equal(t, int64(2), m.Sum(2))
	require.Equal(t, int64(13), m.Sum(3))
	require.Equal(t, int64(14), m.Sum(4))
	require.Equal(t, int64(15), m.Sum(5))
	require.Equal(t, int64(15), m.Total())
}

func TestFindByCumulativeMatchesSum(t *testing.T) {
	m := New(8)
	m.Add(2, 5)
	m.Add(6, 3)
	for v := int64(0); v < m.Total(); v++ {
		i := m.FindByCumulative(v)
		require.Greater(t, m.Sum(i), v)
		if i > 1 {
			require.LessOrEqual(t, m.Sum(i-1), v)
		}
	}
}

func TestRescaleKeepsNonzeroFrequencies(t *testing.T) {
	m := New(4)
	for i := 0; i < 20; i++ {
		m.Add(1, 1)
	}
	m.Rescale()
	for i := 1; i <= 4; i++ {
		require.GreaterOrEqual(t, m.Freq(i), int64(1))
	}
}

func TestAddTriggersAutoRescaleAtMaxTotal(t *testing.T) {
	m := New(2)
	for m.Total() < MaxTotal-2 {
		m.Add(1, 1)
	}
	before := m.Total()
	m.Add(1, 4) // pushes total >= MaxTotal, should auto-rescale down
	require.Less(t, m.Total(), before+4)
}
