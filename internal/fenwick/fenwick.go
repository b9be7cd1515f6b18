// Package fenwick implements the cumulative-frequency model the adaptive
// arithmetic coder is driven by: a binary-indexed tree over a fixed-size
// symbol alphabet supporting prefix sums, point updates, periodic rescaling
// and cumulative-value search.
package fenwick

// MaxTotal is the point at which the model must be rescaled: it bounds
// range·total so the arithmetic coder's 64-bit intermediate products never
// lose precision against the 32-bit coding range.
const MaxTotal = 1 << 15

// Model tracks per-symbol frequencies freq[1..size] and their prefix sums
// via a 1-indexed Fenwick tree.
type Model struct {
	size  int
	tree  []int64
	freq  []int64
	total int64
}

// New returns a Model over size symbols (indices 1..size), uniformly
// initialized (every symbol has frequency 1).
func New(size int) *Model {
	m := &Model{size: size}
	m.tree = make([]int64, size+1)
	m.freq = make([]int64, size+1)
	m.Reset(1)
	return m
}

// Reset sets every freq[i] = v and rebuilds the tree and total from scratch.
func (m *Model) Reset(v int64) {
	for i := 1; i <= m.size; i++ {
		m.freq[i] = v
	}
	m.rebuild()
}

func (m *Model) rebuild() {
	for i := range m.tree {
		m.tree[i] = 0
	}
	m.total = 0
	for i := 1; i <= m.size; i++ {
		m.total += m.freq[i]
		m.addToTree(i, m.freq[i])
	}
}

func (m *Model) addToTree(i int, delta int64) {
	for ; i <= m.size; i += i & (-i) {
		m.tree[i] += delta
	}
}

// Sum returns the prefix sum freq[1]+...+freq[i].
func (m *Model) Sum(i int) int64 {
	var s int64
	for ; i > 0; i -= i & (-i) {
		s += m.tree[i]
	}
	return s
}

// Total returns the sum of all frequencies.
func (m *Model) Total() int64 {
	return m.total
}

// Freq returns the current frequency of symbol index i.
func (m *Model) Freq(i int) int64 {
	return m.freq[i]
}

// Add updates freq[i] by delta, updates the tree and total, and rescales if
// the total has grown to MaxTotal or beyond.
func (m *Model) Add(i int, delta int64) {
	m.freq[i] += delta
	m.total += delta
	m.addToTree(i, delta)
	if m.total >= MaxTotal {
		m.Rescale()
	}
}

// Rescale halves every frequency (rounding up), preserving the invariant
// that every symbol keeps a nonzero frequency.
func (m *Model) Rescale() {
	for i := 1; i <= m.size; i++ {
		f := (m.freq[i] + 1) / 2
		if f < 1 {
			f = 1
		}
		m.freq[i] = f
	}
	m.rebuild()
}

// FindByCumulative returns the smallest i such that Sum(i) > v, found by a
// binary lift over the Fenwick tree in O(log size).
func (m *Model) FindByCumulative(v int64) int {
	pos := 0
	remaining := v
	highBit := 1
	for highBit<<1 <= m.size {
		highBit <<= 1
	}
	for bit := highBit; bit > 0; bit >>= 1 {
		next := pos + bit
		if next <= m.size && m.tree[next] <= remaining {
			pos = next
			remaining -= m.tree[next]
		}
	}
	return pos + 1
}
