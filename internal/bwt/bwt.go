// Package bwt implements the cyclic, sentinel-augmented Burrows-Wheeler
// Transform over an integer (token id) alphabet, forward and inverse.
//
// The inverse transform walks forward from the primary index through a
// next[] successor array (the inverse of the LF-mapping), built from
// per-symbol starting offsets into the sorted column, generalized from a fixed 256-symbol byte
// alphabet to an arbitrary uint32 id alphabet. The forward transform
// sorts the cyclic rotations of x and reads off the preceding symbol of
// each sorted rotation, using an O(n log^2 n) prefix-doubling suffix
// array construction over the rotations rather than a direct O(n^2 log n)
// rotation comparator, since a comparator re-scanning whole rotations on
// every comparison does not scale past a few thousand symbols.
package bwt

import "sort"

// Forward computes the cyclic BWT of x (which must end in the sentinel id
// 0) and returns L, the symbol-preceding permutation, and primaryIndex, the
// row whose rotation starts at position 0.
func Forward(x []uint32) (l []uint32, primaryIndex int) {
	n := len(x)
	if n == 0 {
		return nil, 0
	}
	if n == 1 {
		return []uint32{x[0]}, 0
	}

	order := cyclicSuffixArray(x)
	l = make([]uint32, n)
	for i, idx := range order {
		if idx == 0 {
			primaryIndex = i
		}
		prev := idx - 1
		if prev < 0 {
			prev += n
		}
		l[i] = x[prev]
	}
	return l, primaryIndex
}

// Inverse recovers the id stream x of length n = len(l) from (l,
// primaryIndex, alphabetSize) via LF-mapping.
func Inverse(l []uint32, primaryIndex int, alphabetSize int) []uint32 {
	n := len(l)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []uint32{l[0]}
	}

	count := make([]int, alphabetSize)
	for _, v := range l {
		count[v]++
	}
	starts := make([]int, alphabetSize)
	sum := 0
	for i := 0; i < alphabetSize; i++ {
		starts[i] = sum
		sum += count[i]
	}

	occ := make([]int, alphabetSize)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		v := l[i]
		next[starts[v]+occ[v]] = i
		occ[v]++
	}

	x := make([]uint32, n)
	row := primaryIndex
	for k := 0; k < n; k++ {
		row = next[row]
		x[k] = l[row]
	}
	return x
}

// cyclicSuffixArray returns the permutation of [0,n) that sorts the n
// cyclic rotations of x in ascending lexicographic order, via
// prefix-doubling over ranks. Ids are compared as unsigned (they already
// are, being uint32) -- a signed comparison here would silently corrupt the
// ordering once the dictionary is large enough to need the high bit.
func cyclicSuffixArray(x []uint32) []int {
	n := len(x)
	order := make([]int, n)
	rank := make([]int, n)
	for i := range order {
		order[i] = i
		rank[i] = int(x[i])
	}

	next := make([]int, n)
	for k := 1; ; k *= 2 {
		keyOf := func(i int) (int, int) {
			j := i + k
			if j >= n {
				j -= n
			}
			return rank[i], rank[j]
		}
		sort.Slice(order, func(a, b int) bool {
			ra1, ra2 := keyOf(order[a])
			rb1, rb2 := keyOf(order[b])
			if ra1 != rb1 {
				return ra1 < rb1
			}
			return ra2 < rb2
		})

		next[order[0]] = 0
		maxRank := 0
		for i := 1; i < n; i++ {
			prev, cur := order[i-1], order[i]
			pa, pb := keyOf(prev)
			ca, cb := keyOf(cur)
			if pa == ca && pb == cb {
				next[cur] = next[prev]
			} else {
				next[cur] = next[prev] + 1
			}
			if next[cur] > maxRank {
				maxRank = next[cur]
			}
		}
		copy(rank, next)
		if maxRank == n-1 {
			break
		}
	}
	return order
}
