// Package dict builds the WBWT dictionary: the sorted set of distinct
// normalized tokens, and the id stream mapping the token sequence through
// it. Id assignment is a pure function of the set of distinct tokens, so
// this builds the set first and assigns ids by the sorted position, rather
// than tracking first-seen order and remapping afterwards -- same end
// result, simpler.
package dict

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Build returns the lexicographically sorted dictionary of distinct tokens
// and the id stream of the same length as tokens, each entry being 1 + the
// token's position in dict (id 0 stays reserved for the BWT sentinel,
// which the caller appends).
func Build(tokens []string) (sortedDict []string, ids []uint32) {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	sortedDict = maps.Keys(seen)
	slices.Sort(sortedDict)

	idOf := make(map[string]uint32, len(sortedDict))
	for i, tok := range sortedDict {
		idOf[tok] = uint32(i + 1)
	}

	ids = make([]uint32, len(tokens))
	for i, tok := range tokens {
		ids[i] = idOf[tok]
	}
	return sortedDict, ids
}

// Tokens maps an id stream back to tokens using dict (ids are 1-based
// indices into dict; an id of 0, the sentinel, must not appear).
func Tokens(dict []string, ids []uint32) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = dict[id-1]
	}
	return out
}
