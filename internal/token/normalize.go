package token

import (
	"strconv"
	"strings"
)

// Normalize maps each raw token to 0-2 normalized tokens: a two-character
// control marker (0x1F followed by a class byte) optionally precedes a
// single payload token. Rendering the result (see Render) reproduces the
// raw token stream exactly.
func Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, normalizeOne(tok)...)
	}
	return out
}

func normalizeOne(tok string) []string {
	r := []rune(tok)
	if len(r) > 0 && r[0] == ctrl {
		return []string{marker('e'), tok}
	}
	if class, ok := whitespaceClass(tok); ok {
		return []string{marker(class), strconv.FormatInt(int64(len(r)), 36)}
	}
	if isNumeric(r) {
		return []string{marker('d'), tok}
	}
	if isAllUpper(r) {
		return []string{marker('u'), strings.ToLower(tok)}
	}
	if isTitleCase(r) {
		return []string{marker('c'), strings.ToLower(tok)}
	}
	return []string{tok}
}

func marker(class byte) string {
	return string([]byte{ctrl, class})
}

func whitespaceClass(tok string) (byte, bool) {
	r := []rune(tok)
	if len(r) == 0 || !isWhitespaceClass(r[0]) {
		return 0, false
	}
	for _, c := range r {
		if c != r[0] {
			return 0, false
		}
	}
	switch r[0] {
	case ' ':
		return 's', true
	case '\n':
		return 'n', true
	case '\t':
		return 't', true
	}
	return 0, false
}

func isNumeric(r []rune) bool {
	if len(r) == 0 {
		return false
	}
	for _, c := range r {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isAllUpper(r []rune) bool {
	hasLetter := false
	for _, c := range r {
		if c >= 'a' && c <= 'z' {
			return false
		}
		if c >= 'A' && c <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func isTitleCase(r []rune) bool {
	if len(r) == 0 || r[0] < 'A' || r[0] > 'Z' {
		return false
	}
	for _, c := range r[1:] {
		if c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}
