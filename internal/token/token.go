// Package token implements the WBWT tokenizer, normalizer and renderer: a
// reversible text <-> token-stream transform that collapses repetitive
// word variants (case, numbers, whitespace runs) onto shared dictionary
// entries ahead of the BWT stage.
package token

const ctrl = '\x1F'

// Tokenize splits text into raw tokens: a greedy scan that, at each
// position, emits one of a word run ([A-Za-z0-9]+ optionally
// bridged by a single ' or - before more alnum), a maximal run of a single
// whitespace class (space, newline or tab -- never mixed), the control byte
// 0x1F in isolation (so it is always available as an unambiguous marker
// prefix once normalization runs over the stream), or a maximal run of
// anything else. Concatenating the returned tokens always reproduces text.
func Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	i := 0
	n := len(runes)
	for i < n {
		c := runes[i]
		switch {
		case isAlnum(c):
			j := i
			for j < n && isAlnum(runes[j]) {
				j++
			}
			for j < n && isWordBridge(runes[j]) && j+1 < n && isAlnum(runes[j+1]) {
				j++
				for j < n && isAlnum(runes[j]) {
					j++
				}
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		case c == ctrl:
			tokens = append(tokens, string(runes[i:i+1]))
			i++
		case isWhitespaceClass(c):
			j := i
			for j < n && runes[j] == c {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		default:
			j := i
			for j < n && !isAlnum(runes[j]) && !isWhitespaceClass(runes[j]) && runes[j] != ctrl {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		}
	}
	return tokens
}

func isAlnum(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func isWordBridge(c rune) bool {
	return c == '\'' || c == '-'
}

func isWhitespaceClass(c rune) bool {
	return c == ' ' || c == '\n' || c == '\t'
}
