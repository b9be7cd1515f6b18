package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, text string) {
	t.Helper()
	raw := Tokenize(text)
	require.Equal(t, text, strings.Join(raw, ""), "raw token concatenation must reproduce the input")

	norm := Normalize(raw)
	back, err := Render(norm)
	require.NoError(t, err)
	require.Equal(t, text, back)
}

func TestTokenizeConcatenationInvariant(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Hello HELLO hello\n",
		"word word word word",
		"a-b's don't stop",
		"123 456.789",
		"\x1F\x1F\x1F",
		"mix3d ALLCAPS TitleCase\tTabbed\n\nmulti\n\nnewline   triple-space",
		"emoji 🎉 and café naïve",
	}
	for _, c := range cases {
		roundTrip(t, c)
	}
}

func TestTokenizeControlByteAlwaysIsolated(t *testing.T) {
	toks := Tokenize("\x1F\x1F\x1F")
	require.Equal(t, []string{"\x1F", "\x1F", "\x1F"}, toks)
}

func TestTokenizeWhitespaceClassesNeverMix(t *testing.T) {
	toks := Tokenize("a \t\nb")
	require.Equal(t, []string{"a", " ", "\t", "\n", "b"}, toks)
}

func TestNormalizeCaseCollapse(t *testing.T) {
	norm := Normalize(Tokenize("Hello"))
	require.Equal(t, []string{"\x1Fc", "hello"}, norm)

	norm = Normalize(Tokenize("HELLO"))
	require.Equal(t, []string{"\x1Fu", "hello"}, norm)

	norm = Normalize(Tokenize("hello"))
	require.Equal(t, []string{"hello"}, norm)
}

func TestNormalizeWhitespaceRun(t *testing.T) {
	norm := Normalize(Tokenize("   "))
	require.Equal(t, []string{"\x1Fs", "3"}, norm)
}

func TestNormalizeNumeric(t *testing.T) {
	norm := Normalize(Tokenize("12345"))
	require.Equal(t, []string{"\x1Fd", "12345"}, norm)
}

func TestNormalizeEscape(t *testing.T) {
	norm := Normalize(Tokenize("\x1F"))
	require.Equal(t, []string{"\x1Fe", "\x1F"}, norm)
}

func TestRenderDanglingMarkerIsError(t *testing.T) {
	_, err := Render([]string{"\x1Fc"})
	require.ErrorIs(t, err, ErrDanglingMarker)
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	require.Equal(t, "", out)
}
