package wbwt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, text string) Payload {
	t.Helper()
	p := Compress(text)
	got, err := Decompress(p)
	require.NoError(t, err)
	require.Equal(t, text, got)
	return p
}

func TestRoundTripProperty1(t *testing.T) {
	cases := []string{
		"",
		"a",
		"   ",
		"\n\n\n",
		"\t",
		"\x1F",
		"\x1F\x1F\x1F",
		"Hello HELLO hello\n",
		"word word word word",
		"emoji 🎉 and café naïve résumé",
		strings.Repeat("the quick brown fox jumps over the lazy dog. ", 400),
	}
	for _, c := range cases {
		roundTrip(t, c)
	}
}

func TestRoundTripSerializeDeserializeProperty2(t *testing.T) {
	texts := []string{"", "a", "Hello HELLO hello\n", "word word word word"}
	for _, text := range texts {
		p := Compress(text)
		frame := Serialize(p)
		got, err := Deserialize(frame)
		require.NoError(t, err)
		require.Equal(t, p.Dictionary, got.Dictionary)
		require.Equal(t, p.PrimaryIndex, got.PrimaryIndex)
		require.Equal(t, p.MTF, got.MTF)

		text2, err := Decompress(got)
		require.NoError(t, err)
		require.Equal(t, text, text2)
	}
}

func TestScenarioEmptyString(t *testing.T) {
	p := Compress("")
	require.Empty(t, p.Dictionary)
	require.Empty(t, p.MTF)

	frame := Serialize(p)
	// magic(4) + version(4) + dictCount(1) + tokenCount(1) + primaryIndex(1)
	// + symbolCount(1) varint zeros, plus the arithmetic coder's mandatory
	// terminal byte (Finish always emits at least one disambiguating bit,
	// even over zero symbols): 12 structural bytes plus that tail (see
	// DESIGN.md for the full accounting).
	require.Equal(t, []byte{0x54, 0x57, 0x42, 0x57}, frame[:4])
	require.Equal(t, []byte{4, 0, 0, 0}, frame[4:8])
	require.Equal(t, []byte{0, 0, 0, 0}, frame[8:12])

	text, err := Decompress(Payload{})
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestScenarioSingleCharacter(t *testing.T) {
	p := Compress("a")
	require.Equal(t, []string{"a"}, p.Dictionary)
	roundTrip(t, "a")
}

func TestScenarioCaseCollapse(t *testing.T) {
	p := Compress("Hello HELLO hello\n")
	require.Contains(t, p.Dictionary, "\x1Fc")
	require.Contains(t, p.Dictionary, "\x1Fn")
	require.Contains(t, p.Dictionary, "\x1Fu")
	require.Contains(t, p.Dictionary, "1")
	require.Contains(t, p.Dictionary, "hello")
	roundTrip(t, "Hello HELLO hello\n")
}

func TestScenarioRepeatedWordCompresses(t *testing.T) {
	text := "word word word word"
	p := Compress(text)
	frame := Serialize(p)
	require.Less(t, len(frame), len([]byte(text)))
	roundTrip(t, text)
}

func TestScenarioEscapedControlBytes(t *testing.T) {
	roundTrip(t, "\x1F\x1F\x1F")
}

func TestDictionaryStrictlyIncreasing(t *testing.T) {
	p := Compress("zebra apple Mango apple zebra 42")
	for i := 1; i < len(p.Dictionary); i++ {
		require.Less(t, p.Dictionary[i-1], p.Dictionary[i])
	}
}
