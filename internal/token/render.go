package token

import (
	"errors"
	"strconv"
	"strings"
)

// ErrDanglingMarker is returned when a control marker is the last token in
// a stream, with no payload following it: a strict decode failure rather
// than silently dropping the pending marker. It is only reachable from a
// corrupted or hand-crafted decoded stream, never from Compress's own
// output.
var ErrDanglingMarker = errors.New("token: control marker with no payload")

// ErrUnknownMarker is returned for a marker class byte outside {s,n,t,d,u,c,e},
// and for a whitespace marker whose payload is not a base-36 run length.
var ErrUnknownMarker = errors.New("token: unknown control marker class")

const markerClasses = "sntduce"

// Render reverses Normalize: it walks the normalized token stream, expands
// each (marker, payload) pair back to its raw token, and concatenates the
// result, reproducing the original text exactly.
func Render(tokens []string) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if class, ok := markerClass(tok); ok {
			if i+1 >= len(tokens) {
				return "", ErrDanglingMarker
			}
			raw, err := renderMarked(class, tokens[i+1])
			if err != nil {
				return "", err
			}
			sb.WriteString(raw)
			i += 2
			continue
		}
		sb.WriteString(tok)
		i++
	}
	return sb.String(), nil
}

func markerClass(tok string) (byte, bool) {
	r := []rune(tok)
	if len(r) != 2 || r[0] != ctrl {
		return 0, false
	}
	// A class outside markerClasses is still reported as a marker (class 0
	// for a non-ASCII one) so that renderMarked rejects it.
	if r[1] > 127 {
		return 0, true
	}
	return byte(r[1]), true
}

func renderMarked(class byte, payload string) (string, error) {
	switch class {
	case 's':
		return repeatClass(" ", payload)
	case 'n':
		return repeatClass("\n", payload)
	case 't':
		return repeatClass("\t", payload)
	case 'd':
		return payload, nil
	case 'u':
		return strings.ToUpper(payload), nil
	case 'c':
		return titleCase(payload), nil
	case 'e':
		return payload, nil
	}
	return "", ErrUnknownMarker
}

func repeatClass(ch, payload string) (string, error) {
	n, err := strconv.ParseInt(payload, 36, 64)
	if err != nil || n < 0 {
		return "", ErrUnknownMarker
	}
	return strings.Repeat(ch, int(n)), nil
}

func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
