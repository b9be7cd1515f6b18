package main

import "encoding/base64"

// encodeBase64URL and decodeBase64URL frame a serialized container for
// embedding in a URL fragment: RFC 4648 §5 base64url with "=" padding
// stripped. encoding/base64's RawURLEncoding is exactly that alphabet
// with padding already omitted.
func encodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
