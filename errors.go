package wbwt

import "errors"

// ErrInvalidHeader is returned when the magic number does not match or the
// version field names a version this decoder does not understand (only
// versions 2, 3 and 4 decode).
var ErrInvalidHeader = errors.New("wbwt: invalid header")

// ErrCorruptFrame is returned for any other decode failure: a varint that
// overruns the buffer, a dictionary suffix that claims more bytes than
// remain, or an arithmetic-decoded symbol that cannot be mapped back to a
// valid token id or MTF value.
var ErrCorruptFrame = errors.New("wbwt: corrupt frame")
