// Package rowversion encodes row version counters as opaque tokens for
// HTTP clients. The wire form is an unpadded URL-safe base64 encoding of
// the counter's big-endian bytes; clients must treat it as opaque.
package rowversion

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

var ErrInvalidToken = errors.New("invalid row version token")

// Encode renders a version counter as an opaque token.
func Encode(version int64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(version))
	return base64.RawURLEncoding.EncodeToString(buf[:])
}

// Decode parses a token produced by Encode. Any malformed input yields
// ErrInvalidToken; the caller decides whether that is a validation or a
// precondition failure.
func Decode(token string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != 8 {
		return 0, ErrInvalidToken
	}
	v := binary.BigEndian.Uint64(raw)
	if v > 1<<62 {
		return 0, ErrInvalidToken
	}
	return int64(v), nil
}
