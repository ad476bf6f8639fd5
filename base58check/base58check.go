// Package base58check encodes versioned payloads as Base58 text with a
// four byte double SHA-256 checksum appended.
package base58check

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/luciorubeens/ark-tsc/internal/hashing"
)

// ChecksumLength is the number of checksum bytes appended to every payload.
const ChecksumLength = 4

var (
	// ErrChecksumMismatch is returned when the trailing checksum does not
	// match the decoded payload.
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")

	// ErrInvalidFormat is returned for text that is not valid Base58 or is
	// too short to carry a checksum.
	ErrInvalidFormat = errors.New("base58check: invalid format")
)

// Encode returns Base58(payload || checksum(payload)).
// Leading zero bytes of payload are kept as leading '1' characters.
func Encode(payload []byte) string {
	sum := hashing.Checksum(payload)

	full := make([]byte, len(payload)+ChecksumLength)
	copy(full, payload)
	copy(full[len(payload):], sum[:])

	return base58.Encode(full)
}

// Decode reverses Encode and returns the payload without its checksum.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(decoded) < ChecksumLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidFormat, len(decoded))
	}

	split := len(decoded) - ChecksumLength
	payload, checksum := decoded[:split], decoded[split:]

	expected := hashing.Checksum(payload)
	if subtle.ConstantTimeCompare(expected[:], checksum) != 1 {
		return nil, ErrChecksumMismatch
	}

	return payload, nil
}
