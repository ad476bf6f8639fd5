// Package hashing wraps the digest primitives used for key derivation,
// checksums and address fingerprints.
package hashing

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Required for ARK address derivation
)

// SHA256 computes SHA-256.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// RIPEMD160 computes RIPEMD-160 over data as-is, without a SHA-256 pre-hash.
func RIPEMD160(data []byte) [20]byte {
	var out [20]byte
	h := ripemd160.New()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// Checksum returns the first four bytes of DoubleSHA256(data).
func Checksum(data []byte) [4]byte {
	var out [4]byte
	sum := DoubleSHA256(data)
	copy(out[:], sum[:4])
	return out
}
