// Package secp256k1 derives keys and produces DER encoded ECDSA signatures
// over the secp256k1 curve using btcec.
package secp256k1

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/luciorubeens/ark-tsc/internal/hashing"
)

// Key and digest sizes.
const (
	PrivateKeyLength = 32
	PublicKeyLength  = 33
	DigestLength     = 32
)

// Sentinel errors - Keys
var (
	ErrInvalidKeyLength  = errors.New("secp256k1: invalid private key length")
	ErrInvalidPrivateKey = errors.New("secp256k1: private key out of range")
	ErrInvalidPublicKey  = errors.New("secp256k1: invalid public key")
)

// Sentinel errors - Signatures
var (
	ErrInvalidDigestLength      = errors.New("secp256k1: invalid digest length")
	ErrInvalidSignatureEncoding = errors.New("secp256k1: invalid signature encoding")
)

// PrivateKeyFromPassphrase returns SHA-256(passphrase) as the private key.
func PrivateKeyFromPassphrase(passphrase []byte) [PrivateKeyLength]byte {
	return hashing.SHA256(passphrase)
}

// PublicKeyFromPrivateKey computes privKey*G and returns the compressed
// 33-byte point.
func PublicKeyFromPrivateKey(privKey []byte) ([PublicKeyLength]byte, error) {
	var out [PublicKeyLength]byte

	key, err := parsePrivateKey(privKey)
	if err != nil {
		return out, err
	}
	defer key.Zero()

	copy(out[:], key.PubKey().SerializeCompressed())
	return out, nil
}

// ValidatePrivateKey checks that privKey is a 32-byte scalar in [1, N-1].
func ValidatePrivateKey(privKey []byte) error {
	if len(privKey) != PrivateKeyLength {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, PrivateKeyLength, len(privKey))
	}

	var s btcec.ModNScalar
	overflow := s.SetByteSlice(privKey)
	defer s.Zero()
	if overflow || s.IsZero() {
		return ErrInvalidPrivateKey
	}
	return nil
}

// VerifyPublicKey checks that pubKey is a compressed point on the curve.
func VerifyPublicKey(pubKey []byte) error {
	_, err := parsePublicKey(pubKey)
	return err
}

// parsePrivateKey validates and converts raw bytes to a btcec key.
// Callers should Zero the returned key when done.
func parsePrivateKey(privKey []byte) (*btcec.PrivateKey, error) {
	if err := ValidatePrivateKey(privKey); err != nil {
		return nil, err
	}
	key, _ := btcec.PrivKeyFromBytes(privKey)
	return key, nil
}

// parsePublicKey accepts only the compressed encoding.
func parsePublicKey(pubKey []byte) (*btcec.PublicKey, error) {
	if len(pubKey) != PublicKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeyLength, len(pubKey))
	}
	if pubKey[0] != 0x02 && pubKey[0] != 0x03 {
		return nil, fmt.Errorf("%w: not a compressed key", ErrInvalidPublicKey)
	}

	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return key, nil
}
