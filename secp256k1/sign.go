package secp256k1

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Sign signs a 32-byte digest with RFC 6979 deterministic nonces and returns
// the low-S signature in DER format. The digest is used as-is; hashing the
// message is the caller's job.
func Sign(digest, privKey []byte) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDigestLength, DigestLength, len(digest))
	}

	key, err := parsePrivateKey(privKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return ecdsa.Sign(key, digest).Serialize(), nil
}

// Verify checks a DER signature over a 32-byte digest.
//
// It returns ErrInvalidSignatureEncoding only when sig cannot be parsed as
// DER. Every other failure, including a wrong digest length, an invalid
// public key or a non-canonical (high-S) encoding, yields false.
func Verify(sig, digest, pubKey []byte) (bool, error) {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignatureEncoding, err)
	}

	// Serialize always emits the canonical low-S form, so any difference
	// means the input was malleated.
	if !bytes.Equal(parsed.Serialize(), sig) {
		return false, nil
	}

	if len(digest) != DigestLength {
		return false, nil
	}

	key, err := parsePublicKey(pubKey)
	if err != nil {
		return false, nil
	}

	return parsed.Verify(digest, key), nil
}
