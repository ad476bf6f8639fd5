package ark

import (
	"errors"
	"fmt"

	"github.com/luciorubeens/ark-tsc/base58check"
	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
	"github.com/luciorubeens/ark-tsc/wif"
)

// Sentinel errors - Keys
var (
	ErrInvalidKeyLength  = secp256k1.ErrInvalidKeyLength
	ErrInvalidPrivateKey = secp256k1.ErrInvalidPrivateKey
	ErrInvalidPublicKey  = secp256k1.ErrInvalidPublicKey
)

// Sentinel errors - Encoding
var (
	ErrChecksumMismatch = base58check.ErrChecksumMismatch
	ErrInvalidFormat    = base58check.ErrInvalidFormat
	ErrNetworkMismatch  = wif.ErrNetworkMismatch
	ErrInvalidWIFLength = wif.ErrInvalidLength
	ErrUnknownNetwork   = network.ErrUnknownNetwork
)

// Sentinel errors - Signatures
var (
	ErrInvalidDigestLength      = secp256k1.ErrInvalidDigestLength
	ErrInvalidSignatureEncoding = secp256k1.ErrInvalidSignatureEncoding
)

// Sentinel errors - Passphrases
var (
	ErrInvalidMnemonicStrength = errors.New("ark: invalid mnemonic strength")
	ErrNilKeyPair              = errors.New("ark: key pair is nil")
)

// KeyError wraps an error with the operation and network it occurred on.
type KeyError struct {
	Op      string
	Network string
	Err     error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s on %s: %v", e.Op, e.Network, e.Err)
}

// Unwrap implements the errors.Unwrap interface for error chaining.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// WrapKeyError wraps an error with operation context.
// Returns nil if the provided error is nil.
func WrapKeyError(op string, net network.Network, err error) error {
	if err == nil {
		return nil
	}
	return &KeyError{
		Op:      op,
		Network: net.Name,
		Err:     err,
	}
}
