// Package address derives network addresses from compressed public keys.
package address

import (
	"fmt"

	"github.com/luciorubeens/ark-tsc/base58check"
	"github.com/luciorubeens/ark-tsc/internal/hashing"
	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
)

// HashLength is the size of the public key fingerprint in an address.
const HashLength = 20

// Hash returns RIPEMD160(pubKey).
//
// ARK addresses hash the compressed key once with RIPEMD-160. There is no
// SHA-256 pre-hash, unlike Bitcoin's HASH160.
func Hash(pubKey []byte) [HashLength]byte {
	return hashing.RIPEMD160(pubKey)
}

// FromPublicKey returns Base58Check(net.Version || RIPEMD160(pubKey)).
// pubKey must be a 33-byte compressed key.
func FromPublicKey(pubKey []byte, net network.Network) (string, error) {
	if len(pubKey) != secp256k1.PublicKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d",
			secp256k1.ErrInvalidPublicKey, secp256k1.PublicKeyLength, len(pubKey))
	}

	h := Hash(pubKey)

	payload := make([]byte, 1+HashLength)
	payload[0] = net.Version
	copy(payload[1:], h[:])

	return base58check.Encode(payload), nil
}
