// Package ark derives, encodes and uses secp256k1 key material for ARK
// identities: passphrase and WIF key derivation, address encoding and ECDSA
// signatures over message digests.
package ark

import (
	"bytes"
	"encoding/hex"

	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
)

// PrivateKey is a 32-byte secp256k1 scalar.
// Its fmt representations are redacted so it cannot leak through logs.
type PrivateKey [secp256k1.PrivateKeyLength]byte

// Bytes returns a copy of the raw key.
func (k PrivateKey) Bytes() []byte {
	return bytes.Clone(k[:])
}

// String implements fmt.Stringer.
func (k PrivateKey) String() string {
	return "PrivateKey([redacted])"
}

// GoString implements fmt.GoStringer.
func (k PrivateKey) GoString() string {
	return k.String()
}

// PublicKey is a compressed secp256k1 point tagged with the network it is
// used on. The network is context only; Equal ignores it.
type PublicKey struct {
	Bytes      [secp256k1.PublicKeyLength]byte
	Compressed bool
	Network    network.Network
}

// Hex returns the hex encoding of the compressed point.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes[:])
}

// Equal reports whether p and other are the same curve point.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.Bytes == other.Bytes
}

// Address returns the address of p on p.Network.
func (p PublicKey) Address() string {
	return Address(p)
}

// KeyPair holds a private key and the public key derived from it.
// It can only be built by the derivation functions in this package.
type KeyPair struct {
	privateKey PrivateKey
	publicKey  PublicKey
}

// PrivateKey returns the private half.
func (kp *KeyPair) PrivateKey() PrivateKey {
	return kp.privateKey
}

// PublicKey returns the public half.
func (kp *KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

// Network returns the network the pair was derived for.
func (kp *KeyPair) Network() network.Network {
	return kp.publicKey.Network
}

// Address returns the address of the pair's public key.
func (kp *KeyPair) Address() string {
	return Address(kp.publicKey)
}

// WIF serializes the private key with the pair's network and compression flag.
func (kp *KeyPair) WIF() (string, error) {
	return ToWIF(kp)
}

// Signature is a DER encoded ECDSA signature.
type Signature []byte

// Hex returns the hex encoding of the signature.
func (s Signature) Hex() string {
	return hex.EncodeToString(s)
}

// BatchSignRequest is a single digest to sign in a batch.
// Each request can use a different key.
type BatchSignRequest struct {
	ID     string   // Caller-chosen identifier echoed in the result
	Key    *KeyPair // Signing key
	Digest []byte   // 32-byte digest
}

// BatchSignResult is the outcome of one BatchSignRequest.
type BatchSignResult struct {
	ID        string    // Request identifier
	Signature Signature // DER signature
	PublicKey PublicKey // Public key of the signer
	Error     error     // nil if successful
}
