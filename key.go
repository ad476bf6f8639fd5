package ark

import (
	"runtime"

	"github.com/luciorubeens/ark-tsc/address"
	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
	"github.com/luciorubeens/ark-tsc/wif"
)

// PrivateKeyFromPassphrase returns SHA-256 of the UTF-8 passphrase.
func PrivateKeyFromPassphrase(passphrase string) PrivateKey {
	return PrivateKeyFromBytes([]byte(passphrase))
}

// PrivateKeyFromBytes returns SHA-256 of a raw passphrase.
func PrivateKeyFromBytes(passphrase []byte) PrivateKey {
	return PrivateKey(secp256k1.PrivateKeyFromPassphrase(passphrase))
}

// KeysFromPassphrase derives the key pair for passphrase on net.
func KeysFromPassphrase(passphrase string, net network.Network) (*KeyPair, error) {
	raw := []byte(passphrase)
	defer secureZero(raw)

	priv := PrivateKeyFromBytes(raw)
	defer secureZero(priv[:])

	kp, err := KeysFromPrivateKey(priv[:], net)
	if err != nil {
		return nil, WrapKeyError("derive from passphrase", net, err)
	}
	return kp, nil
}

// KeysFromPrivateKey derives the key pair for a raw 32-byte private key.
func KeysFromPrivateKey(privKey []byte, net network.Network) (*KeyPair, error) {
	pub, err := secp256k1.PublicKeyFromPrivateKey(privKey)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{
		publicKey: PublicKey{
			Bytes:      pub,
			Compressed: true,
			Network:    net,
		},
	}
	copy(kp.privateKey[:], privKey)
	return kp, nil
}

// KeysFromWIF decodes a WIF string for net and derives its public key.
// The public key is always tagged as compressed.
func KeysFromWIF(s string, net network.Network) (*KeyPair, error) {
	key, err := wif.Decode(s, net)
	if err != nil {
		return nil, WrapKeyError("decode wif", net, err)
	}
	defer secureZero(key.PrivateKey[:])

	kp, err := KeysFromPrivateKey(key.PrivateKey[:], net)
	if err != nil {
		return nil, WrapKeyError("decode wif", net, err)
	}
	return kp, nil
}

// ToWIF encodes kp's private key using its network and compression flag.
func ToWIF(kp *KeyPair) (string, error) {
	if kp == nil {
		return "", ErrNilKeyPair
	}
	s, err := wif.Encode(kp.privateKey[:], kp.publicKey.Network, kp.publicKey.Compressed)
	if err != nil {
		return "", WrapKeyError("encode wif", kp.publicKey.Network, err)
	}
	return s, nil
}

// Address derives the address of pub on pub.Network.
func Address(pub PublicKey) string {
	// The error path only covers a wrong key length, which the array type rules out.
	addr, _ := address.FromPublicKey(pub.Bytes[:], pub.Network)
	return addr
}

// Sign signs a 32-byte digest with priv. The digest is not hashed again.
func Sign(digest []byte, priv PrivateKey) (Signature, error) {
	sig, err := secp256k1.Sign(digest, priv[:])
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// Verify checks sig over digest against pub. A signature that does not
// match returns false; only unparseable DER returns an error.
func Verify(sig Signature, digest []byte, pub PublicKey) (bool, error) {
	return secp256k1.Verify(sig, digest, pub.Bytes[:])
}

// secureZero wipes sensitive data from memory.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
