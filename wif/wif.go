// Package wif implements the Wallet Import Format for private keys.
//
// A WIF string is the Base58Check encoding of
//
//	version(1) || privateKey(32) || [0x01 if the public key is compressed]
package wif

import (
	"errors"
	"fmt"

	"github.com/luciorubeens/ark-tsc/base58check"
	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
)

const (
	compressedFlag = 0x01

	uncompressedLength = 1 + secp256k1.PrivateKeyLength
	compressedLength   = uncompressedLength + 1
)

var (
	// ErrNetworkMismatch is returned when the decoded version byte differs
	// from the network's WIF version.
	ErrNetworkMismatch = errors.New("wif: network mismatch")

	// ErrInvalidLength is returned for payloads that are neither 33 nor 34
	// bytes, or whose 34th byte is not the compression flag.
	ErrInvalidLength = errors.New("wif: invalid payload length")
)

// Key is a decoded WIF payload.
type Key struct {
	PrivateKey [secp256k1.PrivateKeyLength]byte
	Compressed bool
	Version    byte
}

// Encode serializes privKey for net.
func Encode(privKey []byte, net network.Network, compressed bool) (string, error) {
	if len(privKey) != secp256k1.PrivateKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d",
			secp256k1.ErrInvalidKeyLength, secp256k1.PrivateKeyLength, len(privKey))
	}

	payload := make([]byte, uncompressedLength, compressedLength)
	payload[0] = net.WIF
	copy(payload[1:], privKey)
	if compressed {
		payload = append(payload, compressedFlag)
	}
	defer clear(payload)

	return base58check.Encode(payload), nil
}

// Decode parses s and checks its version byte against net.
func Decode(s string, net network.Network) (*Key, error) {
	payload, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}
	defer clear(payload)

	var compressed bool
	switch {
	case len(payload) == uncompressedLength:
	case len(payload) == compressedLength && payload[compressedLength-1] == compressedFlag:
		compressed = true
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(payload))
	}

	if payload[0] != net.WIF {
		return nil, fmt.Errorf("%w: expected version 0x%02x for %s, got 0x%02x",
			ErrNetworkMismatch, net.WIF, net.Name, payload[0])
	}

	key := &Key{Compressed: compressed, Version: payload[0]}
	copy(key.PrivateKey[:], payload[1:uncompressedLength])
	return key, nil
}
