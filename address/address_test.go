package address

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciorubeens/ark-tsc/base58check"
	"github.com/luciorubeens/ark-tsc/internal/hashing"
	"github.com/luciorubeens/ark-tsc/network"
	"github.com/luciorubeens/ark-tsc/secp256k1"
)

const (
	testPub   = "025f81956d5826bad7d30daed2b5c8c98e72046c1ec8323da336445476183fb7ca"
	secretPub = "034151a3ec46b5670a682b0a63394f863587d1bc97483b1b6c70eb58e7f0aed192"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFromPublicKey(t *testing.T) {
	tests := []struct {
		name     string
		pub      string
		net      network.Network
		expected string
	}{
		{"secret passphrase mainnet", secretPub, network.MainnetParams(), "AGeYmgbg2LgGxRW2vNNJvQ88PknEJsYizC"},
		{"secret passphrase devnet", secretPub, network.DevnetParams(), "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"},
		{"test passphrase mainnet", testPub, network.MainnetParams(), "AXkFpWya4bFtet2QLxmEQqfCipW6GQtsZe"},
		{"test passphrase devnet", testPub, network.DevnetParams(), "DM7UiH4b2rW2Nv11Wu6ToiZi8MJhGCEWhP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := FromPublicKey(mustHex(t, tt.pub), tt.net)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}

	t.Run("is deterministic", func(t *testing.T) {
		pub := mustHex(t, secretPub)
		a1, err := FromPublicKey(pub, network.MainnetParams())
		require.NoError(t, err)
		a2, err := FromPublicKey(pub, network.MainnetParams())
		require.NoError(t, err)
		assert.Equal(t, a1, a2)
	})

	t.Run("decodes without checksum error", func(t *testing.T) {
		net := network.DevnetParams()
		pub := mustHex(t, secretPub)
		addr, err := FromPublicKey(pub, net)
		require.NoError(t, err)

		payload, err := base58check.Decode(addr)
		require.NoError(t, err)
		require.Len(t, payload, 21)
		assert.Equal(t, net.Version, payload[0])

		h := Hash(pub)
		assert.Equal(t, h[:], payload[1:])
	})

	t.Run("uses single RIPEMD-160", func(t *testing.T) {
		pub := mustHex(t, secretPub)
		h := Hash(pub)
		assert.Equal(t, "0995750207ecaf0ccf251c1265b92ad84f553662", hex.EncodeToString(h[:]))

		sha := hashing.SHA256(pub)
		hash160 := hashing.RIPEMD160(sha[:])
		assert.NotEqual(t, hash160, h)
	})

	t.Run("rejects wrong public key length", func(t *testing.T) {
		for _, n := range []int{0, 32, 65} {
			_, err := FromPublicKey(make([]byte, n), network.MainnetParams())
			assert.ErrorIs(t, err, secp256k1.ErrInvalidPublicKey)
		}
	})
}
