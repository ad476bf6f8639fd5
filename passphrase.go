package ark

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicStrength is the entropy size of a generated passphrase in bits.
type MnemonicStrength int

// Supported strengths.
const (
	Mnemonic12Words MnemonicStrength = 128
	Mnemonic15Words MnemonicStrength = 160
	Mnemonic18Words MnemonicStrength = 192
	Mnemonic21Words MnemonicStrength = 224
	Mnemonic24Words MnemonicStrength = 256
)

// GeneratePassphrase returns a new random BIP39 mnemonic suitable for
// KeysFromPassphrase.
func GeneratePassphrase(strength MnemonicStrength) (string, error) {
	switch strength {
	case Mnemonic12Words, Mnemonic15Words, Mnemonic18Words, Mnemonic21Words, Mnemonic24Words:
	default:
		return "", fmt.Errorf("%w: %d, must be 128, 160, 192, 224 or 256", ErrInvalidMnemonicStrength, strength)
	}

	entropy, err := bip39.NewEntropy(int(strength))
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer secureZero(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidatePassphrase reports whether passphrase is a valid BIP39 mnemonic.
// Any string works as a passphrase; this only checks generated ones.
func ValidatePassphrase(passphrase string) bool {
	return bip39.IsMnemonicValid(passphrase)
}
