// Package libhdvault composes the bip32 engine into wallet-facing entry
// points: mnemonic phrase generation and deriving extended keys from a
// mnemonic along a derivation path.
package libhdvault

import (
	"github.com/hdvault/hdvault/bip32"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// DefaultDerivationPath is the BIP44 account path used when the caller does
// not specify one.
const DefaultDerivationPath = "m/44'/0'/0'"

const mnemonicEntropyBits = 256

// CreateMnemonic generates a fresh 24-word BIP39 mnemonic phrase.
func CreateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errors.Wrap(err, "error generating mnemonic entropy")
	}

	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic validates the mnemonic against the BIP39 word list and
// stretches it into the seed bytes that initialize a master key.
func SeedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Errorf("mnemonic is not a valid BIP39 phrase")
	}

	return bip39.NewSeed(mnemonic, passphrase), nil
}

// ExtendedKeyFromMnemonic derives the extended private key at the given path
// from a mnemonic phrase.
func ExtendedKeyFromMnemonic(mnemonic string, passphrase string, pathString string,
	versions bip32.VersionPair) (*bip32.ExtendedPrivateKey, error) {

	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	return bip32.NewMasterWithPath(seed, versions, pathString)
}

// ExtendedPublicKeyFromMnemonic derives the extended private key at the given
// path from a mnemonic phrase and projects it to its public key, the form
// suitable for sharing with watch-only consumers.
func ExtendedPublicKeyFromMnemonic(mnemonic string, passphrase string, pathString string,
	versions bip32.VersionPair) (*bip32.ExtendedPublicKey, error) {

	extendedKey, err := ExtendedKeyFromMnemonic(mnemonic, passphrase, pathString, versions)
	if err != nil {
		return nil, err
	}

	return extendedKey.Public()
}
