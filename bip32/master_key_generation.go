package bip32

import (
	"crypto/rand"

	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// masterHMACKey is the fixed keyed-hash key for master key generation,
// defined by BIP32.
var masterHMACKey = []byte("Bitcoin seed")

// GenerateSeed generates entropy that can be used to initialize a master key.
func GenerateSeed() ([]byte, error) {
	randBytes := make([]byte, 32)
	_, err := rand.Read(randBytes)
	if err != nil {
		return nil, err
	}

	return randBytes, nil
}

// NewMaster builds the root of a key tree from arbitrary-length seed bytes.
// The left half of HMAC-SHA512(masterHMACKey, seed) becomes the master
// secret and the right half the master chain code. Seeds whose left half
// falls outside the valid scalar range fail with ErrInvalidScalar.
func NewMaster(seed []byte, versions VersionPair) (*ExtendedPrivateKey, error) {
	mac := newHMACWriter(masterHMACKey)
	mac.InfallibleWrite(seed)
	iL, iR := splitI(mac.Sum(nil))

	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(iL[:])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidScalar, "seed produces an unusable master key (%s)", err)
	}

	return &ExtendedPrivateKey{
		privateKey: privateKey,
		extendedKey: &extendedKey{
			Versions:          versions,
			Depth:             0,
			ParentFingerprint: [4]byte{},
			ChildNumber:       0,
			ChainCode:         iR,
		},
	}, nil
}

// NewMasterWithPath returns a new master key based on the given seed and
// version pair, derived along the given path.
func NewMasterWithPath(seed []byte, versions VersionPair, pathString string) (*ExtendedPrivateKey, error) {
	masterKey, err := NewMaster(seed, versions)
	if err != nil {
		return nil, err
	}

	return masterKey.Path(pathString)
}

// NewPublicMasterWithPath derives the given public ("M/...") path from a new
// master key and projects the result to its public key.
func NewPublicMasterWithPath(seed []byte, versions VersionPair, pathString string) (*ExtendedPublicKey, error) {
	masterKey, err := NewMaster(seed, versions)
	if err != nil {
		return nil, err
	}

	return masterKey.PathPublic(pathString)
}
