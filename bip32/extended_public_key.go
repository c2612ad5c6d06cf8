package bip32

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// ExtendedPublicKey is a curve point together with the chain code and lineage
// needed to derive non-hardened children from it without any private key
// material. Like its private counterpart it is an immutable value.
type ExtendedPublicKey struct {
	publicKey *secp256k1.ECDSAPublicKey
	*extendedKey
}

// PublicKey returns the raw public key of this node of the tree.
func (extPub *ExtendedPublicKey) PublicKey() *secp256k1.ECDSAPublicKey {
	return extPub.publicKey
}

// Serialize returns the checksummed wire form of this key. The key data
// field is the 33-byte compressed point.
func (extPub *ExtendedPublicKey) Serialize() ([]byte, error) {
	serializedPoint, err := extPub.publicKey.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "error serializing point")
	}

	var keyData [keyDataSerializationLen]byte
	copy(keyData[:], serializedPoint[:])

	return extPub.extendedKey.serialize(extPub.Versions.Public, keyData), nil
}

// String returns the base58 text form of this key. Serialization of a key
// that was constructed by this package cannot fail, so any error here is a
// programming error and panics.
func (extPub *ExtendedPublicKey) String() string {
	serialized, err := extPub.Serialize()
	if err != nil {
		panic(errors.Wrap(err, "error serializing extended public key"))
	}

	return base58.Encode(serialized)
}

// DeserializeExtendedPublicKey parses the base58 text form of an extended
// public key. The version word must equal the public version of the given
// pair.
func DeserializeExtendedPublicKey(extPubString string, versions VersionPair) (*ExtendedPublicKey, error) {
	serialized := base58.Decode(extPubString)
	extPub, err := deserializeExtendedPublicKey(serialized, versions)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse extended public key %q", extPubString)
	}

	return extPub, nil
}

func deserializeExtendedPublicKey(serialized []byte, versions VersionPair) (*ExtendedPublicKey, error) {
	version, extKey, keyData, err := deserializeExtendedKeyHeader(serialized)
	if err != nil {
		return nil, err
	}

	if version != versions.Public {
		return nil, errors.Wrapf(ErrVersionMismatch, "expected version %x but got %x", versions.Public, version)
	}
	extKey.Versions = versions

	publicKey, err := secp256k1.DeserializeECDSAPubKey(keyData)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPoint, "%s", err)
	}

	return &ExtendedPublicKey{
		publicKey:   publicKey,
		extendedKey: extKey,
	}, nil
}
