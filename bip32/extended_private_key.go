package bip32

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// ExtendedPrivateKey is a private key together with the chain code and
// lineage needed to derive children from it. It supports both hardened and
// non-hardened derivation and projects to its ExtendedPublicKey counterpart.
// Keys are immutable; derivation returns new values, so a key may be shared
// freely between goroutines.
type ExtendedPrivateKey struct {
	privateKey *secp256k1.ECDSAPrivateKey
	*extendedKey
}

// PrivateKey returns the raw private key of this node of the tree.
func (extPrv *ExtendedPrivateKey) PrivateKey() *secp256k1.ECDSAPrivateKey {
	return extPrv.privateKey
}

// Public projects this key to the extended public key of the same node. The
// point is recomputed from the secret; the chain code and lineage carry over
// verbatim, and serialization switches to the public version word of the
// pair.
func (extPrv *ExtendedPrivateKey) Public() (*ExtendedPublicKey, error) {
	point, err := extPrv.privateKey.ECDSAPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "error calculating point")
	}

	return &ExtendedPublicKey{
		publicKey:   point,
		extendedKey: extPrv.extendedKey.clone(),
	}, nil
}

func (extPrv *ExtendedPrivateKey) serializedPoint() (*secp256k1.SerializedECDSAPublicKey, error) {
	publicKey, err := extPrv.privateKey.ECDSAPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "error calculating point")
	}

	serializedPoint, err := publicKey.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "error serializing point")
	}

	return serializedPoint, nil
}

// Serialize returns the checksummed wire form of this key. The key data
// field is the zero-padded 32-byte secret.
func (extPrv *ExtendedPrivateKey) Serialize() []byte {
	var keyData [keyDataSerializationLen]byte
	keyData[0] = 0 // padding that distinguishes private key material
	copy(keyData[1:], extPrv.privateKey.Serialize()[:])

	return extPrv.extendedKey.serialize(extPrv.Versions.Private, keyData)
}

// String returns the base58 text form of this key.
func (extPrv *ExtendedPrivateKey) String() string {
	return base58.Encode(extPrv.Serialize())
}

// DeserializeExtendedPrivateKey parses the base58 text form of an extended
// private key. The version word must equal the private version of the given
// pair.
func DeserializeExtendedPrivateKey(extPrvString string, versions VersionPair) (*ExtendedPrivateKey, error) {
	serialized := base58.Decode(extPrvString)
	extPrv, err := deserializeExtendedPrivateKey(serialized, versions)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse extended private key %q", extPrvString)
	}

	return extPrv, nil
}

func deserializeExtendedPrivateKey(serialized []byte, versions VersionPair) (*ExtendedPrivateKey, error) {
	version, extKey, keyData, err := deserializeExtendedKeyHeader(serialized)
	if err != nil {
		return nil, err
	}

	if version != versions.Private {
		return nil, errors.Wrapf(ErrVersionMismatch, "expected version %x but got %x", versions.Private, version)
	}
	extKey.Versions = versions

	if keyData[0] != 0 {
		return nil, errors.Wrapf(ErrEncoding, "expected 0 padding before the private key data but got %d", keyData[0])
	}

	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(keyData[1:])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidScalar, "%s", err)
	}

	return &ExtendedPrivateKey{
		privateKey:  privateKey,
		extendedKey: extKey,
	}, nil
}
