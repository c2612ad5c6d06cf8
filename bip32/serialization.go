package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// deserializeExtendedKeyHeader reads the fields every extended key shares and
// validates the checksum. It returns the version word as read from the wire
// and the raw 33 bytes of key data; interpreting both is left to the caller,
// which knows whether it expects private or public key material.
func deserializeExtendedKeyHeader(serialized []byte) (version [4]byte, extKey *extendedKey, keyData []byte, err error) {
	if len(serialized) != extendedKeySerializationLen {
		return [4]byte{}, nil, nil, errors.Wrapf(ErrEncoding,
			"extended key length must be %d bytes but got %d", extendedKeySerializationLen, len(serialized))
	}

	err = validateChecksum(serialized)
	if err != nil {
		return [4]byte{}, nil, nil, err
	}

	extKey = &extendedKey{}
	copy(version[:], serialized[:versionSerializationLen])
	extKey.Depth = serialized[depthOffset]
	copy(extKey.ParentFingerprint[:], serialized[fingerprintOffset:childNumberOffset])
	extKey.ChildNumber = binary.BigEndian.Uint32(serialized[childNumberOffset:chainCodeOffset])
	copy(extKey.ChainCode[:], serialized[chainCodeOffset:keyDataOffset])

	return version, extKey, serialized[keyDataOffset:checkSumOffset], nil
}

// DeserializeExtendedKey parses encoded text that may hold either a private
// or a public extended key, resolving the ambiguity against the given version
// pair. Exactly one of the returned keys is non-nil on success.
func DeserializeExtendedKey(extKeyString string, versions VersionPair) (*ExtendedPrivateKey, *ExtendedPublicKey, error) {
	serialized := base58.Decode(extKeyString)
	version, _, _, err := deserializeExtendedKeyHeader(serialized)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse extended key %q", extKeyString)
	}

	switch version {
	case versions.Private:
		extPrv, err := deserializeExtendedPrivateKey(serialized, versions)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse extended private key %q", extKeyString)
		}
		return extPrv, nil, nil

	case versions.Public:
		extPub, err := deserializeExtendedPublicKey(serialized, versions)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse extended public key %q", extKeyString)
		}
		return nil, extPub, nil

	default:
		return nil, nil, errors.Wrapf(ErrVersionMismatch,
			"version %x in %q matches neither the private version %x nor the public version %x",
			version, extKeyString, versions.Private, versions.Public)
	}
}
