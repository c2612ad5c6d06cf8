// Package bip32 implements hierarchical deterministic key derivation: from a
// single seed it derives an unbounded tree of extended key pairs, each
// serializable in the standard 78-byte wire form with a 4-byte checksum and a
// base58 text encoding.
package bip32

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// extendedKey carries the data shared by private and public extended keys:
// the version pair, the key's place in the tree and the chain code that keys
// the derivation of its children. It is immutable once constructed.
type extendedKey struct {
	Versions          VersionPair
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
}

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = 32
	keyDataSerializationLen     = 33
	checkSumLen                 = 4
)

// Field offsets into the serialized form. The checksum offset doubles as the
// length of the checksummed payload.
const (
	depthOffset       = versionSerializationLen
	fingerprintOffset = depthOffset + depthSerializationLen
	childNumberOffset = fingerprintOffset + fingerprintSerializationLen
	chainCodeOffset   = childNumberOffset + childNumberSerializationLen
	keyDataOffset     = chainCodeOffset + chainCodeSerializationLen
	checkSumOffset    = keyDataOffset + keyDataSerializationLen
)

const extendedKeySerializationLen = checkSumOffset + checkSumLen

func (extKey *extendedKey) clone() *extendedKey {
	clone := *extKey
	return &clone
}

// serialize writes the key out in the fixed wire layout
// version(4)|depth(1)|fingerprint(4)|childNumber(4)|chainCode(32)|keyData(33)
// and appends the 4-byte checksum, for 82 bytes in total.
func (extKey *extendedKey) serialize(version [4]byte, keyData [keyDataSerializationLen]byte) []byte {
	var serialized [extendedKeySerializationLen]byte
	copy(serialized[:versionSerializationLen], version[:])
	serialized[depthOffset] = extKey.Depth
	copy(serialized[fingerprintOffset:], extKey.ParentFingerprint[:])
	binary.BigEndian.PutUint32(serialized[childNumberOffset:], extKey.ChildNumber)
	copy(serialized[chainCodeOffset:], extKey.ChainCode[:])
	copy(serialized[keyDataOffset:], keyData[:])
	copy(serialized[checkSumOffset:], calcChecksum(serialized[:checkSumOffset]))

	return serialized[:]
}

// childLineage builds the header of the i'th child: one level deeper, tagged
// with the parent's fingerprint and the chain code produced by the derivation
// engine. Fails once the parent is already at the maximum depth.
func (extKey *extendedKey) childLineage(i uint32, chainCode [32]byte, fingerprint [4]byte) (*extendedKey, error) {
	if extKey.Depth == maxDepth {
		return nil, errors.Wrapf(ErrDepthOverflow, "key at depth %d cannot have children", extKey.Depth)
	}

	return &extendedKey{
		Versions:          extKey.Versions,
		Depth:             extKey.Depth + 1,
		ParentFingerprint: fingerprint,
		ChildNumber:       i,
		ChainCode:         chainCode,
	}, nil
}

const maxDepth = 255
