package bip32

import (
	"encoding/binary"

	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// HardenedIndexStart is the first hardened child index. Indices at or above
// it derive hardened children.
const HardenedIndexStart = 0x80000000

func isHardened(i uint32) bool {
	return i >= HardenedIndexStart
}

// Child derives the i'th child private key. Hardened indices (i >= 2^31) mix
// the parent secret into the keyed hash, non-hardened indices mix in the
// parent's compressed point. An unusable child (IL out of range or a zero
// child secret) fails with ErrInvalidScalar; the caller should move on to the
// next index.
func (extPrv *ExtendedPrivateKey) Child(i uint32) (*ExtendedPrivateKey, error) {
	I, err := extPrv.calcI(i)
	if err != nil {
		return nil, err
	}
	iL, iR := splitI(I)

	fingerprint, err := extPrv.fingerprint()
	if err != nil {
		return nil, err
	}

	lineage, err := extPrv.childLineage(i, iR, fingerprint)
	if err != nil {
		return nil, err
	}

	childPrivateKey, err := privateKeyAdd(extPrv.privateKey, iL)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidScalar, "child %d of this key is unusable (%s)", i, err)
	}

	return &ExtendedPrivateKey{
		privateKey:  childPrivateKey,
		extendedKey: lineage,
	}, nil
}

// Child derives the i'th child public key without access to any private key
// material, so it supports non-hardened indices only. An unusable child (IL
// out of range or a point at infinity) fails with ErrInvalidPoint.
func (extPub *ExtendedPublicKey) Child(i uint32) (*ExtendedPublicKey, error) {
	I, err := extPub.calcI(i)
	if err != nil {
		return nil, err
	}
	iL, iR := splitI(I)

	fingerprint, err := extPub.fingerprint()
	if err != nil {
		return nil, err
	}

	lineage, err := extPub.childLineage(i, iR, fingerprint)
	if err != nil {
		return nil, err
	}

	childPublicKey, err := pointAdd(extPub.publicKey, iL)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPoint, "child %d of this key is unusable (%s)", i, err)
	}

	return &ExtendedPublicKey{
		publicKey:   childPublicKey,
		extendedKey: lineage,
	}, nil
}

func (extPrv *ExtendedPrivateKey) calcI(i uint32) ([]byte, error) {
	mac := newHMACWriter(extPrv.ChainCode[:])
	if isHardened(i) {
		mac.InfallibleWrite([]byte{0x00})
		mac.InfallibleWrite(extPrv.privateKey.Serialize()[:])
	} else {
		serializedPoint, err := extPrv.serializedPoint()
		if err != nil {
			return nil, err
		}
		mac.InfallibleWrite(serializedPoint[:])
	}
	mac.InfallibleWrite(serializeUint32(i))

	return mac.Sum(nil), nil
}

func (extPub *ExtendedPublicKey) calcI(i uint32) ([]byte, error) {
	if isHardened(i) {
		return nil, errors.Wrapf(ErrHardenedFromPublic, "index %d is hardened", i)
	}

	serializedPoint, err := extPub.publicKey.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "error serializing point")
	}

	mac := newHMACWriter(extPub.ChainCode[:])
	mac.InfallibleWrite(serializedPoint[:])
	mac.InfallibleWrite(serializeUint32(i))

	return mac.Sum(nil), nil
}

func splitI(I []byte) (iL, iR [32]byte) {
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])
	return iL, iR
}

// calcFingerprint identifies a parent key by the leading bytes of the short
// hash of its compressed point.
func calcFingerprint(publicKey *secp256k1.ECDSAPublicKey) ([4]byte, error) {
	serializedPoint, err := publicKey.Serialize()
	if err != nil {
		return [4]byte{}, errors.Wrap(err, "error serializing point")
	}

	var fingerprint [4]byte
	copy(fingerprint[:], hash160(serializedPoint[:])[:fingerprintSerializationLen])
	return fingerprint, nil
}

func (extPrv *ExtendedPrivateKey) fingerprint() ([4]byte, error) {
	publicKey, err := extPrv.privateKey.ECDSAPublicKey()
	if err != nil {
		return [4]byte{}, errors.Wrap(err, "error calculating point")
	}

	return calcFingerprint(publicKey)
}

func (extPub *ExtendedPublicKey) fingerprint() ([4]byte, error) {
	return calcFingerprint(extPub.publicKey)
}

// privateKeyAdd returns k + tweak mod the group order without mutating k.
func privateKeyAdd(k *secp256k1.ECDSAPrivateKey, tweak [32]byte) (*secp256k1.ECDSAPrivateKey, error) {
	kCopy := *k
	err := kCopy.Add(tweak)
	if err != nil {
		return nil, err
	}

	return &kCopy, nil
}

// pointAdd returns point + tweak*G without mutating point.
func pointAdd(point *secp256k1.ECDSAPublicKey, tweak [32]byte) (*secp256k1.ECDSAPublicKey, error) {
	pointCopy := *point
	err := pointCopy.Add(tweak)
	if err != nil {
		return nil, err
	}

	return &pointCopy, nil
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
