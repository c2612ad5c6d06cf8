package bip32

import "encoding/binary"

// VersionPair holds the serialization version words of a network's private
// and public extended keys. The two always travel together so a private key
// knows which version its public counterpart serializes under.
type VersionPair struct {
	Private [4]byte
	Public  [4]byte
}

// Version pairs for the networks this library ships with (xprv/xpub and
// tprv/tpub respectively).
var (
	BitcoinMainnet = VersionPair{
		Private: [4]byte{0x04, 0x88, 0xad, 0xe4},
		Public:  [4]byte{0x04, 0x88, 0xb2, 0x1e},
	}
	BitcoinTestnet = VersionPair{
		Private: [4]byte{0x04, 0x35, 0x83, 0x94},
		Public:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	}
)

// Prefix returns the version word for the requested side of the pair.
func (vp VersionPair) Prefix(public bool) [4]byte {
	if public {
		return vp.Public
	}
	return vp.Private
}

// Uint64 packs the pair into a single value, private word in the high bits.
// Some implementations pass version pairs around in this packed form, so the
// packing only exists for interoperability at that boundary.
func (vp VersionPair) Uint64() uint64 {
	return uint64(binary.BigEndian.Uint32(vp.Private[:]))<<32 |
		uint64(binary.BigEndian.Uint32(vp.Public[:]))
}

// VersionPairFromUint64 is the inverse of VersionPair.Uint64.
func VersionPairFromUint64(packed uint64) VersionPair {
	vp := VersionPair{}
	binary.BigEndian.PutUint32(vp.Private[:], uint32(packed>>32))
	binary.BigEndian.PutUint32(vp.Public[:], uint32(packed))
	return vp
}
