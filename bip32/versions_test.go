package bip32

import "testing"

func TestVersionPairPacking(t *testing.T) {
	for _, pair := range []VersionPair{BitcoinMainnet, BitcoinTestnet} {
		unpacked := VersionPairFromUint64(pair.Uint64())
		if unpacked != pair {
			t.Errorf("packing and unpacking %v produced %v", pair, unpacked)
		}
	}

	// The packed mainnet value matches the constant other implementations
	// pass around: 0x0488ade4 (private) in the high word, 0x0488b21e
	// (public) in the low word.
	if BitcoinMainnet.Uint64() != 0x0488ade40488b21e {
		t.Errorf("packed mainnet pair is %x", BitcoinMainnet.Uint64())
	}

	if BitcoinMainnet.Prefix(false) != BitcoinMainnet.Private {
		t.Errorf("Prefix(false) did not select the private version")
	}
	if BitcoinMainnet.Prefix(true) != BitcoinMainnet.Public {
		t.Errorf("Prefix(true) did not select the public version")
	}
}
