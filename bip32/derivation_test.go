package bip32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
)

func testMaster(t *testing.T) *ExtendedPrivateKey {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("DecodeString: %+v", err)
	}

	master, err := NewMaster(seed, BitcoinMainnet)
	if err != nil {
		t.Fatalf("NewMaster: %+v", err)
	}

	return master
}

func TestDepthMonotonicity(t *testing.T) {
	key := testMaster(t)
	if key.Depth != 0 {
		t.Fatalf("master key depth is %d instead of 0", key.Depth)
	}

	for _, index := range []uint32{0, 1, HardenedIndexStart, HardenedIndexStart + 7} {
		child, err := key.Child(index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}
		if child.Depth != key.Depth+1 {
			t.Fatalf("child depth is %d, expected %d", child.Depth, key.Depth+1)
		}
		key = child
	}
}

func TestDepthOverflow(t *testing.T) {
	master := testMaster(t)
	master.Depth = maxDepth

	_, err := master.Child(0)
	if !errors.Is(err, ErrDepthOverflow) {
		t.Fatalf("expected ErrDepthOverflow from a depth-%d private parent but got: %+v", maxDepth, err)
	}

	masterPublic, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	_, err = masterPublic.Child(0)
	if !errors.Is(err, ErrDepthOverflow) {
		t.Fatalf("expected ErrDepthOverflow from a depth-%d public parent but got: %+v", maxDepth, err)
	}

	// One level below the maximum still works.
	master.Depth = maxDepth - 1
	child, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child: %+v", err)
	}
	if child.Depth != maxDepth {
		t.Fatalf("child depth is %d, expected %d", child.Depth, maxDepth)
	}
}

func TestHardenedFlagConsistency(t *testing.T) {
	if HardenedIndexStart != 1<<31 {
		t.Fatalf("HardenedIndexStart is %#x, expected %#x", HardenedIndexStart, uint32(1)<<31)
	}

	master := testMaster(t)

	for _, test := range []struct {
		index    uint32
		hardened bool
	}{
		{0, false},
		{1, false},
		{HardenedIndexStart - 1, false},
		{HardenedIndexStart, true},
		{HardenedIndexStart + 44, true},
	} {
		child, err := master.Child(test.index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}

		if child.ChildNumber != test.index {
			t.Errorf("child number %d is not stored as given (%d)", child.ChildNumber, test.index)
		}

		serialized := child.Serialize()
		topBitSet := serialized[childNumberOffset]&0x80 != 0
		if topBitSet != test.hardened {
			t.Errorf("serialized child number of index %d has hardened bit %t, expected %t",
				test.index, topBitSet, test.hardened)
		}
	}
}

func TestHardenedDerivationFromPublicKey(t *testing.T) {
	master := testMaster(t)
	masterPublic, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}

	_, err = masterPublic.Child(HardenedIndexStart)
	if !errors.Is(err, ErrHardenedFromPublic) {
		t.Fatalf("expected ErrHardenedFromPublic but got: %+v", err)
	}

	_, err = masterPublic.Path("M/44'")
	if !errors.Is(err, ErrHardenedFromPublic) {
		t.Fatalf("expected ErrHardenedFromPublic through a path but got: %+v", err)
	}
}

func TestPublicPrivateConsistency(t *testing.T) {
	master := testMaster(t)
	masterPublic, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}

	for index := uint32(0); index < 10; index++ {
		privateChild, err := master.Child(index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}
		publicOfPrivateChild, err := privateChild.Public()
		if err != nil {
			t.Fatalf("Public: %+v", err)
		}

		publicChild, err := masterPublic.Child(index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}

		if publicOfPrivateChild.String() != publicChild.String() {
			t.Fatalf("index %d: public of private child %s differs from public child %s",
				index, publicOfPrivateChild.String(), publicChild.String())
		}
	}
}

func TestDerivationDeterminism(t *testing.T) {
	master := testMaster(t)

	for _, index := range []uint32{0, 1, HardenedIndexStart} {
		first, err := master.Child(index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}
		second, err := master.Child(index)
		if err != nil {
			t.Fatalf("Child: %+v", err)
		}

		if !bytes.Equal(first.Serialize(), second.Serialize()) {
			t.Fatalf("deriving child %d twice produced different keys", index)
		}
	}
}

func TestNewPublicMasterWithPath(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("DecodeString: %+v", err)
	}

	// Only public ("M/...") path strings are accepted; the result is the
	// projection of the private derivation along the same indexes.
	if _, err := NewPublicMasterWithPath(seed, BitcoinMainnet, "m/0/7"); err == nil {
		t.Fatalf("NewPublicMasterWithPath with a private path string unexpectedly succeeded")
	}

	extendedPublicKey, err := NewPublicMasterWithPath(seed, BitcoinMainnet, "M/0/7")
	if err != nil {
		t.Fatalf("NewPublicMasterWithPath: %+v", err)
	}

	extendedPrivateKey, err := NewMasterWithPath(seed, BitcoinMainnet, "m/0/7")
	if err != nil {
		t.Fatalf("NewMasterWithPath: %+v", err)
	}
	projected, err := extendedPrivateKey.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}

	if extendedPublicKey.String() != projected.String() {
		t.Fatalf("public master path key %s differs from the projected private derivation %s",
			extendedPublicKey.String(), projected.String())
	}
}

func TestFingerprintMatchesParent(t *testing.T) {
	master := testMaster(t)
	child, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child: %+v", err)
	}

	parentFingerprint, err := master.fingerprint()
	if err != nil {
		t.Fatalf("fingerprint: %+v", err)
	}

	if child.ParentFingerprint != parentFingerprint {
		t.Fatalf("child fingerprint %x does not identify its parent %x",
			child.ParentFingerprint, parentFingerprint)
	}
}
