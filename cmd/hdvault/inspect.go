package main

import (
	"fmt"

	"github.com/hdvault/hdvault/bip32"
)

func inspect(conf *inspectConfig) error {
	extPrv, extPub, err := bip32.DeserializeExtendedKey(conf.Key, conf.Versions())
	if err != nil {
		return err
	}

	if extPrv != nil {
		fmt.Println("Type: extended private key")
		printLineage(extPrv.Depth, extPrv.ParentFingerprint, extPrv.ChildNumber, extPrv.ChainCode)

		counterpart, err := extPrv.Public()
		if err != nil {
			return err
		}
		fmt.Printf("Public counterpart:\n%s\n", counterpart)
		return nil
	}

	fmt.Println("Type: extended public key")
	printLineage(extPub.Depth, extPub.ParentFingerprint, extPub.ChildNumber, extPub.ChainCode)

	serializedPoint, err := extPub.PublicKey().Serialize()
	if err != nil {
		return err
	}
	fmt.Printf("Compressed point: %x\n", serializedPoint[:])
	return nil
}

func printLineage(depth uint8, parentFingerprint [4]byte, childNumber uint32, chainCode [32]byte) {
	fmt.Printf("Depth: %d\n", depth)
	fmt.Printf("Parent fingerprint: %x\n", parentFingerprint)
	if childNumber >= bip32.HardenedIndexStart {
		fmt.Printf("Child number: %d' (hardened)\n", childNumber-bip32.HardenedIndexStart)
	} else {
		fmt.Printf("Child number: %d\n", childNumber)
	}
	fmt.Printf("Chain code: %x\n", chainCode)
}
