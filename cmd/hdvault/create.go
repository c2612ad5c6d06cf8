package main

import (
	"fmt"

	"github.com/hdvault/hdvault/infrastructure/logger"
	"github.com/hdvault/hdvault/libhdvault"
)

func create(conf *createConfig) error {
	defer logger.LogAndMeasureExecutionTime(log, "create")()

	mnemonic, err := libhdvault.CreateMnemonic()
	if err != nil {
		return err
	}

	extendedPrivateKey, err := libhdvault.ExtendedKeyFromMnemonic(
		mnemonic, conf.Passphrase, conf.Path, conf.Versions())
	if err != nil {
		return err
	}

	extendedPublicKey, err := extendedPrivateKey.Public()
	if err != nil {
		return err
	}

	log.Debugf("Created a new key tree at depth %d", extendedPrivateKey.Depth)

	fmt.Printf("Mnemonic phrase (keep it secret, it is the root of all keys):\n%s\n\n", mnemonic)
	fmt.Printf("Extended private key at %s:\n%s\n\n", conf.Path, extendedPrivateKey)
	fmt.Printf("Extended public key at %s:\n%s\n", conf.Path, extendedPublicKey)
	return nil
}
