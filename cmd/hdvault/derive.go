package main

import (
	"fmt"
	"strings"

	"github.com/hdvault/hdvault/bip32"
	"github.com/hdvault/hdvault/infrastructure/logger"
	"github.com/hdvault/hdvault/libhdvault"
	"github.com/pkg/errors"
)

func derive(conf *deriveConfig) error {
	defer logger.LogAndMeasureExecutionTime(log, "derive")()

	if conf.FromMnemonic {
		return deriveFromMnemonic(conf)
	}

	if conf.Key == "" {
		return errors.Errorf("either --key or --from-mnemonic must be given")
	}

	extPrv, extPub, err := bip32.DeserializeExtendedKey(conf.Key, conf.Versions())
	if err != nil {
		return err
	}

	if extPrv != nil {
		return deriveFromPrivate(extPrv, conf.Path)
	}

	descendant, err := extPub.Path(conf.Path)
	if err != nil {
		return err
	}

	fmt.Printf("Extended public key at %s:\n%s\n", conf.Path, descendant)
	return nil
}

func deriveFromMnemonic(conf *deriveConfig) error {
	mnemonic, err := promptMnemonic()
	if err != nil {
		return err
	}

	extendedPrivateKey, err := libhdvault.ExtendedKeyFromMnemonic(
		mnemonic, conf.Passphrase, conf.Path, conf.Versions())
	if err != nil {
		return err
	}

	return printDerived(extendedPrivateKey, conf.Path)
}

func deriveFromPrivate(extPrv *bip32.ExtendedPrivateKey, pathString string) error {
	// A public-side path against a private key means the caller only wants
	// the public descendant.
	if strings.HasPrefix(pathString, "M") {
		descendant, err := extPrv.PathPublic(pathString)
		if err != nil {
			return err
		}

		fmt.Printf("Extended public key at %s:\n%s\n", pathString, descendant)
		return nil
	}

	descendant, err := extPrv.Path(pathString)
	if err != nil {
		return err
	}

	return printDerived(descendant, pathString)
}

func printDerived(extPrv *bip32.ExtendedPrivateKey, pathString string) error {
	extPub, err := extPrv.Public()
	if err != nil {
		return err
	}

	fmt.Printf("Extended private key at %s:\n%s\n\n", pathString, extPrv)
	fmt.Printf("Extended public key at %s:\n%s\n", pathString, extPub)
	return nil
}
