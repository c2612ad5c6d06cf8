package main

import (
	"os"

	"github.com/hdvault/hdvault/bip32"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	createSubCmd  = "create"
	deriveSubCmd  = "derive"
	inspectSubCmd = "inspect"
)

type commonFlags struct {
	Testnet    bool   `long:"testnet" description:"Use the testnet extended key versions (tprv/tpub)"`
	LogFile    string `long:"logfile" description:"Write logs to this file in addition to stderr"`
	DebugLevel string `long:"debuglevel" short:"d" default:"info" description:"Logging level: trace, debug, info, warn, error, critical or off"`
}

// Versions returns the extended key version pair of the selected network.
func (cf *commonFlags) Versions() bip32.VersionPair {
	if cf.Testnet {
		return bip32.BitcoinTestnet
	}

	return bip32.BitcoinMainnet
}

type createConfig struct {
	Path       string `long:"path" short:"p" default:"m/44'/0'/0'" description:"Derivation path of the printed keys"`
	Passphrase string `long:"passphrase" description:"Optional BIP39 passphrase protecting the seed"`
	commonFlags
}

type deriveConfig struct {
	Key          string `long:"key" short:"k" description:"Extended private or public key to derive from"`
	FromMnemonic bool   `long:"from-mnemonic" description:"Prompt for a mnemonic phrase instead of passing --key"`
	Passphrase   string `long:"passphrase" description:"Optional BIP39 passphrase, used together with --from-mnemonic"`
	Path         string `long:"path" short:"p" required:"true" description:"Derivation path, e.g. m/44'/0'/0'/0/7 or M/0/7"`
	commonFlags
}

type inspectConfig struct {
	Key string `long:"key" short:"k" required:"true" description:"Extended private or public key to inspect"`
	commonFlags
}

func parseCommandLine() (subCommand string, config interface{}, common *commonFlags) {
	parser := flags.NewParser(nil, flags.PrintErrors|flags.HelpFlag)

	createConf := &createConfig{}
	_, err := parser.AddCommand(createSubCmd, "Create a new key tree",
		"Generates a mnemonic phrase and prints the extended key pair at the given derivation path", createConf)
	if err != nil {
		printErrorAndExit(err)
	}

	deriveConf := &deriveConfig{}
	_, err = parser.AddCommand(deriveSubCmd, "Derive a descendant key",
		"Derives the descendant of an extended key (or of a mnemonic phrase) along a derivation path", deriveConf)
	if err != nil {
		printErrorAndExit(err)
	}

	inspectConf := &inspectConfig{}
	_, err = parser.AddCommand(inspectSubCmd, "Decode an extended key",
		"Decodes an extended key and prints its place in the key tree", inspectConf)
	if err != nil {
		printErrorAndExit(err)
	}

	_, err = parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil, nil
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		return createSubCmd, createConf, &createConf.commonFlags
	case deriveSubCmd:
		return deriveSubCmd, deriveConf, &deriveConf.commonFlags
	case inspectSubCmd:
		return inspectSubCmd, inspectConf, &inspectConf.commonFlags
	}

	return parser.Command.Active.Name, nil, nil
}
