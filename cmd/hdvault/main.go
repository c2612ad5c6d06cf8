package main

import (
	"github.com/hdvault/hdvault/version"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config, commonConfig := parseCommandLine()

	err := initLog(commonConfig)
	if err != nil {
		printErrorAndExit(err)
	}
	defer backendLog.Close()
	log.Debugf("Version %s", version.Version())

	switch subCmd {
	case createSubCmd:
		err = create(config.(*createConfig))
	case deriveSubCmd:
		err = derive(config.(*deriveConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	default:
		err = errors.Errorf("unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
