package main

import (
	"os"

	"github.com/hdvault/hdvault/infrastructure/logger"
	"github.com/pkg/errors"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("HDVT")
)

func initLog(common *commonFlags) error {
	level, ok := logger.LevelFromString(common.DebugLevel)
	if !ok {
		return errors.Errorf("%q is not a valid debug level", common.DebugLevel)
	}
	log.SetLevel(level)

	err := backendLog.AddLogWriter(os.Stderr, level)
	if err != nil {
		return err
	}

	if common.LogFile != "" {
		err := backendLog.AddLogFile(common.LogFile, logger.LevelDebug)
		if err != nil {
			return err
		}
	}

	return backendLog.Run()
}
