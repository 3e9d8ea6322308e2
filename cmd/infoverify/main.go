package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/infoscript/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case verifySubCmd:
		err = verify(config.(*verifyConfig))
	case importCellsSubCmd:
		err = importCells(config.(*importCellsConfig))
	case lockHashSubCmd:
		err = lockHash(config.(*lockHashConfig))
	case decodeInfoSubCmd:
		err = decodeInfo(config.(*decodeInfoConfig))
	case versionSubCmd:
		err = printVersion(config.(*versionConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
	logger.BackendLog.Close()
}

func printErrorAndExit(err error) {
	if logger.BackendLog.IsRunning() {
		logger.BackendLog.Close()
	}
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
