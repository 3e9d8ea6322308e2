package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/infoscript/domain/infoscript"
	"github.com/kaspanet/infoscript/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	verifySubCmd      = "verify"
	importCellsSubCmd = "import-cells"
	lockHashSubCmd    = "lock-hash"
	decodeInfoSubCmd  = "decode-info"
	versionSubCmd     = "version"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "infoverify.log"
	defaultErrLogFilename = "infoverify_err.log"
)

// CommonFlags are the flags every sub-command accepts.
type CommonFlags struct {
	LogLevel string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogDir   string `long:"logdir" description:"Directory to write log files to, in addition to stdout"`
}

// VariantFlags select the info script variant to verify with.
type VariantFlags struct {
	Variant string `long:"variant" description:"Info script variant {direct-lock, type-hash, descriptor-hash, final}"`
}

func (vf *VariantFlags) resolveVariant() (*infoscript.Variant, error) {
	if vf.Variant == "" {
		return infoscript.DefaultVariant, nil
	}
	return infoscript.VariantByName(vf.Variant)
}

type verifyConfig struct {
	Transaction  string `long:"transaction" short:"t" description:"Path of the transaction JSON file" required:"true"`
	InfoCodeHash string `long:"info-code-hash" short:"c" description:"Code hash of the deployed info script (hex)" required:"true"`
	MaxCycles    uint64 `long:"max-cycles" description:"Cycle budget of each info script run, 0 for no limit"`
	CellStore    string `long:"cellstore" description:"Directory of a cell store to resolve unresolved inputs from"`
	VariantFlags
	CommonFlags
}

type importCellsConfig struct {
	Transaction string `long:"transaction" short:"t" description:"Path of the transaction JSON file" required:"true"`
	TxHash      string `long:"tx-hash" description:"Hash of the transaction (hex)" required:"true"`
	CellStore   string `long:"cellstore" description:"Directory of the cell store" required:"true"`
	CommonFlags
}

type lockHashConfig struct {
	Address string `long:"address" short:"a" description:"Address of the lock (ckb1... or ckt1...)" required:"true"`
	CommonFlags
}

type decodeInfoConfig struct {
	Data string `long:"data" short:"d" description:"Info cell data (hex)" required:"true"`
	CommonFlags
}

type versionConfig struct {
	CommonFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	parser := flags.NewParser(&struct{}{}, flags.PrintErrors|flags.HelpFlag)

	verifyConf := &verifyConfig{MaxCycles: infoscript.DefaultMaxCycles}
	parser.AddCommand(verifySubCmd, "Verifies the info cells of a transaction",
		"Runs the info script on every info cell group of a transaction", verifyConf)

	importCellsConf := &importCellsConfig{}
	parser.AddCommand(importCellsSubCmd, "Imports the outputs of a transaction into a cell store",
		"Stores the outputs of a transaction as live cells, so later transactions can spend them by outpoint", importCellsConf)

	lockHashConf := &lockHashConfig{}
	parser.AddCommand(lockHashSubCmd, "Prints the lock hash of an address",
		"Prints the lock hash of an address, as info script args and token owners use it", lockHashConf)

	decodeInfoConf := &decodeInfoConfig{}
	parser.AddCommand(decodeInfoSubCmd, "Decodes token info cell data",
		"Checks the structure of token info cell data and prints its fields", decodeInfoConf)

	versionConf := &versionConfig{}
	parser.AddCommand(versionSubCmd, "Prints the version",
		"Prints the tool version and the info script variants it knows", versionConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	var common *CommonFlags
	switch parser.Command.Active.Name {
	case verifySubCmd:
		common, config = &verifyConf.CommonFlags, verifyConf
	case importCellsSubCmd:
		common, config = &importCellsConf.CommonFlags, importCellsConf
	case lockHashSubCmd:
		common, config = &lockHashConf.CommonFlags, lockHashConf
	case decodeInfoSubCmd:
		common, config = &decodeInfoConf.CommonFlags, decodeInfoConf
	case versionSubCmd:
		common, config = &versionConf.CommonFlags, versionConf
	}

	err = initLog(common)
	if err != nil {
		printErrorAndExit(err)
	}
	return parser.Command.Active.Name, config
}

func initLog(common *CommonFlags) error {
	if common.LogLevel == "" {
		common.LogLevel = defaultLogLevel
	}
	level, ok := logger.LevelFromString(common.LogLevel)
	if !ok {
		return errors.Errorf("invalid log level %s, want one of %s",
			common.LogLevel, strings.Join(logger.LevelNames(), ", "))
	}

	if common.LogDir != "" {
		err := logger.BackendLog.AddLogFile(filepath.Join(common.LogDir, defaultLogFilename), logger.LevelTrace)
		if err != nil {
			return err
		}
		err = logger.BackendLog.AddLogFile(filepath.Join(common.LogDir, defaultErrLogFilename), logger.LevelWarn)
		if err != nil {
			return err
		}
	}
	logger.InitLogStdout(level)
	return logger.SetLogLevels(common.LogLevel)
}
