package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/ctscoin/ctscd/build"
	"github.com/ctscoin/ctscd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "ctscparams.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "ctscparams.log"
	defaultLogLevel       = "info"
)

var (
	// defaultAppDir is the default directory config and logs live in.
	defaultAppDir = btcutil.AppDataDir("ctscparams", false)

	// DefaultConfigFile is the default full path of the config file.
	DefaultConfigFile = filepath.Join(defaultAppDir, defaultConfigFilename)

	defaultLogDir = filepath.Join(defaultAppDir, defaultLogDirname)

	// errConflictingNetworks is returned when more than one network
	// switch is given.
	errConflictingNetworks = errors.New("the testnet, regtest and " +
		"unittest params can't be used together -- choose one of the " +
		"three")
)

// Config defines the configuration options for ctscparams.
//
// See LoadConfig for further details regarding the configuration loading and
// parsing process.
//
//nolint:lll
type Config struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`

	ConfigFile string `long:"configfile" description:"Path to configuration file"`
	LogDir     string `long:"logdir" description:"Directory to log output."`

	MaxLogFiles    int    `long:"maxlogfiles" description:"Maximum logfiles to keep (0 for no rotation)"`
	MaxLogFileSize int    `long:"maxlogfilesize" description:"Maximum logfile size in MB"`
	NoLogFile      bool   `long:"nologfile" description:"Only log to stderr"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <global-level>,<subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`

	TestNet  bool `long:"testnet" description:"Use the test network"`
	RegTest  bool `long:"regtest" description:"Use the regression test network"`
	UnitTest bool `long:"unittest" description:"Use the unit test network"`

	JSON bool `long:"json" description:"Print the parameters as JSON instead of a table"`

	// Network is the network selected by the switches above.
	Network chaincfg.Network `no-flag:"true"`

	// LogRotator is the rotating log file. It is only opened when
	// NoLogFile is not set.
	LogRotator *build.RotatingLogWriter `no-flag:"true"`

	// SubLogMgr owns the loggers of every subsystem.
	SubLogMgr *build.SubLoggerManager `no-flag:"true"`
}

// DefaultConfig returns all default values for the Config struct.
func DefaultConfig() Config {
	rotator := build.NewRotatingLogWriter()

	return Config{
		ConfigFile:     DefaultConfigFile,
		LogDir:         defaultLogDir,
		MaxLogFiles:    build.DefaultMaxLogFiles,
		MaxLogFileSize: build.DefaultMaxLogFileSize,
		DebugLevel:     defaultLogLevel,
		LogRotator:     rotator,
		SubLogMgr: build.NewSubLoggerManager(&build.LogWriter{
			Rotator: rotator,
		}),
	}
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func LoadConfig(args []string) (*Config, error) {
	// Pre-parse the command line options to pick up an alternative config
	// file.
	preCfg := DefaultConfig()
	if _, err := flags.NewParser(&preCfg, flags.Default).ParseArgs(
		args,
	); err != nil {
		return nil, err
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", build.Version(),
			"commit="+build.Commit)
		os.Exit(0)
	}

	// Next, load any additional configuration options from the file.
	var configFileError error
	cfg := preCfg
	configFilePath := CleanAndExpandPath(preCfg.ConfigFile)
	if err := flags.IniParse(configFilePath, &cfg); err != nil {
		// If it's a parsing related error, then we'll return
		// immediately, otherwise we can proceed as possibly the config
		// file doesn't exist which is OK.
		var iniErr *flags.IniError
		if errors.As(err, &iniErr) {
			return nil, err
		}

		configFileError = err
	}

	// Finally, parse the remaining command line options again to ensure
	// they take precedence.
	if _, err := flags.NewParser(&cfg, flags.Default).ParseArgs(
		args,
	); err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	cleanCfg, err := ValidateConfig(cfg, usageMessage)
	if err != nil {
		return nil, err
	}

	// Warn about missing config file only after all other configuration is
	// done. This prevents the warning on help messages and invalid
	// options.
	if configFileError != nil {
		ctscLog.Debugf("%v", configFileError)
	}

	return cleanCfg, nil
}

// ValidateConfig check the given configuration to be sane. This makes sure no
// illegal values or combination of values are set. All file system paths are
// normalized. The cleaned up config is returned on success.
func ValidateConfig(cfg Config, usageMessage string) (*Config, error) {
	cfg.ConfigFile = CleanAndExpandPath(cfg.ConfigFile)
	cfg.LogDir = CleanAndExpandPath(cfg.LogDir)

	cfg.Network = chaincfg.NetworkFromFlags(
		cfg.TestNet, cfg.RegTest, cfg.UnitTest,
	)
	if !cfg.Network.IsValid() {
		return nil, mkErr("%v. %v", errConflictingNetworks,
			usageMessage)
	}

	if cfg.MaxLogFiles < 0 {
		return nil, mkErr("maxlogfiles must not be negative, got %d",
			cfg.MaxLogFiles)
	}
	if cfg.MaxLogFileSize <= 0 {
		return nil, mkErr("maxlogfilesize must be positive, got %d",
			cfg.MaxLogFileSize)
	}

	// Hook up every subsystem logger before the debug level is applied so
	// per subsystem levels can be validated against them.
	SetupLoggers(cfg.SubLogMgr)

	// Parse, validate, and set debug log level(s). This happens before
	// the rotator is started so a bad level leaves nothing to close.
	err := build.ParseAndSetDebugLevels(cfg.DebugLevel, cfg.SubLogMgr)
	if err != nil {
		return nil, mkErr("error parsing debug level: %v. %v", err,
			usageMessage)
	}

	// Initialize logging at the default logging level. Each network gets
	// its own log file.
	if !cfg.NoLogFile {
		logFile := filepath.Join(
			cfg.LogDir, cfg.Network.String(), defaultLogFilename,
		)
		err := cfg.LogRotator.InitLogRotator(
			logFile, cfg.MaxLogFileSize, cfg.MaxLogFiles,
		)
		if err != nil {
			return nil, mkErr("log rotation setup failed: %v", err)
		}
	}

	return &cfg, nil
}

// mkErr formats an error the way the parser errors of the command read.
func mkErr(format string, args ...interface{}) error {
	return fmt.Errorf("validateConfig: "+format, args...)
}

// CleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func CleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		var homeDir string
		u, err := user.Current()
		if err == nil {
			homeDir = u.HomeDir
		} else {
			homeDir = os.Getenv("HOME")
		}

		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
