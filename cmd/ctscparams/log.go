package main

import (
	"github.com/btcsuite/btclog"
	"github.com/ctscoin/ctscd/build"
	"github.com/ctscoin/ctscd/chaincfg"
)

// Subsystem defines the logging code for the command itself.
const Subsystem = "CTSC"

// ctscLog is the logger of the command. It stays disabled until SetupLoggers
// has run.
var ctscLog = build.NewSubLogger(Subsystem, nil)

// SetupLoggers initializes all package-global logger variables.
func SetupLoggers(root *build.SubLoggerManager) {
	ctscLog = build.NewSubLogger(Subsystem, root.GenSubLogger)

	AddSubLogger(root, chaincfg.Subsystem, chaincfg.UseLogger)
}

// AddSubLogger is a helper method to conveniently create and register the
// logger of one or more sub systems.
func AddSubLogger(root *build.SubLoggerManager, subsystem string,
	useLoggers ...func(btclog.Logger)) {

	// Create and register just a single logger to prevent them from
	// overwriting each other internally.
	logger := root.RegisterSubLogger(subsystem, func(btclog.Logger) {})
	for _, useLogger := range useLoggers {
		useLogger(logger)
	}
}
