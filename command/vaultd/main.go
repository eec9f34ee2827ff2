// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/background"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/registry"
	"github.com/bitmark-inc/vaultd/rpc"
	"github.com/bitmark-inc/vaultd/rpc/server"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("allow credit: %v", theConfiguration.AllowCredit)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	theLedger := ledger.New(logger.New("ledger"))

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theLedger) {
		return
	}

	policy, err := theConfiguration.Vault.Policy()
	if nil != err {
		log.Criticalf("vault policy error: %s", err)
		exitwithstatus.Message("vault policy error: %s", err)
	}
	log.Infof("vault program: %s", policy.Program)

	theRegistry := registry.New(logger.New("registry"))
	engine, err := vault.New(
		logger.New("vault"),
		policy,
		theLedger,
		theRegistry,
		registry.NewVerifier(theRegistry),
	)
	if nil != err {
		log.Criticalf("vault initialise error: %s", err)
		exitwithstatus.Message("vault initialise error: %s", err)
	}

	// start the RPC server
	log.Info("initialise rpc")
	services := server.Services{
		Engine:      engine,
		Balances:    theLedger,
		Registrar:   theRegistry,
		AllowCredit: theConfiguration.AllowCredit,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// reload the vault policy when the configuration changes
	watcher, err := newPolicyWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), engine)
	if nil != err {
		log.Criticalf("file watcher setup error: %s", err)
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	processes := background.Processes{
		watcher,
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C SIGINT
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	log.Info("shutting down…")
}
