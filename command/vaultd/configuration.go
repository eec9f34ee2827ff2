// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/configuration"
	"github.com/bitmark-inc/vaultd/rpc/listeners"
	"github.com/bitmark-inc/vaultd/util"
	"github.com/bitmark-inc/vaultd/vault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultVaultDatabase    = "vaultd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "vaultd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// VaultType - vault policy as written in the configuration file
type VaultType struct {
	Program          string `gluamapper:"program" json:"program"`
	FeePercentage    uint64 `gluamapper:"fee_percentage" json:"fee_percentage"`
	MaximumAmount    uint64 `gluamapper:"maximum_amount" json:"maximum_amount"`
	MinimumDeposit   uint64 `gluamapper:"minimum_deposit" json:"minimum_deposit"`
	RecordDeposit    uint64 `gluamapper:"record_deposit" json:"record_deposit"`
	OperationTimeout string `gluamapper:"operation_timeout" json:"operation_timeout"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	AllowCredit   bool         `gluamapper:"allow_credit" json:"allow_credit"`

	Vault     VaultType                  `gluamapper:"vault" json:"vault"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// Policy - convert the configured values to a validated vault policy
func (v VaultType) Policy() (vault.Configuration, error) {
	if "" == v.Program {
		return vault.Configuration{}, fmt.Errorf("vault program is not set")
	}
	program, err := account.FromBase58(v.Program)
	if nil != err {
		return vault.Configuration{}, fmt.Errorf("vault program: %q  error: %s", v.Program, err)
	}

	timeout, err := time.ParseDuration(v.OperationTimeout)
	if nil != err {
		return vault.Configuration{}, fmt.Errorf("vault operation_timeout: %q  error: %s", v.OperationTimeout, err)
	}

	c := vault.Configuration{
		FeePercentage:    v.FeePercentage,
		MaximumAmount:    v.MaximumAmount,
		MinimumDeposit:   v.MinimumDeposit,
		RecordDeposit:    v.RecordDeposit,
		OperationTimeout: timeout,
		Program:          program,
	}
	if err := c.Validate(); nil != err {
		return vault.Configuration{}, err
	}
	return c, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultVaultDatabase,
		},

		Vault: VaultType{
			FeePercentage:    vault.DefaultFeePercentage,
			MaximumAmount:    vault.DefaultMaximumAmount,
			MinimumDeposit:   vault.DefaultMinimumDeposit,
			RecordDeposit:    vault.DefaultRecordDeposit,
			OperationTimeout: vault.DefaultOperationTimeout.String(),
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// only read the vault policy, used when the file changes
func readPolicy(configurationFileName string) (vault.Configuration, error) {
	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return vault.Configuration{}, err
	}
	return options.Vault.Policy()
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// the policy must be valid before anything starts
	if _, err := options.Vault.Policy(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
