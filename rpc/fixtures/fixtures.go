// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed accounts for building requests
var (
	Program    = account.Account{0x10, 0x01}
	Collection = account.Account{0x20, 0x02}
	AssetId    = account.Account{0x30, 0x03}
	Holding    = account.Account{0x40, 0x04}
	Payer      = account.Account{0x50, 0x05}
	Owner      = account.Account{0x60, 0x06}
	Creator    = account.Account{0x70, 0x07}
	Authority  = account.Account{0x80, 0x08}
	Vault      = account.Account{0x90, 0x09}
)

var (
	once        sync.Once
	certificate string
	key         string
)

// SetupTestLogger - initialise a logger writing to the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - close logger and remove the test directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Certificate - PEM encoded self-signed certificate for 127.0.0.1
func Certificate() string {
	once.Do(generate)
	return certificate
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	once.Do(generate)
	return key
}

func generate() {
	validUntil := time.Now().Add(24 * time.Hour)
	c, k, err := certgen.NewTLSCertPair("vaultd test certificate", validUntil, true, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	certificate = string(c)
	key = string(k)
}
