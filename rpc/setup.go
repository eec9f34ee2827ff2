// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/certificate"
	"github.com/bitmark-inc/vaultd/rpc/listeners"
	"github.com/bitmark-inc/vaultd/rpc/server"
	"github.com/bitmark-inc/vaultd/util"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
//
// certificate and private key in the configuration are file names
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string, services server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	pemCertificate, err := util.ReadTextFile(rpcConfiguration.Certificate)
	if nil != err {
		log.Errorf("read certificate: %q  error: %s", rpcConfiguration.Certificate, err)
		return err
	}
	pemKey, err := util.ReadTextFile(rpcConfiguration.PrivateKey)
	if nil != err {
		log.Errorf("read private key: %q  error: %s", rpcConfiguration.PrivateKey, err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, pemCertificate, pemKey)
	if nil != err {
		return err
	}

	// servers
	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, services),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Addresses - bound listener addresses
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}
	return globalData.listener.Addresses()
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}
