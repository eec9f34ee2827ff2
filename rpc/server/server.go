// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/rpc/ledger"
	"github.com/bitmark-inc/vaultd/rpc/node"
	"github.com/bitmark-inc/vaultd/rpc/registry"
	"github.com/bitmark-inc/vaultd/rpc/vaults"
)

// Services - the back ends for the RPC services
type Services struct {
	Engine      vaults.Engine
	Balances    ledger.Balances
	Registrar   registry.Registrar
	AllowCredit bool
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(vaults.New(log, services.Engine))
	_ = server.Register(ledger.New(log, services.Balances, services.AllowCredit))
	_ = server.Register(registry.New(log, services.Registrar))
	_ = server.Register(node.New(log, start, version, rpcCount, services.Engine))

	return server
}
