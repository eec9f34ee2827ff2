// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/counter"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	"github.com/bitmark-inc/vaultd/vault"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Policy - source of the active vault policy
type Policy interface {
	Configuration() vault.Configuration
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Policy  Policy
	counter *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, policy Policy) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Policy:  policy,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string     `json:"version"`
	Uptime  string     `json:"uptime"`
	RPCs    uint64     `json:"rpcs"`
	Policy  PolicyInfo `json:"policy"`
}

// PolicyInfo - the vault policy currently in force
type PolicyInfo struct {
	Program          account.Account `json:"program"`
	FeePercentage    uint64          `json:"feePercentage"`
	MaximumAmount    uint64          `json:"maximumAmount,string"`
	MinimumDeposit   uint64          `json:"minimumDeposit,string"`
	RecordDeposit    uint64          `json:"recordDeposit,string"`
	OperationTimeout string          `json:"operationTimeout"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	c := node.Policy.Configuration()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Policy = PolicyInfo{
		Program:          c.Program,
		FeePercentage:    c.FeePercentage,
		MaximumAmount:    c.MaximumAmount,
		MinimumDeposit:   c.MinimumDeposit,
		RecordDeposit:    c.RecordDeposit,
		OperationTimeout: c.OperationTimeout.String(),
	}
	return nil
}
