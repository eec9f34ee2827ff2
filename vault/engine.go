// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/address"
	"github.com/bitmark-inc/vaultd/fault"
)

// Engine - runs the vault lifecycle operations
//
// safe for concurrent use, the ledger serialises transactions
type Engine struct {
	log           *logger.L
	ledger        Ledger
	registry      Registry
	verifier      CustodyVerifier
	deriver       *address.Deriver
	configuration atomic.Value
}

// New - create an engine
//
// a custody verifier is mandatory
func New(log *logger.L, configuration Configuration, ledger Ledger, registry Registry, verifier CustodyVerifier) (*Engine, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == ledger || nil == registry {
		return nil, fault.ErrMissingParameters
	}
	if nil == verifier {
		return nil, fault.ErrMissingCustodyVerifier
	}
	if err := configuration.Validate(); nil != err {
		return nil, err
	}

	deriver, err := address.NewDeriver(configuration.Program, 0)
	if nil != err {
		return nil, err
	}

	e := &Engine{
		log:      log,
		ledger:   ledger,
		registry: registry,
		verifier: verifier,
		deriver:  deriver,
	}
	e.configuration.Store(configuration)
	return e, nil
}

// Configuration - the current policy
func (e *Engine) Configuration() Configuration {
	return e.configuration.Load().(Configuration)
}

// SetConfiguration - replace the policy
//
// operations already running keep the policy they started with
func (e *Engine) SetConfiguration(configuration Configuration) error {
	if err := configuration.Validate(); nil != err {
		return err
	}
	if configuration.Program != e.deriver.Program() {
		return fault.ErrProgramChanged
	}
	e.configuration.Store(configuration)
	e.log.Infof("policy: fee: %d%%  maximum: %d  minimum deposit: %d  record deposit: %d",
		configuration.FeePercentage,
		configuration.MaximumAmount,
		configuration.MinimumDeposit,
		configuration.RecordDeposit,
	)
	return nil
}

// Derive - the vault address for an asset
func (e *Engine) Derive(collection account.Account, assetId account.Account, holding account.Account) (account.Account, uint8, error) {
	return e.deriver.Derive(collection, assetId, holding)
}

// Get - read a live vault record
//
// a closed vault no longer has a record and is reported as not found
func (e *Engine) Get(vaultAddress account.Account) (*Record, error) {
	packed := e.ledger.GetRecord(vaultAddress)
	if nil == packed {
		return nil, fault.ErrVaultNotFound
	}
	return PackedRecord(packed).Unpack()
}

// Find - derive the address of an asset's vault and read it
func (e *Engine) Find(collection account.Account, assetId account.Account, holding account.Account) (account.Account, *Record, error) {
	vaultAddress, _, err := e.Derive(collection, assetId, holding)
	if nil != err {
		return account.Zero, nil, err
	}
	r, err := e.Get(vaultAddress)
	return vaultAddress, r, err
}

// read the record for a mutating operation
func load(trx LedgerTransaction, vaultAddress account.Account) (*Record, error) {
	packed := trx.GetRecord(vaultAddress)
	if nil == packed {
		if trx.IsClosed(vaultAddress) {
			return nil, fault.ErrVaultClosed
		}
		return nil, fault.ErrVaultNotFound
	}
	return PackedRecord(packed).Unpack()
}
