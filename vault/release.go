// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// Release - pay out the escrow and close the vault
//
// only allowed once the asset is back in the custody of its collection;
// lastOwner receives the escrow and then the remaining backing balance
// and record deposit when the record is closed
func (e *Engine) Release(vaultAddress account.Account, lastOwner account.Account, collection account.Account) (*Receipt, error) {
	if lastOwner.IsZero() || lastOwner == vaultAddress {
		return nil, fault.ErrInvalidAccount
	}

	trx, err := e.ledger.Begin()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	record, err := load(trx, vaultAddress)
	if nil != err {
		return nil, err
	}

	if record.Collection != collection {
		e.log.Debugf("release: vault: %s  collection: %s  expected: %s", vaultAddress, collection, record.Collection)
		return nil, fault.ErrNotInCollection
	}

	holding, err := e.registry.HoldingAccount(record.Holding)
	if nil != err {
		return nil, err
	}
	if !IsInCollectionCustody(holding, record.AssetId, collection) {
		e.log.Debugf("release: vault: %s  custodian: %s  is not collection: %s", vaultAddress, holding.Owner, collection)
		return nil, fault.ErrNotInCollection
	}

	if lastOwner != record.Owner {
		e.log.Debugf("release: vault: %s  last owner: %s  recorded owner: %s", vaultAddress, lastOwner, record.Owner)
		return nil, fault.ErrVaultOwnerMismatch
	}

	released := record.Escrow
	record.Escrow = 0
	err = trx.PutRecord(vaultAddress, record.Pack())
	if nil != err {
		return nil, err
	}

	if released > 0 {
		err = trx.Transfer(vaultAddress, lastOwner, released)
		if nil != err {
			return nil, err
		}
	}

	refunded, err := trx.CloseRecord(vaultAddress, lastOwner)
	if nil != err {
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	e.log.Infof("release: vault: %s  owner: %s  released: %d  refunded: %d", vaultAddress, lastOwner, released, refunded)

	return &Receipt{
		Operation: OperationRelease,
		Vault:     vaultAddress,
		Owner:     lastOwner,
		Escrow:    0,
		Released:  released,
		Refunded:  refunded,
	}, nil
}
