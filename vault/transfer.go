// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// TransferOwnership - record a new owner for the vault
//
// the custody verifier must confirm that newOwner holds the asset
func (e *Engine) TransferOwnership(vaultAddress account.Account, newOwner account.Account) (*Receipt, error) {
	if newOwner.IsZero() || newOwner == vaultAddress {
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

	err = e.verifier.VerifyCustody(record, newOwner)
	if nil != err {
		e.log.Debugf("transfer: vault: %s  new owner: %s  custody error: %s", vaultAddress, newOwner, err)
		return nil, fault.ErrVaultOwnerMismatch
	}

	previous := record.Owner
	record.Owner = newOwner

	err = trx.PutRecord(vaultAddress, record.Pack())
	if nil != err {
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	e.log.Infof("transfer: vault: %s  owner: %s -> %s  escrow: %d", vaultAddress, previous, newOwner, record.Escrow)

	return &Receipt{
		Operation: OperationTransferOwnership,
		Vault:     vaultAddress,
		Owner:     newOwner,
		Escrow:    record.Escrow,
	}, nil
}
