// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/royalty"
)

// ApplyRoyalty - split a payment between the vault escrow and the creator
//
// both shares are paid by payer, the vault share is added to the escrow
func (e *Engine) ApplyRoyalty(vaultAddress account.Account, amount uint64, creator account.Account, payer account.Account) (*Receipt, error) {
	c := e.Configuration()

	if 0 == amount || amount > c.MaximumAmount {
		e.log.Debugf("royalty: vault: %s  invalid amount: %d", vaultAddress, amount)
		return nil, fault.ErrInvalidAmount
	}
	if creator.IsZero() || payer.IsZero() {
		return nil, fault.ErrInvalidAccount
	}

	// the vault cannot pay or receive its own royalty
	if payer == vaultAddress || creator == vaultAddress {
		e.log.Debugf("royalty: vault: %s  is payer or creator", vaultAddress)
		return nil, fault.ErrInvalidAccount
	}

	toVault, toCreator, err := royalty.Split(amount, c.FeePercentage)
	if nil != err {
		return nil, err
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

	record.Escrow, err = royalty.Accumulate(record.Escrow, toVault)
	if nil != err {
		e.log.Debugf("royalty: vault: %s  escrow: %d  add: %d  overflow", vaultAddress, record.Escrow, toVault)
		return nil, err
	}

	err = trx.PutRecord(vaultAddress, record.Pack())
	if nil != err {
		return nil, err
	}

	if toVault > 0 {
		err = trx.Transfer(payer, vaultAddress, toVault)
		if nil != err {
			return nil, err
		}
	}
	if toCreator > 0 {
		err = trx.Transfer(payer, creator, toCreator)
		if nil != err {
			return nil, err
		}
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	e.log.Infof("royalty: vault: %s  amount: %d  to vault: %d  to creator: %s %d  escrow: %d", vaultAddress, amount, toVault, creator, toCreator, record.Escrow)

	return &Receipt{
		Operation: OperationApplyRoyalty,
		Vault:     vaultAddress,
		Owner:     record.Owner,
		Escrow:    record.Escrow,
		Amount:    amount,
		ToVault:   toVault,
		ToCreator: toCreator,
	}, nil
}
