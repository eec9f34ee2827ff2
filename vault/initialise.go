// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// Initialise - create the vault for an asset
//
// the payer becomes the owner and deposits amount into the vault, the
// record deposit is also paid by the payer
func (e *Engine) Initialise(collection account.Account, assetId account.Account, payer account.Account, amount uint64) (*Receipt, error) {
	c := e.Configuration()

	if amount < c.MinimumDeposit || amount > c.MaximumAmount {
		e.log.Debugf("initialise: asset: %s  invalid amount: %d", assetId, amount)
		return nil, fault.ErrInvalidAmount
	}
	if payer.IsZero() {
		return nil, fault.ErrInvalidAccount
	}

	trx, err := e.ledger.Begin()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	asset, err := e.registry.Asset(assetId)
	if nil != err {
		return nil, err
	}
	err = VerifyAssetInCollection(asset, collection)
	if nil != err {
		e.log.Debugf("initialise: asset: %s  collection: %s  error: %s", assetId, collection, err)
		return nil, err
	}

	holding, err := e.registry.HoldingAccount(asset.Holding)
	if nil != err {
		return nil, err
	}
	err = ValidateHoldingAccount(holding, asset.Id, nil)
	if nil != err {
		e.log.Debugf("initialise: asset: %s  holding: %s  error: %s", assetId, asset.Holding, err)
		return nil, err
	}

	vaultAddress, _, err := e.deriver.Derive(collection, asset.Id, asset.Holding)
	if nil != err {
		return nil, err
	}
	if payer == vaultAddress {
		e.log.Debugf("initialise: vault: %s  cannot fund itself", vaultAddress)
		return nil, fault.ErrInvalidAccount
	}

	if nil != trx.GetRecord(vaultAddress) {
		return nil, fault.ErrVaultAlreadyExists
	}

	record := &Record{
		Collection: collection,
		AssetId:    asset.Id,
		Holding:    asset.Holding,
		Owner:      payer,
		Escrow:     0,
	}

	err = trx.CreateRecord(vaultAddress, record.Pack(), payer, c.RecordDeposit)
	if nil != err {
		return nil, err
	}

	err = trx.Transfer(payer, vaultAddress, amount)
	if nil != err {
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	e.log.Infof("initialise: vault: %s  asset: %s  owner: %s  deposit: %d", vaultAddress, asset.Id, payer, amount)

	return &Receipt{
		Operation: OperationInitialise,
		Vault:     vaultAddress,
		Owner:     payer,
		Escrow:    0,
		Amount:    amount,
	}, nil
}
