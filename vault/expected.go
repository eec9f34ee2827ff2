// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
)

// Asset - registry entry for a unique asset
type Asset struct {
	Id         account.Account `json:"id"`
	Collection account.Account `json:"collection"`
	Holding    account.Account `json:"holdingAccount"`
}

// HoldingAccount - the account that custodies the asset's single unit
type HoldingAccount struct {
	Address account.Account `json:"address"`
	AssetId account.Account `json:"assetId"`
	Owner   account.Account `json:"owner"`
}

// Ledger - base currency balances and record storage
type Ledger interface {
	// blocks until no other transaction is open
	Begin() (LedgerTransaction, error)

	// committed record bytes, nil if there is no live record
	GetRecord(account.Account) []byte
}

// LedgerTransaction - all changes are applied by Commit or none are
type LedgerTransaction interface {
	Balance(account.Account) uint64

	// fails with fault.ErrInsufficientFunds
	Transfer(from account.Account, to account.Account, amount uint64) error

	// the deposit is debited from payer and held with the record
	//
	// fails with fault.ErrVaultAlreadyExists or fault.ErrInsufficientFunds
	CreateRecord(address account.Account, data []byte, payer account.Account, deposit uint64) error

	// nil if there is no live record
	GetRecord(account.Account) []byte
	PutRecord(address account.Account, data []byte) error

	// deletes the record, leaves a tombstone and pays the backing
	// balance plus deposit to refundTo, returns the amount paid
	CloseRecord(address account.Account, refundTo account.Account) (uint64, error)
	IsClosed(account.Account) bool

	Commit() error

	// no-op after Commit
	Abort()
}

// Registry - asset and collection facts
type Registry interface {
	Asset(assetId account.Account) (*Asset, error)
	HoldingAccount(address account.Account) (*HoldingAccount, error)
	AttachPlugin(target account.Account, plugin account.Account, authority account.Account) error
}

// CustodyVerifier - confirms that newOwner currently holds the asset
// of the vault
type CustodyVerifier interface {
	VerifyCustody(record *Record, newOwner account.Account) error
}
