// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/royalty"
	"github.com/bitmark-inc/vaultd/storage"
)

type transaction struct {
	log *logger.L
	trx storage.Transaction
}

func (t *transaction) Balance(a account.Account) uint64 {
	balance, _ := t.trx.GetN(storage.Pool.Balances, a[:])
	return balance
}

// zero balances are removed
func (t *transaction) setBalance(a account.Account, balance uint64) {
	if 0 == balance {
		t.trx.Delete(storage.Pool.Balances, a[:])
		return
	}
	t.trx.PutN(storage.Pool.Balances, a[:], balance)
}

func (t *transaction) debit(a account.Account, amount uint64) error {
	balance := t.Balance(a)
	if balance < amount {
		return fault.ErrInsufficientFunds
	}
	t.setBalance(a, balance-amount)
	return nil
}

func (t *transaction) credit(a account.Account, amount uint64) error {
	balance, err := royalty.Accumulate(t.Balance(a), amount)
	if nil != err {
		return err
	}
	t.setBalance(a, balance)
	return nil
}

// Transfer - move units between two accounts
func (t *transaction) Transfer(from account.Account, to account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}
	if from == to {
		if t.Balance(from) < amount {
			return fault.ErrInsufficientFunds
		}
		return nil
	}

	err := t.debit(from, amount)
	if nil != err {
		return err
	}
	err = t.credit(to, amount)
	if nil != err {
		return err
	}

	t.log.Debugf("transfer: %s -> %s  amount: %d", from, to, amount)
	return nil
}

// CreateRecord - store a new record, the deposit is taken from payer
func (t *transaction) CreateRecord(address account.Account, data []byte, payer account.Account, deposit uint64) error {
	if t.trx.Has(storage.Pool.Records, address[:]) {
		return fault.ErrVaultAlreadyExists
	}

	err := t.debit(payer, deposit)
	if nil != err {
		return err
	}

	t.trx.Put(storage.Pool.Records, address[:], packRecord(deposit, data))

	// a new lifecycle at a previously closed address
	t.trx.Delete(storage.Pool.Closed, address[:])
	return nil
}

func (t *transaction) GetRecord(address account.Account) []byte {
	return recordData(t.trx.Get(storage.Pool.Records, address[:]))
}

// PutRecord - replace the data of a live record
func (t *transaction) PutRecord(address account.Account, data []byte) error {
	packed := t.trx.Get(storage.Pool.Records, address[:])
	if nil == packed {
		if t.IsClosed(address) {
			return fault.ErrVaultClosed
		}
		return fault.ErrVaultNotFound
	}
	t.trx.Put(storage.Pool.Records, address[:], packRecord(recordDeposit(packed), data))
	return nil
}

// CloseRecord - delete a record and refund its deposit and balance
func (t *transaction) CloseRecord(address account.Account, refundTo account.Account) (uint64, error) {
	packed := t.trx.Get(storage.Pool.Records, address[:])
	if nil == packed {
		if t.IsClosed(address) {
			return 0, fault.ErrVaultClosed
		}
		return 0, fault.ErrVaultNotFound
	}

	refund, err := royalty.Accumulate(recordDeposit(packed), t.Balance(address))
	if nil != err {
		return 0, err
	}

	t.setBalance(address, 0)
	err = t.credit(refundTo, refund)
	if nil != err {
		return 0, err
	}

	t.trx.Delete(storage.Pool.Records, address[:])

	tombstone := make([]byte, 8)
	binary.BigEndian.PutUint64(tombstone, refund)
	t.trx.Put(storage.Pool.Closed, address[:], tombstone)

	t.log.Debugf("close: %s  refund: %s  amount: %d", address, refundTo, refund)
	return refund, nil
}

func (t *transaction) IsClosed(address account.Account) bool {
	return t.trx.Has(storage.Pool.Closed, address[:])
}

func (t *transaction) Commit() error {
	return t.trx.Commit()
}

func (t *transaction) Abort() {
	t.trx.Abort()
}
