// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - base currency balances and vault record storage
//
// from storage/doc.go:
//
//   B ⧺ account          - balance
//                          data: amount
//   R ⧺ vault address    - live record
//                          data: deposit ⧺ packed vault record
//   C ⧺ vault address    - closed record tombstone
//                          data: amount refunded
package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/royalty"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
)

const (
	depositStart  = 0
	depositFinish = depositStart + 8
	dataStart     = depositFinish
)

// Ledger - storage backed ledger
type Ledger struct {
	log *logger.L
}

// New - create a ledger on the storage pools
//
// storage must already be initialised
func New(log *logger.L) *Ledger {
	return &Ledger{
		log: log,
	}
}

// Begin - start a ledger transaction
func (l *Ledger) Begin() (vault.LedgerTransaction, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	return &transaction{
		log: l.log,
		trx: trx,
	}, nil
}

// GetRecord - committed record data
func (l *Ledger) GetRecord(address account.Account) []byte {
	return recordData(storage.Pool.Records.Get(address[:]))
}

// Balance - committed balance of an account
func (l *Ledger) Balance(a account.Account) uint64 {
	balance, _ := storage.Pool.Balances.GetN(a[:])
	return balance
}

// IsClosed - true if a record was closed at this address
func (l *Ledger) IsClosed(address account.Account) bool {
	return storage.Pool.Closed.Has(address[:])
}

// Credit - add new units to an account
//
// only used to fund accounts on test deployments
func (l *Ledger) Credit(a account.Account, amount uint64) (uint64, error) {
	if 0 == amount || a.IsZero() {
		return 0, fault.ErrInvalidAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	balance, _ := trx.GetN(storage.Pool.Balances, a[:])
	balance, err = royalty.Accumulate(balance, amount)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	trx.PutN(storage.Pool.Balances, a[:], balance)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	l.log.Infof("credit: account: %s  amount: %d  balance: %d", a, amount, balance)
	return balance, nil
}

// strip the deposit from a stored record
func recordData(packed []byte) []byte {
	if nil == packed {
		return nil
	}
	if len(packed) < dataStart {
		logger.Panicf("ledger: truncated record: %x", packed)
	}
	return packed[dataStart:]
}

func recordDeposit(packed []byte) uint64 {
	return binary.BigEndian.Uint64(packed[depositStart:depositFinish])
}

func packRecord(deposit uint64, data []byte) []byte {
	packed := make([]byte, dataStart+len(data))
	binary.BigEndian.PutUint64(packed[depositStart:depositFinish], deposit)
	copy(packed[dataStart:], data)
	return packed
}
