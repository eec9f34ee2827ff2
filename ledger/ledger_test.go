// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/ledger"
	"github.com/bitmark-inc/vaultd/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func fill(b byte) account.Account {
	a := account.Account{}
	copy(a[:], bytes.Repeat([]byte{b}, account.Length))
	return a
}

var (
	alice = fill(0x0a)
	bob   = fill(0x0b)
	box   = fill(0x0c)
)

func setup(t *testing.T) (*ledger.Ledger, func()) {
	dir, err := ioutil.TempDir("", "vaultd-ledger")
	require.Nil(t, err, "temp dir")

	err = storage.Initialise(filepath.Join(dir, "ledger.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage")

	return ledger.New(logger.New("ledger")), func() {
		storage.Finalise()
		os.RemoveAll(dir)
	}
}

func TestCredit(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	balance, err := l.Credit(alice, 500)
	assert.Nil(t, err, "credit")
	assert.Equal(t, uint64(500), balance, "balance")

	balance, err = l.Credit(alice, 250)
	assert.Nil(t, err, "second credit")
	assert.Equal(t, uint64(750), balance, "accumulated balance")
	assert.Equal(t, uint64(750), l.Balance(alice), "committed balance")

	_, err = l.Credit(alice, 0)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero credit")
}

func TestTransfer(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	_, err := l.Credit(alice, 100)
	require.Nil(t, err, "credit")

	trx, err := l.Begin()
	require.Nil(t, err, "begin")
	assert.Nil(t, trx.Transfer(alice, bob, 60), "transfer")
	assert.Equal(t, uint64(40), trx.Balance(alice), "pending alice")
	assert.Equal(t, uint64(60), trx.Balance(bob), "pending bob")
	assert.Equal(t, fault.ErrInsufficientFunds, trx.Transfer(alice, bob, 41), "overdraw")
	assert.Nil(t, trx.Transfer(alice, bob, 0), "zero transfer")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(40), l.Balance(alice), "alice")
	assert.Equal(t, uint64(60), l.Balance(bob), "bob")
}

func TestAbortRestoresBalances(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	_, err := l.Credit(alice, 100)
	require.Nil(t, err, "credit")

	trx, err := l.Begin()
	require.Nil(t, err, "begin")
	assert.Nil(t, trx.Transfer(alice, bob, 100), "transfer")
	trx.Abort()

	assert.Equal(t, uint64(100), l.Balance(alice), "alice")
	assert.Equal(t, uint64(0), l.Balance(bob), "bob")
}

func TestRecordLifecycle(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	_, err := l.Credit(alice, 1000)
	require.Nil(t, err, "credit")

	trx, err := l.Begin()
	require.Nil(t, err, "begin")
	assert.Nil(t, trx.CreateRecord(box, []byte("data-one"), alice, 100), "create")
	assert.Equal(t, fault.ErrVaultAlreadyExists, trx.CreateRecord(box, []byte("data-two"), alice, 100), "duplicate")
	assert.Nil(t, trx.Transfer(alice, box, 300), "fund record")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("data-one"), l.GetRecord(box), "committed record")
	assert.Equal(t, uint64(600), l.Balance(alice), "deposit and funding debited")
	assert.Equal(t, uint64(300), l.Balance(box), "record balance excludes deposit")

	trx, err = l.Begin()
	require.Nil(t, err, "begin")
	assert.Nil(t, trx.PutRecord(box, []byte("data-three")), "update")
	refund, err := trx.CloseRecord(box, bob)
	assert.Nil(t, err, "close")
	assert.Equal(t, uint64(400), refund, "balance plus deposit")
	assert.Nil(t, trx.GetRecord(box), "record removed in transaction")
	assert.True(t, trx.IsClosed(box), "tombstone in transaction")
	assert.Equal(t, fault.ErrVaultClosed, trx.PutRecord(box, []byte("x")), "update closed")
	require.Nil(t, trx.Commit(), "commit")

	assert.Nil(t, l.GetRecord(box), "no record")
	assert.True(t, l.IsClosed(box), "closed")
	assert.Equal(t, uint64(400), l.Balance(bob), "refund")
	assert.Equal(t, uint64(0), l.Balance(box), "drained")
}

func TestCreateRecordInsufficientDeposit(t *testing.T) {
	l, teardown := setup(t)
	defer teardown()

	_, err := l.Credit(alice, 10)
	require.Nil(t, err, "credit")

	trx, err := l.Begin()
	require.Nil(t, err, "begin")
	defer trx.Abort()

	assert.Equal(t, fault.ErrInsufficientFunds, trx.CreateRecord(box, []byte("data"), alice, 11), "deposit")
	assert.Nil(t, trx.GetRecord(box), "not created")

	_, err = trx.CloseRecord(box, alice)
	assert.Equal(t, fault.ErrVaultNotFound, err, "close missing")
}
