// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/address"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/vault"
	"github.com/bitmark-inc/vaultd/vault/mocks"
)

const (
	testingDirName = "testing"
	logCategory    = "vault"
)

func fill(b byte) account.Account {
	a := account.Account{}
	copy(a[:], bytes.Repeat([]byte{b}, account.Length))
	return a
}

var (
	program    = fill(0x01)
	collection = fill(0x10)
	assetId    = fill(0x20)
	holding    = fill(0x30)
	payer      = fill(0x40)
	newOwner   = fill(0x50)
	creator    = fill(0x60)
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

type testMocks struct {
	ctl      *gomock.Controller
	ledger   *mocks.MockLedger
	trx      *mocks.MockLedgerTransaction
	registry *mocks.MockRegistry
	verifier *mocks.MockCustodyVerifier
}

func setupEngine(t *testing.T) (*vault.Engine, *testMocks) {
	ctl := gomock.NewController(t)
	m := &testMocks{
		ctl:      ctl,
		ledger:   mocks.NewMockLedger(ctl),
		trx:      mocks.NewMockLedgerTransaction(ctl),
		registry: mocks.NewMockRegistry(ctl),
		verifier: mocks.NewMockCustodyVerifier(ctl),
	}

	e, err := vault.New(logger.New(logCategory), vault.DefaultConfiguration(program), m.ledger, m.registry, m.verifier)
	require.Nil(t, err, "new engine")
	return e, m
}

// every transaction may be aborted, after commit this is a no-op
func (m *testMocks) expectBegin() {
	m.ledger.EXPECT().Begin().Return(m.trx, nil).Times(1)
	m.trx.EXPECT().Abort().AnyTimes()
}

func vaultAddress(t *testing.T) account.Account {
	a, _, err := address.Derive(program, collection, assetId, holding)
	require.Nil(t, err, "derive")
	return a
}

func activeRecord(owner account.Account, escrow uint64) *vault.Record {
	return &vault.Record{
		Collection: collection,
		AssetId:    assetId,
		Holding:    holding,
		Owner:      owner,
		Escrow:     escrow,
	}
}

func TestNewRequiresCustodyVerifier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := vault.New(logger.New(logCategory), vault.DefaultConfiguration(program), mocks.NewMockLedger(ctl), mocks.NewMockRegistry(ctl), nil)
	assert.Equal(t, fault.ErrMissingCustodyVerifier, err, "missing verifier")
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := vault.DefaultConfiguration(program)
	c.FeePercentage = 200
	_, err := vault.New(logger.New(logCategory), c, mocks.NewMockLedger(ctl), mocks.NewMockRegistry(ctl), mocks.NewMockCustodyVerifier(ctl))
	assert.Equal(t, fault.ErrInvalidFeePercentage, err, "invalid policy")
}

func TestSetConfiguration(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	c := vault.DefaultConfiguration(program)
	c.FeePercentage = 30
	assert.Nil(t, e.SetConfiguration(c), "update")
	assert.Equal(t, uint64(30), e.Configuration().FeePercentage, "new fee")

	c.FeePercentage = 101
	assert.Equal(t, fault.ErrInvalidFeePercentage, e.SetConfiguration(c), "invalid update")
	assert.Equal(t, uint64(30), e.Configuration().FeePercentage, "fee kept")

	c = vault.DefaultConfiguration(fill(0x02))
	assert.Equal(t, fault.ErrProgramChanged, e.SetConfiguration(c), "program change")
}

func expectRegistry(m *testMocks, custodian account.Account) {
	m.registry.EXPECT().Asset(assetId).Return(&vault.Asset{
		Id:         assetId,
		Collection: collection,
		Holding:    holding,
	}, nil).AnyTimes()
	m.registry.EXPECT().HoldingAccount(holding).Return(&vault.HoldingAccount{
		Address: holding,
		AssetId: assetId,
		Owner:   custodian,
	}, nil).AnyTimes()
}

func TestInitialise(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	expectRegistry(m, payer)
	m.expectBegin()

	gomock.InOrder(
		m.trx.EXPECT().GetRecord(v).Return(nil),
		m.trx.EXPECT().CreateRecord(v, gomock.Any(), payer, uint64(vault.DefaultRecordDeposit)).DoAndReturn(
			func(a account.Account, data []byte, from account.Account, deposit uint64) error {
				r, err := vault.PackedRecord(data).Unpack()
				assert.Nil(t, err, "unpack")
				assert.Equal(t, activeRecord(from, 0), r, "new record")
				return nil
			}),
		m.trx.EXPECT().Transfer(payer, v, uint64(1000000)).Return(nil),
		m.trx.EXPECT().Commit().Return(nil),
	)

	receipt, err := e.Initialise(collection, assetId, payer, 1000000)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, vault.OperationInitialise, receipt.Operation, "operation")
	assert.Equal(t, v, receipt.Vault, "vault")
	assert.Equal(t, payer, receipt.Owner, "owner")
	assert.Equal(t, uint64(0), receipt.Escrow, "escrow")
	assert.Equal(t, uint64(1000000), receipt.Amount, "amount")
}

func TestInitialiseAmountBounds(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	// no transaction is started for an invalid amount
	m.ledger.EXPECT().Begin().Times(0)

	c := e.Configuration()
	for _, amount := range []uint64{0, c.MinimumDeposit - 1, c.MaximumAmount + 1} {
		_, err := e.Initialise(collection, assetId, payer, amount)
		assert.Equal(t, fault.ErrInvalidAmount, err, "amount: %d", amount)
	}
}

func TestInitialiseNotInCollection(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	m.expectBegin()
	m.registry.EXPECT().Asset(assetId).Return(&vault.Asset{
		Id:         assetId,
		Collection: fill(0x99),
		Holding:    holding,
	}, nil)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.Initialise(collection, assetId, payer, 1000000)
	assert.Equal(t, fault.ErrNotInCollection, err, "other collection")
}

func TestInitialiseInvalidHoldingAccount(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	m.expectBegin()
	m.registry.EXPECT().Asset(assetId).Return(&vault.Asset{
		Id:         assetId,
		Collection: collection,
		Holding:    holding,
	}, nil)
	m.registry.EXPECT().HoldingAccount(holding).Return(&vault.HoldingAccount{
		Address: holding,
		AssetId: fill(0x99),
		Owner:   payer,
	}, nil)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.Initialise(collection, assetId, payer, 1000000)
	assert.Equal(t, fault.ErrInvalidAccount, err, "holding account for another asset")
}

func TestInitialiseAlreadyExists(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	expectRegistry(m, payer)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 0).Pack()))
	m.trx.EXPECT().CreateRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.Initialise(collection, assetId, payer, 1000000)
	assert.Equal(t, fault.ErrVaultAlreadyExists, err, "second initialise")
}

func TestInitialiseInsufficientFunds(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	expectRegistry(m, payer)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return(nil)
	m.trx.EXPECT().CreateRecord(v, gomock.Any(), payer, gomock.Any()).Return(nil)
	m.trx.EXPECT().Transfer(payer, v, uint64(1000000)).Return(fault.ErrInsufficientFunds)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.Initialise(collection, assetId, payer, 1000000)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "payer cannot cover deposit")
}

func TestTransferOwnership(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 123).Pack()))
	m.verifier.EXPECT().VerifyCustody(activeRecord(payer, 123), newOwner).Return(nil)
	m.trx.EXPECT().PutRecord(v, []byte(activeRecord(newOwner, 123).Pack())).Return(nil)
	m.trx.EXPECT().Commit().Return(nil)

	receipt, err := e.TransferOwnership(v, newOwner)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, newOwner, receipt.Owner, "owner")
	assert.Equal(t, uint64(123), receipt.Escrow, "escrow unchanged")
}

func TestTransferOwnershipUnverified(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 0).Pack()))
	m.verifier.EXPECT().VerifyCustody(gomock.Any(), newOwner).Return(fault.ErrInvalidAccount)
	m.trx.EXPECT().PutRecord(gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.TransferOwnership(v, newOwner)
	assert.Equal(t, fault.ErrVaultOwnerMismatch, err, "custody not confirmed")
}

func TestOperationsOnMissingVault(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	missing := fill(0x77)
	m.ledger.EXPECT().Begin().Return(m.trx, nil).Times(3)
	m.trx.EXPECT().Abort().AnyTimes()
	m.trx.EXPECT().GetRecord(missing).Return(nil).Times(3)
	m.trx.EXPECT().IsClosed(missing).Return(false).Times(3)

	_, err := e.TransferOwnership(missing, newOwner)
	assert.Equal(t, fault.ErrVaultNotFound, err, "transfer")
	_, err = e.ApplyRoyalty(missing, 100, creator, payer)
	assert.Equal(t, fault.ErrVaultNotFound, err, "royalty")
	_, err = e.Release(missing, payer, collection)
	assert.Equal(t, fault.ErrVaultNotFound, err, "release")
}

func TestOperationsOnClosedVault(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	closed := fill(0x78)
	m.ledger.EXPECT().Begin().Return(m.trx, nil).Times(3)
	m.trx.EXPECT().Abort().AnyTimes()
	m.trx.EXPECT().GetRecord(closed).Return(nil).Times(3)
	m.trx.EXPECT().IsClosed(closed).Return(true).Times(3)

	_, err := e.TransferOwnership(closed, newOwner)
	assert.Equal(t, fault.ErrVaultClosed, err, "transfer")
	_, err = e.ApplyRoyalty(closed, 100, creator, payer)
	assert.Equal(t, fault.ErrVaultClosed, err, "royalty")
	_, err = e.Release(closed, payer, collection)
	assert.Equal(t, fault.ErrVaultClosed, err, "release")
}

func TestApplyRoyalty(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 20000).Pack()))
	m.trx.EXPECT().PutRecord(v, []byte(activeRecord(payer, 20010).Pack())).Return(nil)
	m.trx.EXPECT().Transfer(payer, v, uint64(10)).Return(nil)
	m.trx.EXPECT().Transfer(payer, creator, uint64(40)).Return(nil)
	m.trx.EXPECT().Commit().Return(nil)

	receipt, err := e.ApplyRoyalty(v, 50, creator, payer)
	assert.Nil(t, err, "royalty")
	assert.Equal(t, uint64(20010), receipt.Escrow, "escrow")
	assert.Equal(t, uint64(10), receipt.ToVault, "to vault")
	assert.Equal(t, uint64(40), receipt.ToCreator, "to creator")
}

func TestApplyRoyaltySmallAmount(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	// 20% of 4 rounds down to zero, nothing is moved to the vault
	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 7).Pack()))
	m.trx.EXPECT().PutRecord(v, []byte(activeRecord(payer, 7).Pack())).Return(nil)
	m.trx.EXPECT().Transfer(payer, creator, uint64(4)).Return(nil)
	m.trx.EXPECT().Commit().Return(nil)

	receipt, err := e.ApplyRoyalty(v, 4, creator, payer)
	assert.Nil(t, err, "royalty")
	assert.Equal(t, uint64(0), receipt.ToVault, "to vault")
	assert.Equal(t, uint64(4), receipt.ToCreator, "to creator")
}

func TestApplyRoyaltyAmountBounds(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	m.ledger.EXPECT().Begin().Times(0)

	_, err := e.ApplyRoyalty(vaultAddress(t), 0, creator, payer)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero")

	_, err = e.ApplyRoyalty(vaultAddress(t), e.Configuration().MaximumAmount+1, creator, payer)
	assert.Equal(t, fault.ErrInvalidAmount, err, "above maximum")
}

func TestApplyRoyaltyOverflow(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, math.MaxUint64-1).Pack()))
	m.trx.EXPECT().PutRecord(gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.ApplyRoyalty(v, 100, creator, payer)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "escrow overflow")
}

func TestApplyRoyaltyTransferFailure(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 0).Pack()))
	m.trx.EXPECT().PutRecord(v, gomock.Any()).Return(nil)
	m.trx.EXPECT().Transfer(payer, v, uint64(20)).Return(nil)
	m.trx.EXPECT().Transfer(payer, creator, uint64(80)).Return(fault.ErrInsufficientFunds)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.ApplyRoyalty(v, 100, creator, payer)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "creator transfer failed")
}

func TestRelease(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	expectRegistry(m, collection)
	m.expectBegin()
	gomock.InOrder(
		m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(newOwner, 20010).Pack())),
		m.trx.EXPECT().PutRecord(v, []byte(activeRecord(newOwner, 0).Pack())).Return(nil),
		m.trx.EXPECT().Transfer(v, newOwner, uint64(20010)).Return(nil),
		m.trx.EXPECT().CloseRecord(v, newOwner).Return(uint64(2893120), nil),
		m.trx.EXPECT().Commit().Return(nil),
	)

	receipt, err := e.Release(v, newOwner, collection)
	assert.Nil(t, err, "release")
	assert.Equal(t, uint64(20010), receipt.Released, "released")
	assert.Equal(t, uint64(2893120), receipt.Refunded, "refunded")
	assert.Equal(t, uint64(0), receipt.Escrow, "escrow")
}

func TestReleaseGates(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.ledger.EXPECT().Begin().Return(m.trx, nil).Times(3)
	m.trx.EXPECT().Abort().AnyTimes()
	m.trx.EXPECT().GetRecord(v).Return([]byte(activeRecord(newOwner, 500).Pack())).Times(3)
	m.trx.EXPECT().PutRecord(gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().CloseRecord(gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Commit().Times(0)

	// wrong collection
	_, err := e.Release(v, newOwner, fill(0x99))
	assert.Equal(t, fault.ErrNotInCollection, err, "other collection")

	// asset still held by an individual
	m.registry.EXPECT().HoldingAccount(holding).Return(&vault.HoldingAccount{
		Address: holding,
		AssetId: assetId,
		Owner:   newOwner,
	}, nil).Times(1)
	_, err = e.Release(v, newOwner, collection)
	assert.Equal(t, fault.ErrNotInCollection, err, "custody not at collection")

	// returned to the collection but claimed by someone else
	m.registry.EXPECT().HoldingAccount(holding).Return(&vault.HoldingAccount{
		Address: holding,
		AssetId: assetId,
		Owner:   collection,
	}, nil).Times(1)
	_, err = e.Release(v, payer, collection)
	assert.Equal(t, fault.ErrVaultOwnerMismatch, err, "not the recorded owner")
}

// the vault address is never a counterparty of its own operations
func TestVaultAsCounterparty(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.ledger.EXPECT().Begin().Times(0)

	_, err := e.ApplyRoyalty(v, 100000, creator, v)
	assert.Equal(t, fault.ErrInvalidAccount, err, "vault pays its own royalty")

	_, err = e.ApplyRoyalty(v, 100000, v, payer)
	assert.Equal(t, fault.ErrInvalidAccount, err, "vault is the creator")

	_, err = e.Release(v, v, collection)
	assert.Equal(t, fault.ErrInvalidAccount, err, "vault releases to itself")

	_, err = e.Release(v, account.Zero, collection)
	assert.Equal(t, fault.ErrInvalidAccount, err, "release to zero account")

	_, err = e.TransferOwnership(v, v)
	assert.Equal(t, fault.ErrInvalidAccount, err, "vault owns itself")
}

func TestInitialisePayerIsVault(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	expectRegistry(m, payer)
	m.expectBegin()
	m.trx.EXPECT().GetRecord(gomock.Any()).Times(0)
	m.trx.EXPECT().CreateRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.trx.EXPECT().Commit().Times(0)

	_, err := e.Initialise(collection, assetId, v, 1000000)
	assert.Equal(t, fault.ErrInvalidAccount, err, "vault funds itself")
}

func TestGet(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	v := vaultAddress(t)
	m.ledger.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 9).Pack()))
	m.ledger.EXPECT().GetRecord(fill(0x77)).Return(nil)

	r, err := e.Get(v)
	assert.Nil(t, err, "get")
	assert.Equal(t, activeRecord(payer, 9), r, "record")

	_, err = e.Get(fill(0x77))
	assert.Equal(t, fault.ErrVaultNotFound, err, "missing")

	m.ledger.EXPECT().GetRecord(v).Return([]byte(activeRecord(payer, 9).Pack()))
	found, r, err := e.Find(collection, assetId, holding)
	assert.Nil(t, err, "find")
	assert.Equal(t, v, found, "derived address")
	assert.Equal(t, uint64(9), r.Escrow, "escrow")
}

func TestAttachPlugin(t *testing.T) {
	e, m := setupEngine(t)
	defer m.ctl.Finish()

	plugin := fill(0x88)
	m.registry.EXPECT().AttachPlugin(collection, plugin, payer).Return(nil)
	m.registry.EXPECT().AttachPlugin(collection, plugin, newOwner).Return(fault.ErrInvalidAuthority)

	receipt, err := e.AttachPlugin(collection, plugin, payer)
	assert.Nil(t, err, "attach")
	assert.Equal(t, vault.OperationAttachPlugin, receipt.Operation, "operation")

	_, err = e.AttachPlugin(collection, plugin, newOwner)
	assert.Equal(t, fault.ErrInvalidAuthority, err, "not the authority")

	_, err = e.AttachPlugin(account.Zero, plugin, payer)
	assert.Equal(t, fault.ErrInvalidAccount, err, "no target")
}
