// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - collections, assets and holding accounts
//
// from storage/doc.go:
//
//   L ⧺ collection       - registered collection
//                          data: update authority
//   A ⧺ asset            - registered asset
//                          data: collection ⧺ holding account
//   H ⧺ holding account  - token holding account
//                          data: asset ⧺ custodian
//   P ⧺ target ⧺ plugin  - attached plugin
//                          data: authority
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
)

// structure of the packed pairs
const (
	firstStart   = 0
	firstFinish  = firstStart + account.Length
	secondStart  = firstFinish
	secondFinish = secondStart + account.Length
	pairLength   = secondFinish
)

// Registry - storage backed registry
type Registry struct {
	log *logger.L
}

// New - create a registry on the storage pools
func New(log *logger.L) *Registry {
	return &Registry{
		log: log,
	}
}

// Collection - the update authority of a collection
func (r *Registry) Collection(collection account.Account) (account.Account, error) {
	packed := storage.Pool.Collections.Get(collection[:])
	if nil == packed {
		return account.Zero, fault.ErrUnknownCollection
	}
	return account.FromBytes(packed)
}

// Asset - read an asset entry
func (r *Registry) Asset(assetId account.Account) (*vault.Asset, error) {
	first, second, err := getPair(storage.Pool.Assets, assetId, fault.ErrUnknownAsset)
	if nil != err {
		return nil, err
	}
	return &vault.Asset{
		Id:         assetId,
		Collection: first,
		Holding:    second,
	}, nil
}

// HoldingAccount - read a holding account
func (r *Registry) HoldingAccount(address account.Account) (*vault.HoldingAccount, error) {
	first, second, err := getPair(storage.Pool.Holdings, address, fault.ErrUnknownHoldingAccount)
	if nil != err {
		return nil, err
	}
	return &vault.HoldingAccount{
		Address: address,
		AssetId: first,
		Owner:   second,
	}, nil
}

// RegisterCollection - create a collection with its update authority
func (r *Registry) RegisterCollection(collection account.Account, authority account.Account) error {
	if collection.IsZero() || authority.IsZero() {
		return fault.ErrInvalidAccount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if trx.Has(storage.Pool.Collections, collection[:]) {
		return fault.ErrCollectionAlreadyExists
	}
	trx.Put(storage.Pool.Collections, collection[:], authority[:])

	err = trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("collection: %s  authority: %s", collection, authority)
	return nil
}

// RegisterAsset - file an asset under a collection together with its
// holding account
func (r *Registry) RegisterAsset(assetId account.Account, collection account.Account, holding account.Account, custodian account.Account, authority account.Account) error {
	if assetId.IsZero() || holding.IsZero() || custodian.IsZero() {
		return fault.ErrInvalidAccount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	packed := trx.Get(storage.Pool.Collections, collection[:])
	if nil == packed {
		return fault.ErrUnknownCollection
	}
	if !authorised(packed, authority) {
		return fault.ErrInvalidAuthority
	}
	if trx.Has(storage.Pool.Assets, assetId[:]) {
		return fault.ErrAssetAlreadyExists
	}
	if trx.Has(storage.Pool.Holdings, holding[:]) {
		return fault.ErrHoldingAlreadyExists
	}

	trx.Put(storage.Pool.Assets, assetId[:], packPair(collection, holding))
	trx.Put(storage.Pool.Holdings, holding[:], packPair(assetId, custodian))

	err = trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("asset: %s  collection: %s  holding: %s  custodian: %s", assetId, collection, holding, custodian)
	return nil
}

// SetCustody - move the asset unit in a holding account to a new custodian
func (r *Registry) SetCustody(holding account.Account, custodian account.Account) error {
	if custodian.IsZero() {
		return fault.ErrInvalidAccount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	packed := trx.Get(storage.Pool.Holdings, holding[:])
	if nil == packed {
		return fault.ErrUnknownHoldingAccount
	}
	assetId, _, err := unpackPair(packed)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Holdings, holding[:], packPair(assetId, custodian))

	err = trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("custody: holding: %s  asset: %s  custodian: %s", holding, assetId, custodian)
	return nil
}

func authorised(packedAuthority []byte, authority account.Account) bool {
	a, err := account.FromBytes(packedAuthority)
	return nil == err && !authority.IsZero() && a == authority
}

func getPair(pool *storage.PoolHandle, key account.Account, notFound error) (account.Account, account.Account, error) {
	packed := pool.Get(key[:])
	if nil == packed {
		return account.Zero, account.Zero, notFound
	}
	return unpackPair(packed)
}

func packPair(first account.Account, second account.Account) []byte {
	packed := make([]byte, pairLength)
	copy(packed[firstStart:firstFinish], first[:])
	copy(packed[secondStart:secondFinish], second[:])
	return packed
}

func unpackPair(packed []byte) (account.Account, account.Account, error) {
	if pairLength != len(packed) {
		return account.Zero, account.Zero, fault.ErrRecordCorrupt
	}
	first := account.Account{}
	second := account.Account{}
	copy(first[:], packed[firstStart:firstFinish])
	copy(second[:], packed[secondStart:secondFinish])
	return first, second, nil
}
