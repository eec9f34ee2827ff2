// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
)

// AttachPlugin - attach a plugin to a collection or an asset
//
// authority must be the update authority of the collection, or of the
// collection the asset is filed under; attaching twice is not an error
func (r *Registry) AttachPlugin(target account.Account, plugin account.Account, authority account.Account) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	collection := target
	if packed := trx.Get(storage.Pool.Assets, target[:]); nil != packed {
		collection, _, err = unpackPair(packed)
		if nil != err {
			return err
		}
	}

	packed := trx.Get(storage.Pool.Collections, collection[:])
	if nil == packed {
		return fault.ErrInvalidAccount
	}
	if !authorised(packed, authority) {
		return fault.ErrInvalidAuthority
	}

	key := append(target.Bytes(), plugin[:]...)
	if trx.Has(storage.Pool.Plugins, key) {
		return nil
	}
	trx.Put(storage.Pool.Plugins, key, authority[:])

	err = trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("plugin: target: %s  plugin: %s  authority: %s", target, plugin, authority)
	return nil
}

// Plugins - list up to count plugins attached to a target
func (r *Registry) Plugins(target account.Account, count int) ([]account.Account, error) {
	cursor := storage.Pool.Plugins.NewFetchCursor().Seek(target[:])
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	plugins := make([]account.Account, 0, len(elements))
	for _, e := range elements {
		if !bytes.HasPrefix(e.Key, target[:]) {
			break
		}
		plugin, err := account.FromBytes(e.Key[account.Length:])
		if nil != err {
			return nil, err
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}
