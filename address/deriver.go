// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/vaultd/account"
)

const defaultCacheSize = 4096

type cacheKey struct {
	program    account.Account
	collection account.Account
	assetId    account.Account
	holding    account.Account
}

type cacheValue struct {
	address account.Account
	bump    uint8
}

// Deriver - memoising wrapper around Derive
type Deriver struct {
	program account.Account
	cache   *lru.Cache
}

// NewDeriver - create a deriver for a program
//
// size <= 0 selects the default cache size
func NewDeriver(program account.Account, size int) (*Deriver, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New(size)
	if nil != err {
		return nil, err
	}
	return &Deriver{
		program: program,
		cache:   cache,
	}, nil
}

// Program - the program identifier mixed into every address
func (d *Deriver) Program() account.Account {
	return d.program
}

// Derive - cached address derivation
func (d *Deriver) Derive(collection account.Account, assetId account.Account, holding account.Account) (account.Account, uint8, error) {
	key := cacheKey{
		program:    d.program,
		collection: collection,
		assetId:    assetId,
		holding:    holding,
	}
	if v, ok := d.cache.Get(key); ok {
		r := v.(cacheValue)
		return r.address, r.bump, nil
	}

	a, bump, err := Derive(d.program, collection, assetId, holding)
	if nil != err {
		return account.Zero, 0, err
	}
	d.cache.Add(key, cacheValue{address: a, bump: bump})
	return a, bump, nil
}

// Len - number of cached entries
func (d *Deriver) Len() int {
	return d.cache.Len()
}
