// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/fault"
)

// Transaction - batch of writes applied together by Commit
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	active bool
	lock   sync.Locker
	access DataAccess
	batch  *leveldb.Batch
	cache  Cache
}

// lock must already be held, it is released by Commit or Abort
func newTransaction(access DataAccess, lock sync.Locker) *transaction {
	return &transaction{
		active: true,
		lock:   lock,
		access: access,
		batch:  new(leveldb.Batch),
		cache:  newCache(),
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeActive("Put")

	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.batch.Put(k, v)
	t.cache.Set(dbPut, string(k), v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeActive("Delete")

	k := handle.prefixKey(key)
	t.batch.Delete(k)
	t.cache.Set(dbDelete, string(k), nil)
}

// Get - read a value, pending writes first
//
// returns nil if the key does not exist
func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()
	t.mustBeActive("Get")

	k := handle.prefixKey(key)
	op, value, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}

	value, err := t.access.Get(k)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a value as a big endian uint64
//
// second parameter is false if record was not found
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write all pending changes and release the write lock
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.active {
		return fault.ErrTransactionNotActive
	}

	err := t.access.Write(t.batch)
	t.finish()
	return err
}

// Abort - discard all pending changes and release the write lock
//
// safe to call after Commit, so it can be deferred
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if !t.active {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.active = false
	t.lock.Unlock()
}

func (t *transaction) mustBeActive(operation string) {
	if !t.active {
		logger.Panicf("transaction.%s: transaction is not active", operation)
	}
}
