// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - committed view of the database
type DataAccess interface {
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Write(*leveldb.Batch) error
}

type dataAccess struct {
	db *leveldb.DB
}

func newDataAccess(db *leveldb.DB) DataAccess {
	return &dataAccess{
		db: db,
	}
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// synchronous write of a whole batch
func (d *dataAccess) Write(batch *leveldb.Batch) error {
	return d.db.Write(batch, &ldb_opt.WriteOptions{Sync: true})
}
