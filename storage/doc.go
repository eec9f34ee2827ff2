// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes go through a Transaction, only one of which can be open
// at a time.  Reads on a pool handle see committed data; reads through
// a transaction also see its own uncommitted writes.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. account      = 32 byte identifier (public key or derived address)
// 4. amount       = big endian uint64 (8 bytes)
//
// Ledger:
//
//   B ++ account               - base currency balance
//                                data: amount
//   R ++ vault address         - live vault record
//                                data: packed vault record
//   C ++ vault address         - closed vault tombstone
//                                data: amount released
//
// Registry:
//
//   L ++ collection            - registered collection
//                                data: update authority
//   A ++ asset                 - registered asset
//                                data: collection ++ holding account
//   H ++ holding account       - token holding account
//                                data: asset ++ custodian
//   P ++ target ++ plugin      - attached plugin
//                                data: authority
//
// Testing:
//   Z ++ key                   - testing data
package storage
