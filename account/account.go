// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/vaultd/fault"
)

// Length - bytes in an account identifier
const Length = 32

// Account - 32 byte identity used for collections, assets, holding
// accounts, owners and vaults
//
// the text form is Base58 with no checksum or version prefix
type Account [Length]byte

// Zero - the empty account, never a valid owner
var Zero Account

// FromBytes - convert a byte slice to an account
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode a Base58 account string
func FromBase58(s string) (Account, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return Account{}, fault.ErrInvalidBase58
	}
	return FromBytes(buffer)
}

// Bytes - return a copy of the raw bytes
func (a Account) Bytes() []byte {
	buffer := make([]byte, Length)
	copy(buffer, a[:])
	return buffer
}

// String - Base58 form
func (a Account) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + hex.EncodeToString(a[:]) + ">"
}

// IsZero - true if all bytes are zero
func (a Account) IsZero() bool {
	return a == Zero
}

// Compare - byte order comparison, used to sort listings
func (a Account) Compare(b Account) int {
	return bytes.Compare(a[:], b[:])
}

// MarshalText - convert an account to Base58 for JSON
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (a *Account) UnmarshalText(s []byte) error {
	acc, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = acc
	return nil
}
