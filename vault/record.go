// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

const (
	tagByteSize    = 8
	uint64ByteSize = 8
)

// structure of the packed vault record
const (
	tagStart  = 0
	tagFinish = tagStart + tagByteSize

	collectionStart  = tagFinish
	collectionFinish = collectionStart + account.Length

	assetIdStart  = collectionFinish
	assetIdFinish = assetIdStart + account.Length

	holdingStart  = assetIdFinish
	holdingFinish = holdingStart + account.Length

	ownerStart  = holdingFinish
	ownerFinish = ownerStart + account.Length

	escrowStart  = ownerFinish
	escrowFinish = escrowStart + uint64ByteSize

	// RecordSize - length of a packed record
	RecordSize = escrowFinish
)

// RecordTag - first 8 bytes of SHA3-256("account:Vault")
var RecordTag = recordTag()

func recordTag() [tagByteSize]byte {
	digest := sha3.Sum256([]byte("account:Vault"))
	tag := [tagByteSize]byte{}
	copy(tag[:], digest[:tagByteSize])
	return tag
}

// Record - the vault state
type Record struct {
	Collection account.Account `json:"collection"`
	AssetId    account.Account `json:"assetId"`
	Holding    account.Account `json:"holdingAccount"`
	Owner      account.Account `json:"owner"`
	Escrow     uint64          `json:"escrowBalance"`
}

// PackedRecord - record bytes as stored by the ledger
type PackedRecord []byte

// Pack - fixed layout serialisation
func (r *Record) Pack() PackedRecord {
	buffer := make([]byte, RecordSize)
	copy(buffer[tagStart:tagFinish], RecordTag[:])
	copy(buffer[collectionStart:collectionFinish], r.Collection[:])
	copy(buffer[assetIdStart:assetIdFinish], r.AssetId[:])
	copy(buffer[holdingStart:holdingFinish], r.Holding[:])
	copy(buffer[ownerStart:ownerFinish], r.Owner[:])
	binary.BigEndian.PutUint64(buffer[escrowStart:escrowFinish], r.Escrow)
	return buffer
}

// Unpack - decode a packed record
func (packed PackedRecord) Unpack() (*Record, error) {
	if RecordSize != len(packed) {
		return nil, fault.ErrInvalidRecordLength
	}
	if !bytes.Equal(packed[tagStart:tagFinish], RecordTag[:]) {
		return nil, fault.ErrInvalidRecordTag
	}

	r := &Record{}
	copy(r.Collection[:], packed[collectionStart:collectionFinish])
	copy(r.AssetId[:], packed[assetIdStart:assetIdFinish])
	copy(r.Holding[:], packed[holdingStart:holdingFinish])
	copy(r.Owner[:], packed[ownerStart:ownerFinish])
	r.Escrow = binary.BigEndian.Uint64(packed[escrowStart:escrowFinish])
	return r, nil
}
