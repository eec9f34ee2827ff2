// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"go.dedis.ch/kyber/v3/group/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// limits on the seed list
const (
	MaxSeedLength = 32
	MaxSeeds      = 16
)

// VaultSeed - first seed of every vault address
var VaultSeed = []byte("vault")

// domain separator appended after the program
var marker = []byte("ProgramDerivedAddress")

var suite = edwards25519.NewBlakeSHA256Ed25519()

// Seeds - the seed list for a vault
func Seeds(collection account.Account, assetId account.Account, holding account.Account) [][]byte {
	return [][]byte{
		VaultSeed,
		collection[:],
		assetId[:],
		holding[:],
	}
}

// Derive - find the vault address and its bump
func Derive(program account.Account, collection account.Account, assetId account.Account, holding account.Account) (account.Account, uint8, error) {
	return Find(program, Seeds(collection, assetId, holding))
}

// Find - search bumps from 255 down to 0 for an off-curve address
func Find(program account.Account, seeds [][]byte) (account.Account, uint8, error) {
	if err := checkSeeds(seeds); nil != err {
		return account.Zero, 0, err
	}

	for bump := 255; bump >= 0; bump -= 1 {
		a := hash(program, seeds, uint8(bump))
		if !IsOnCurve(a) {
			return a, uint8(bump), nil
		}
	}
	return account.Zero, 0, fault.ErrVaultDerivationFailed
}

// Create - recompute an address from a known bump
//
// fails if the result lies on the curve
func Create(program account.Account, seeds [][]byte, bump uint8) (account.Account, error) {
	if err := checkSeeds(seeds); nil != err {
		return account.Zero, err
	}
	a := hash(program, seeds, bump)
	if IsOnCurve(a) {
		return account.Zero, fault.ErrVaultDerivationFailed
	}
	return a, nil
}

// IsOnCurve - true if the bytes decode as an Ed25519 point
func IsOnCurve(a account.Account) bool {
	return nil == suite.Point().UnmarshalBinary(a[:])
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return fault.ErrInvalidSeed
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fault.ErrInvalidSeed
		}
	}
	return nil
}

func hash(program account.Account, seeds [][]byte, bump uint8) account.Account {
	h := sha3.New256()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write(marker)

	a := account.Account{}
	copy(a[:], h.Sum(nil))
	return a
}
