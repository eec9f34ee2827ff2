// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/address"
	"github.com/bitmark-inc/vaultd/fault"
)

func fill(b byte) account.Account {
	a := account.Account{}
	copy(a[:], bytes.Repeat([]byte{b}, account.Length))
	return a
}

var (
	program    = fill(0x11)
	collection = fill(0x22)
	assetId    = fill(0x33)
	holding    = fill(0x44)
)

func TestDeriveIsDeterministic(t *testing.T) {
	a1, bump1, err := address.Derive(program, collection, assetId, holding)
	assert.Nil(t, err, "first derive")
	a2, bump2, err := address.Derive(program, collection, assetId, holding)
	assert.Nil(t, err, "second derive")

	assert.Equal(t, a1, a2, "address")
	assert.Equal(t, bump1, bump2, "bump")
	assert.False(t, address.IsOnCurve(a1), "derived address must be off curve")
}

func TestDeriveDistinctInputs(t *testing.T) {
	base, _, err := address.Derive(program, collection, assetId, holding)
	assert.Nil(t, err, "base")

	variants := [][4]account.Account{
		{fill(0x12), collection, assetId, holding},
		{program, fill(0x23), assetId, holding},
		{program, collection, fill(0x34), holding},
		{program, collection, assetId, fill(0x45)},
		{program, assetId, collection, holding},
	}
	seen := map[account.Account]int{base: -1}
	for i, v := range variants {
		a, _, err := address.Derive(v[0], v[1], v[2], v[3])
		assert.Nil(t, err, "variant %d", i)
		if j, ok := seen[a]; ok {
			t.Errorf("%d: collides with %d", i, j)
		}
		seen[a] = i
	}
}

func TestCreateMatchesDerive(t *testing.T) {
	a, bump, err := address.Derive(program, collection, assetId, holding)
	assert.Nil(t, err, "derive")

	seeds := address.Seeds(collection, assetId, holding)
	created, err := address.Create(program, seeds, bump)
	assert.Nil(t, err, "create")
	assert.Equal(t, a, created, "create with the found bump")
}

func TestSeedLimits(t *testing.T) {
	_, _, err := address.Find(program, [][]byte{make([]byte, address.MaxSeedLength+1)})
	assert.Equal(t, fault.ErrInvalidSeed, err, "long seed")

	_, _, err = address.Find(program, make([][]byte, address.MaxSeeds+1))
	assert.Equal(t, fault.ErrInvalidSeed, err, "too many seeds")

	_, err = address.Create(program, [][]byte{make([]byte, address.MaxSeedLength+1)}, 255)
	assert.Equal(t, fault.ErrInvalidSeed, err, "create with long seed")
}

func TestPublicKeyIsOnCurve(t *testing.T) {
	k, err := account.NewKeyPair(rand.Reader)
	assert.Nil(t, err, "key pair")
	assert.True(t, address.IsOnCurve(k.Account), "ed25519 public key")
}

func TestDeriverCaches(t *testing.T) {
	d, err := address.NewDeriver(program, 2)
	assert.Nil(t, err, "new deriver")
	assert.Equal(t, program, d.Program(), "program")

	expected, expectedBump, err := address.Derive(program, collection, assetId, holding)
	assert.Nil(t, err, "derive")

	for i := 0; i < 3; i += 1 {
		a, bump, err := d.Derive(collection, assetId, holding)
		assert.Nil(t, err, "deriver %d", i)
		assert.Equal(t, expected, a, "address %d", i)
		assert.Equal(t, expectedBump, bump, "bump %d", i)
	}
	assert.Equal(t, 1, d.Len(), "single entry")

	_, _, _ = d.Derive(fill(0x01), assetId, holding)
	_, _, _ = d.Derive(fill(0x02), assetId, holding)
	assert.Equal(t, 2, d.Len(), "bounded by size")
}
