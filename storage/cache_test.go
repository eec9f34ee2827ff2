// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, _, found := c.Get(key)
	assert.False(t, found, "key should not exist yet")

	c.Set(dbPut, key, expected)
	op, actual, found := c.Get(key)
	assert.True(t, found, "key should be found")
	assert.Equal(t, dbPut, op, "operation")
	assert.Equal(t, expected, actual, "value")
}

func TestCacheDeleteIsReported(t *testing.T) {
	c := newCache()

	key := "test"
	c.Set(dbPut, key, []byte{1})
	c.Set(dbDelete, key, nil)

	op, value, found := c.Get(key)
	assert.True(t, found, "deleted key must still be found")
	assert.Equal(t, dbDelete, op, "operation")
	assert.Nil(t, value, "value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "one", []byte{1})
	c.Set(dbDelete, "two", nil)
	c.Clear()

	_, _, found := c.Get("one")
	assert.False(t, found, "cleared put")
	_, _, found = c.Get("two")
	assert.False(t, found, "cleared delete")
}
