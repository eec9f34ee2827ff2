// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := uint64(1); i <= 5; i += 1 {
		assert.Equal(t, i, c.Increment(), "wrong value after increment")
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value")

	for i := uint64(4); i > 0; i -= 1 {
		assert.Equal(t, i, c.Decrement(), "wrong value after decrement")
	}
	assert.Equal(t, uint64(0), c.Decrement(), "wrong value after decrement")
	assert.True(t, c.IsZero(), "counter is not zero at end")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 20
	const loops = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				c.Increment()
				c.Increment()
				c.Decrement()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*loops), c.Uint64(), "wrong final value")
}
