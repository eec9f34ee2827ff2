// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - number of open RPC connections
//
// the listener increments on accept and decrements on close, the node
// service reads the value for its status reply
package counter

import (
	"sync/atomic"
)

// Counter - open connection count, the zero value is ready to use
type Counter uint64

// Increment - one more connection, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64(c.raw(), 1)
}

// Decrement - one connection closed, returns the new total
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(c.raw(), ^uint64(0))
}

// Uint64 - the current total
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(c.raw())
}

// IsZero - true when no connections are open
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

func (c *Counter) raw() *uint64 {
	return (*uint64)(c)
}
