// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle RPC calls on a token bucket
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/vaultd/fault"
)

// Limit - wait for one token before serving a call
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait for one token per requested record
//
// a count outside 1..maximumCount still costs one token so that bad
// requests are throttled too, then reports ErrInvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter, count)
}

// block until n tokens are available, fail if the burst can never cover n
func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
