// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package royalty - split a payment between a vault and a creator
package royalty

import (
	"math/bits"

	"github.com/bitmark-inc/vaultd/fault"
)

// MaximumPercentage - upper bound of the fee percentage
const MaximumPercentage = 100

// Split - divide amount into the vault share and the creator share
//
// toVault = floor(amount * feePercentage / 100) and the remainder goes
// to the creator, so toVault + toCreator == amount always holds
func Split(amount uint64, feePercentage uint64) (toVault uint64, toCreator uint64, err error) {
	if feePercentage > MaximumPercentage {
		return 0, 0, fault.ErrInvalidFeePercentage
	}

	// 128 bit product so large amounts cannot wrap
	hi, lo := bits.Mul64(amount, feePercentage)
	toVault, _ = bits.Div64(hi, lo, MaximumPercentage)
	toCreator = amount - toVault
	return toVault, toCreator, nil
}

// Accumulate - checked addition to an escrow balance
func Accumulate(balance uint64, amount uint64) (uint64, error) {
	total, carry := bits.Add64(balance, amount, 0)
	if 0 != carry {
		return balance, fault.ErrInsufficientFunds
	}
	return total, nil
}
