// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/vaultd/fault"
)

// base units per whole unit is 10^decimals
const (
	defaultDecimals = 9
	maximumDecimals = 18
)

var (
	ErrAmountFractional = fault.InvalidError("amount has more decimal places than allowed")
	ErrAmountNegative   = fault.InvalidError("amount is negative")
	ErrAmountTooLarge   = fault.InvalidError("amount too large")
	ErrInvalidDecimals  = fault.InvalidError("decimals out of range")
)

var maximumBaseUnits = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// convert a decimal unit string like "1.25" to base units
func parseAmount(s string, decimals int32) (uint64, error) {
	if decimals < 0 || decimals > maximumDecimals {
		return 0, ErrInvalidDecimals
	}

	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, err
	}
	if d.IsNegative() {
		return 0, ErrAmountNegative
	}

	units := d.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, ErrAmountFractional
	}
	if units.GreaterThan(maximumBaseUnits) {
		return 0, ErrAmountTooLarge
	}

	return units.BigInt().Uint64(), nil
}

// convert base units to a decimal unit string
func formatAmount(amount uint64, decimals int32) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -decimals)
	return d.String()
}
