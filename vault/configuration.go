// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"time"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/royalty"
)

// defaults for the vault policy
const (
	DefaultFeePercentage    = 20
	DefaultMaximumAmount    = 1000000000000
	DefaultMinimumDeposit   = 1000000
	DefaultOperationTimeout = 300 * time.Second

	// two years of rent for the record plus its account header
	DefaultRecordDeposit = (128 + RecordSize) * 3480 * 2
)

// Configuration - vault policy
//
// passed by value, an engine never sees a partially updated policy
type Configuration struct {
	FeePercentage  uint64
	MaximumAmount  uint64
	MinimumDeposit uint64
	RecordDeposit  uint64

	// not enforced by the engine, exposed for callers
	OperationTimeout time.Duration

	// mixed into every vault address
	Program account.Account
}

// DefaultConfiguration - policy with the default values
func DefaultConfiguration(program account.Account) Configuration {
	return Configuration{
		FeePercentage:    DefaultFeePercentage,
		MaximumAmount:    DefaultMaximumAmount,
		MinimumDeposit:   DefaultMinimumDeposit,
		RecordDeposit:    DefaultRecordDeposit,
		OperationTimeout: DefaultOperationTimeout,
		Program:          program,
	}
}

// Validate - check the policy values are consistent
func (c Configuration) Validate() error {
	if c.FeePercentage > royalty.MaximumPercentage {
		return fault.ErrInvalidFeePercentage
	}
	if 0 == c.MaximumAmount {
		return fault.ErrMaximumAmountIsZero
	}
	if 0 == c.MinimumDeposit || c.MinimumDeposit > c.MaximumAmount {
		return fault.ErrInvalidMinimumDeposit
	}
	return nil
}
