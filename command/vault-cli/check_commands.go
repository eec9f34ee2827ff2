// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

var (
	ErrRequiredAmount     = fault.InvalidError("amount is required")
	ErrRequiredAssetId    = fault.InvalidError("asset id is required")
	ErrRequiredAuthority  = fault.InvalidError("authority is required")
	ErrRequiredCollection = fault.InvalidError("collection is required")
	ErrRequiredConnect    = fault.InvalidError("connect is required")
	ErrRequiredCreator    = fault.InvalidError("creator is required")
	ErrRequiredCustodian  = fault.InvalidError("custodian is required")
	ErrRequiredHolding    = fault.InvalidError("holding account is required")
	ErrRequiredOwner      = fault.InvalidError("owner is required")
	ErrRequiredPayer      = fault.InvalidError("payer is required")
	ErrRequiredPlugin     = fault.InvalidError("plugin is required")
	ErrRequiredTarget     = fault.InvalidError("target is required")
	ErrRequiredVault      = fault.InvalidError("vault address is required")
)

// a Base58 account that must be present
func checkAccount(s string, missing error) (account.Account, error) {
	if "" == s {
		return account.Zero, missing
	}
	return account.FromBase58(s)
}

// a Base58 account that may be omitted
func checkOptionalAccount(s string) (account.Account, error) {
	if "" == s {
		return account.Zero, nil
	}
	return account.FromBase58(s)
}

// connection is needed for everything that talks to vaultd
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// collection, asset and holding account that identify a vault
func identityArguments(c *cli.Context) (account.Account, account.Account, account.Account, error) {
	collection, err := checkAccount(c.String("collection"), ErrRequiredCollection)
	if nil != err {
		return account.Zero, account.Zero, account.Zero, err
	}
	assetId, err := checkAccount(c.String("asset"), ErrRequiredAssetId)
	if nil != err {
		return account.Zero, account.Zero, account.Zero, err
	}
	holding, err := checkAccount(c.String("holding"), ErrRequiredHolding)
	if nil != err {
		return account.Zero, account.Zero, account.Zero, err
	}
	return collection, assetId, holding, nil
}
