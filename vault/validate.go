// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// VerifyAssetInCollection - asset must be filed under the collection
func VerifyAssetInCollection(asset *Asset, collection account.Account) error {
	if nil == asset || asset.Collection != collection {
		return fault.ErrNotInCollection
	}
	return nil
}

// ValidateHoldingAccount - holding account must carry the asset and,
// if expectedOwner is given, be held by that owner
func ValidateHoldingAccount(holding *HoldingAccount, assetId account.Account, expectedOwner *account.Account) error {
	if nil == holding || holding.AssetId != assetId {
		return fault.ErrInvalidAccount
	}
	if nil != expectedOwner && holding.Owner != *expectedOwner {
		return fault.ErrInvalidAccount
	}
	return nil
}

// IsInCollectionCustody - true if the asset has been returned to the
// collection address
func IsInCollectionCustody(holding *HoldingAccount, assetId account.Account, collection account.Account) bool {
	return nil == ValidateHoldingAccount(holding, assetId, &collection)
}
