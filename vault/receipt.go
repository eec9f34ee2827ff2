// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
)

// operation names
const (
	OperationInitialise        = "initialise"
	OperationTransferOwnership = "transfer-ownership"
	OperationApplyRoyalty      = "apply-royalty"
	OperationRelease           = "release"
	OperationAttachPlugin      = "attach-plugin"
)

// Receipt - result of a successful operation
type Receipt struct {
	Operation string          `json:"operation"`
	Vault     account.Account `json:"vault"`
	Owner     account.Account `json:"owner"`
	Escrow    uint64          `json:"escrowBalance"`
	Amount    uint64          `json:"amount,omitempty"`
	ToVault   uint64          `json:"toVault,omitempty"`
	ToCreator uint64          `json:"toCreator,omitempty"`
	Released  uint64          `json:"released,omitempty"`
	Refunded  uint64          `json:"refunded,omitempty"`
}
