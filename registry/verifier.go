// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/vault"
)

// Verifier - custody check against the registry holding accounts
type Verifier struct {
	registry *Registry
}

// NewVerifier - create a verifier
func NewVerifier(registry *Registry) *Verifier {
	return &Verifier{
		registry: registry,
	}
}

// VerifyCustody - newOwner must be the custodian of the vault's
// holding account, and that account must carry the vault's asset
func (v *Verifier) VerifyCustody(record *vault.Record, newOwner account.Account) error {
	holding, err := v.registry.HoldingAccount(record.Holding)
	if nil != err {
		return err
	}
	return vault.ValidateHoldingAccount(holding, record.AssetId, &newOwner)
}
