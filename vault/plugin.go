// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

// AttachPlugin - ask the registry to attach a plugin to a collection
// or asset
func (e *Engine) AttachPlugin(target account.Account, plugin account.Account, authority account.Account) (*Receipt, error) {
	if target.IsZero() || plugin.IsZero() {
		return nil, fault.ErrInvalidAccount
	}

	err := e.registry.AttachPlugin(target, plugin, authority)
	if nil != err {
		e.log.Debugf("plugin: target: %s  plugin: %s  authority: %s  error: %s", target, plugin, authority, err)
		return nil, err
	}

	e.log.Infof("plugin: target: %s  plugin: %s  attached", target, plugin)

	return &Receipt{
		Operation: OperationAttachPlugin,
		Vault:     target,
		Owner:     authority,
	}, nil
}
