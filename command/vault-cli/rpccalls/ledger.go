// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/rpc/ledger"
)

// GetBalance - balance of an account
func (c *Client) GetBalance(a account.Account) (*ledger.BalanceReply, error) {
	var reply ledger.BalanceReply
	if err := c.call("Ledger.Balance", &ledger.BalanceArguments{Account: a}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Credit - fund an account on a test deployment
func (c *Client) Credit(a account.Account, amount uint64) (*ledger.BalanceReply, error) {
	arguments := ledger.CreditArguments{
		Account: a,
		Amount:  amount,
	}
	var reply ledger.BalanceReply
	if err := c.call("Ledger.Credit", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
