// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/rpc/ledger"
)

type balanceDisplay struct {
	Account account.Account `json:"account"`
	Balance uint64          `json:"balance,string"`
	Units   string          `json:"units"`
}

func (m *metadata) display(reply *ledger.BalanceReply) balanceDisplay {
	return balanceDisplay{
		Account: reply.Account,
		Balance: reply.Balance,
		Units:   formatAmount(reply.Balance, m.decimals),
	}
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkAccount(c.String("account"), ErrRequiredOwner)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(a)
	if nil != err {
		return err
	}

	printJson(m.w, m.display(response))
	return nil
}

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkAccount(c.String("account"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	amount, err := m.amount(c.String("amount"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Credit(a, amount)
	if nil != err {
		return err
	}

	printJson(m.w, m.display(response))
	return nil
}
