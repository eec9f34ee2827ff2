// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
)

type generateReply struct {
	Account    account.Account `json:"account"`
	PrivateKey string          `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := account.NewKeyPair(rand.Reader)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		Account:    keyPair.Account,
		PrivateKey: keyPair.PrivateKeyString(),
	})
	return nil
}
