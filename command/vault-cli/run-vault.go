// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/rpc/vaults"
)

func runInitialise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkAccount(c.String("collection"), ErrRequiredCollection)
	if nil != err {
		return err
	}
	assetId, err := checkAccount(c.String("asset"), ErrRequiredAssetId)
	if nil != err {
		return err
	}
	payer, err := checkAccount(c.String("payer"), ErrRequiredPayer)
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

	response, err := client.Initialise(collection, assetId, payer, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vaultAddress, err := checkAccount(c.String("vault"), ErrRequiredVault)
	if nil != err {
		return err
	}
	owner, err := checkAccount(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferOwnership(vaultAddress, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRoyalty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vaultAddress, err := checkAccount(c.String("vault"), ErrRequiredVault)
	if nil != err {
		return err
	}
	creator, err := checkAccount(c.String("creator"), ErrRequiredCreator)
	if nil != err {
		return err
	}
	payer, err := checkAccount(c.String("payer"), ErrRequiredPayer)
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

	response, err := client.ApplyRoyalty(vaultAddress, amount, creator, payer)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRelease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vaultAddress, err := checkAccount(c.String("vault"), ErrRequiredVault)
	if nil != err {
		return err
	}
	owner, err := checkAccount(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	collection, err := checkAccount(c.String("collection"), ErrRequiredCollection)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Release(vaultAddress, owner, collection)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAttachPlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAccount(c.String("target"), ErrRequiredTarget)
	if nil != err {
		return err
	}
	plugin, err := checkAccount(c.String("plugin"), ErrRequiredPlugin)
	if nil != err {
		return err
	}
	authority, err := checkAccount(c.String("authority"), ErrRequiredAuthority)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AttachPlugin(target, plugin, authority)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// either a vault address or the full identity triple
func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	arguments := &vaults.GetArguments{}
	var err error

	arguments.Vault, err = checkOptionalAccount(c.String("vault"))
	if nil != err {
		return err
	}
	if arguments.Vault.IsZero() {
		arguments.Collection, arguments.AssetId, arguments.Holding, err = identityArguments(c)
		if nil != err {
			return err
		}
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetVault(arguments)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, assetId, holding, err := identityArguments(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "collection: %s\n", collection)
		fmt.Fprintf(m.e, "asset: %s\n", assetId)
		fmt.Fprintf(m.e, "holding: %s\n", holding)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Derive(collection, assetId, holding)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
