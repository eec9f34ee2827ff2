// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/rpc/registry"
)

func runRegisterCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkAccount(c.String("collection"), ErrRequiredCollection)
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

	response, err := client.RegisterCollection(collection, authority)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkAccount(c.String("collection"), ErrRequiredCollection)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCollection(collection)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRegisterAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	arguments := &registry.AssetArguments{}
	var err error

	arguments.AssetId, err = checkAccount(c.String("asset"), ErrRequiredAssetId)
	if nil != err {
		return err
	}
	arguments.Collection, err = checkAccount(c.String("collection"), ErrRequiredCollection)
	if nil != err {
		return err
	}
	arguments.Holding, err = checkAccount(c.String("holding"), ErrRequiredHolding)
	if nil != err {
		return err
	}
	arguments.Custodian, err = checkAccount(c.String("custodian"), ErrRequiredCustodian)
	if nil != err {
		return err
	}
	arguments.Authority, err = checkAccount(c.String("authority"), ErrRequiredAuthority)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterAsset(arguments)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAccount(c.String("asset"), ErrRequiredAssetId)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAsset(assetId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetCustody(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holding, err := checkAccount(c.String("holding"), ErrRequiredHolding)
	if nil != err {
		return err
	}
	custodian, err := checkAccount(c.String("custodian"), ErrRequiredCustodian)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetCustody(holding, custodian)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runPlugins(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAccount(c.String("target"), ErrRequiredTarget)
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetPlugins(target, count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
