// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/rpc/registry"
)

// RegisterCollection - create a collection
func (c *Client) RegisterCollection(collection account.Account, authority account.Account) (*registry.CollectionReply, error) {
	arguments := registry.CollectionArguments{
		Collection: collection,
		Authority:  authority,
	}
	var reply registry.CollectionReply
	if err := c.call("Registry.RegisterCollection", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetCollection - read a collection
func (c *Client) GetCollection(collection account.Account) (*registry.CollectionReply, error) {
	var reply registry.CollectionReply
	if err := c.call("Registry.Collection", &registry.CollectionArguments{Collection: collection}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// RegisterAsset - create an asset with its holding account
func (c *Client) RegisterAsset(arguments *registry.AssetArguments) (*registry.AssetReply, error) {
	var reply registry.AssetReply
	if err := c.call("Registry.RegisterAsset", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetAsset - read an asset and its holding account
func (c *Client) GetAsset(assetId account.Account) (*registry.AssetReply, error) {
	var reply registry.AssetReply
	if err := c.call("Registry.Asset", &registry.AssetArguments{AssetId: assetId}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetCustody - move a holding account to a new custodian
func (c *Client) SetCustody(holding account.Account, custodian account.Account) (*registry.AssetReply, error) {
	arguments := registry.CustodyArguments{
		Holding:   holding,
		Custodian: custodian,
	}
	var reply registry.AssetReply
	if err := c.call("Registry.SetCustody", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetPlugins - plugins attached to a collection
func (c *Client) GetPlugins(target account.Account, count int) (*registry.PluginsReply, error) {
	arguments := registry.PluginsArguments{
		Target: target,
		Count:  count,
	}
	var reply registry.PluginsReply
	if err := c.call("Registry.Plugins", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
