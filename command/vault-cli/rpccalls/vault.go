// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/rpc/vaults"
	"github.com/bitmark-inc/vaultd/vault"
)

// Initialise - create and fund a vault
func (c *Client) Initialise(collection account.Account, assetId account.Account, payer account.Account, amount uint64) (*vault.Receipt, error) {
	arguments := vaults.InitialiseArguments{
		Collection: collection,
		AssetId:    assetId,
		Payer:      payer,
		Amount:     amount,
	}
	var reply vault.Receipt
	if err := c.call("Vault.Initialise", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// TransferOwnership - change the vault owner
func (c *Client) TransferOwnership(vaultAddress account.Account, newOwner account.Account) (*vault.Receipt, error) {
	arguments := vaults.TransferArguments{
		Vault:    vaultAddress,
		NewOwner: newOwner,
	}
	var reply vault.Receipt
	if err := c.call("Vault.TransferOwnership", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ApplyRoyalty - pay a royalty into the vault and to the creator
func (c *Client) ApplyRoyalty(vaultAddress account.Account, amount uint64, creator account.Account, payer account.Account) (*vault.Receipt, error) {
	arguments := vaults.RoyaltyArguments{
		Vault:   vaultAddress,
		Amount:  amount,
		Creator: creator,
		Payer:   payer,
	}
	var reply vault.Receipt
	if err := c.call("Vault.ApplyRoyalty", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Release - pay out the escrow and close the vault
func (c *Client) Release(vaultAddress account.Account, lastOwner account.Account, collection account.Account) (*vault.Receipt, error) {
	arguments := vaults.ReleaseArguments{
		Vault:      vaultAddress,
		LastOwner:  lastOwner,
		Collection: collection,
	}
	var reply vault.Receipt
	if err := c.call("Vault.Release", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// AttachPlugin - attach a plugin to a collection or asset
func (c *Client) AttachPlugin(target account.Account, plugin account.Account, authority account.Account) (*vault.Receipt, error) {
	arguments := vaults.AttachPluginArguments{
		Target:    target,
		Plugin:    plugin,
		Authority: authority,
	}
	var reply vault.Receipt
	if err := c.call("Vault.AttachPlugin", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetVault - read a vault by address or by identity
func (c *Client) GetVault(arguments *vaults.GetArguments) (*vaults.GetReply, error) {
	var reply vaults.GetReply
	if err := c.call("Vault.Get", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Derive - compute a vault address
func (c *Client) Derive(collection account.Account, assetId account.Account, holding account.Account) (*vaults.DeriveReply, error) {
	arguments := vaults.DeriveArguments{
		Collection: collection,
		AssetId:    assetId,
		Holding:    holding,
	}
	var reply vaults.DeriveReply
	if err := c.call("Vault.Derive", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
