// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaults

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	"github.com/bitmark-inc/vaultd/vault"
)

const (
	rateLimitVault = 200
	rateBurstVault = 100
)

// Engine - the vault operations exposed over RPC
type Engine interface {
	Initialise(account.Account, account.Account, account.Account, uint64) (*vault.Receipt, error)
	TransferOwnership(account.Account, account.Account) (*vault.Receipt, error)
	ApplyRoyalty(account.Account, uint64, account.Account, account.Account) (*vault.Receipt, error)
	Release(account.Account, account.Account, account.Account) (*vault.Receipt, error)
	AttachPlugin(account.Account, account.Account, account.Account) (*vault.Receipt, error)
	Get(account.Account) (*vault.Record, error)
	Find(account.Account, account.Account, account.Account) (account.Account, *vault.Record, error)
	Derive(account.Account, account.Account, account.Account) (account.Account, uint8, error)
	Configuration() vault.Configuration
}

// Vault - type for RPC calls
type Vault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  Engine
}

// New - create the vault RPC service
func New(log *logger.L, engine Engine) *Vault {
	return &Vault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		Engine:  engine,
	}
}

// Initialise the vault for an asset
// ---------------------------------

// InitialiseArguments - arguments for RPC
type InitialiseArguments struct {
	Collection account.Account `json:"collection"`
	AssetId    account.Account `json:"assetId"`
	Payer      account.Account `json:"payer"`
	Amount     uint64          `json:"amount,string"`
}

// Initialise - create the vault and fund its escrow
func (v *Vault) Initialise(arguments *InitialiseArguments, reply *vault.Receipt) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Infof("Vault.Initialise: %+v", arguments)

	receipt, err := v.Engine.Initialise(arguments.Collection, arguments.AssetId, arguments.Payer, arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Transfer the vault to a new owner
// ---------------------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Vault    account.Account `json:"vault"`
	NewOwner account.Account `json:"newOwner"`
}

// TransferOwnership - change the recorded owner of a vault
func (v *Vault) TransferOwnership(arguments *TransferArguments, reply *vault.Receipt) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Infof("Vault.TransferOwnership: %+v", arguments)

	receipt, err := v.Engine.TransferOwnership(arguments.Vault, arguments.NewOwner)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Royalty payment on a sale
// -------------------------

// RoyaltyArguments - arguments for RPC
type RoyaltyArguments struct {
	Vault   account.Account `json:"vault"`
	Amount  uint64          `json:"amount,string"`
	Creator account.Account `json:"creator"`
	Payer   account.Account `json:"payer"`
}

// ApplyRoyalty - split a royalty between the escrow and the creator
func (v *Vault) ApplyRoyalty(arguments *RoyaltyArguments, reply *vault.Receipt) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Infof("Vault.ApplyRoyalty: %+v", arguments)

	receipt, err := v.Engine.ApplyRoyalty(arguments.Vault, arguments.Amount, arguments.Creator, arguments.Payer)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Release the escrow and close the vault
// --------------------------------------

// ReleaseArguments - arguments for RPC
type ReleaseArguments struct {
	Vault      account.Account `json:"vault"`
	LastOwner  account.Account `json:"lastOwner"`
	Collection account.Account `json:"collection"`
}

// Release - pay the escrow to the last owner and close the vault
func (v *Vault) Release(arguments *ReleaseArguments, reply *vault.Receipt) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Infof("Vault.Release: %+v", arguments)

	receipt, err := v.Engine.Release(arguments.Vault, arguments.LastOwner, arguments.Collection)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Attach a plugin to a collection or asset
// ----------------------------------------

// AttachPluginArguments - arguments for RPC
type AttachPluginArguments struct {
	Target    account.Account `json:"target"`
	Plugin    account.Account `json:"plugin"`
	Authority account.Account `json:"authority"`
}

// AttachPlugin - register a plugin with the target's collection
func (v *Vault) AttachPlugin(arguments *AttachPluginArguments, reply *vault.Receipt) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Infof("Vault.AttachPlugin: %+v", arguments)

	receipt, err := v.Engine.AttachPlugin(arguments.Target, arguments.Plugin, arguments.Authority)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Read a vault
// ------------

// GetArguments - arguments for RPC
//
// either the vault address or the full identity must be given
type GetArguments struct {
	Vault      account.Account `json:"vault"`
	Collection account.Account `json:"collection"`
	AssetId    account.Account `json:"assetId"`
	Holding    account.Account `json:"holding"`
}

// GetReply - result from RPC
type GetReply struct {
	Vault  account.Account `json:"vault"`
	Record *vault.Record   `json:"record"`
}

// Get - read the state of a vault
func (v *Vault) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	v.Log.Debugf("Vault.Get: %+v", arguments)

	if !arguments.Vault.IsZero() {
		record, err := v.Engine.Get(arguments.Vault)
		if nil != err {
			return err
		}
		reply.Vault = arguments.Vault
		reply.Record = record
		return nil
	}

	if arguments.Collection.IsZero() || arguments.AssetId.IsZero() || arguments.Holding.IsZero() {
		return fault.ErrMissingParameters
	}

	vaultAddress, record, err := v.Engine.Find(arguments.Collection, arguments.AssetId, arguments.Holding)
	if nil != err {
		return err
	}
	reply.Vault = vaultAddress
	reply.Record = record
	return nil
}

// Compute a vault address
// -----------------------

// DeriveArguments - arguments for RPC
type DeriveArguments struct {
	Collection account.Account `json:"collection"`
	AssetId    account.Account `json:"assetId"`
	Holding    account.Account `json:"holding"`
}

// DeriveReply - result from RPC
type DeriveReply struct {
	Vault   account.Account `json:"vault"`
	Bump    uint8           `json:"bump"`
	Program account.Account `json:"program"`
}

// Derive - compute the vault address without touching the ledger
func (v *Vault) Derive(arguments *DeriveArguments, reply *DeriveReply) error {

	if err := ratelimit.Limit(v.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	vaultAddress, bump, err := v.Engine.Derive(arguments.Collection, arguments.AssetId, arguments.Holding)
	if nil != err {
		return err
	}
	reply.Vault = vaultAddress
	reply.Bump = bump
	reply.Program = v.Engine.Configuration().Program
	return nil
}
