// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc/ratelimit"
	"github.com/bitmark-inc/vaultd/vault"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100

	maximumPluginCount = 100
)

// Registrar - collection, asset and holding account records
type Registrar interface {
	Collection(account.Account) (account.Account, error)
	Asset(account.Account) (*vault.Asset, error)
	HoldingAccount(account.Account) (*vault.HoldingAccount, error)
	RegisterCollection(account.Account, account.Account) error
	RegisterAsset(account.Account, account.Account, account.Account, account.Account, account.Account) error
	SetCustody(account.Account, account.Account) error
	Plugins(account.Account, int) ([]account.Account, error)
}

// Registry - type for RPC calls
type Registry struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Registrar Registrar
}

// New - create the registry RPC service
func New(log *logger.L, registrar Registrar) *Registry {
	return &Registry{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Registrar: registrar,
	}
}

// Collections
// -----------

// CollectionArguments - arguments for RPC
type CollectionArguments struct {
	Collection account.Account `json:"collection"`
	Authority  account.Account `json:"authority"`
}

// CollectionReply - result from RPC
type CollectionReply struct {
	Collection account.Account `json:"collection"`
	Authority  account.Account `json:"authority"`
}

// RegisterCollection - create a collection with its update authority
func (r *Registry) RegisterCollection(arguments *CollectionArguments, reply *CollectionReply) error {

	if err := ratelimit.Limit(r.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.RegisterCollection: %+v", arguments)

	err := r.Registrar.RegisterCollection(arguments.Collection, arguments.Authority)
	if nil != err {
		return err
	}

	reply.Collection = arguments.Collection
	reply.Authority = arguments.Authority
	return nil
}

// Collection - read a collection's update authority
func (r *Registry) Collection(arguments *CollectionArguments, reply *CollectionReply) error {

	if err := ratelimit.Limit(r.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	authority, err := r.Registrar.Collection(arguments.Collection)
	if nil != err {
		return err
	}

	reply.Collection = arguments.Collection
	reply.Authority = authority
	return nil
}

// Assets
// ------

// AssetArguments - arguments for RPC
type AssetArguments struct {
	AssetId    account.Account `json:"assetId"`
	Collection account.Account `json:"collection"`
	Holding    account.Account `json:"holding"`
	Custodian  account.Account `json:"custodian"`
	Authority  account.Account `json:"authority"`
}

// AssetReply - result from RPC
type AssetReply struct {
	Asset   *vault.Asset          `json:"asset"`
	Holding *vault.HoldingAccount `json:"holding"`
}

// RegisterAsset - create an asset in a collection with its holding account
func (r *Registry) RegisterAsset(arguments *AssetArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(r.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.RegisterAsset: %+v", arguments)

	err := r.Registrar.RegisterAsset(
		arguments.AssetId,
		arguments.Collection,
		arguments.Holding,
		arguments.Custodian,
		arguments.Authority,
	)
	if nil != err {
		return err
	}

	return r.fillAsset(arguments.AssetId, reply)
}

// Asset - read an asset and its holding account
func (r *Registry) Asset(arguments *AssetArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(r.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return r.fillAsset(arguments.AssetId, reply)
}

func (r *Registry) fillAsset(assetId account.Account, reply *AssetReply) error {
	asset, err := r.Registrar.Asset(assetId)
	if nil != err {
		return err
	}
	holding, err := r.Registrar.HoldingAccount(asset.Holding)
	if nil != err {
		return err
	}

	reply.Asset = asset
	reply.Holding = holding
	return nil
}

// Custody
// -------

// CustodyArguments - arguments for RPC
type CustodyArguments struct {
	Holding   account.Account `json:"holding"`
	Custodian account.Account `json:"custodian"`
}

// SetCustody - move a holding account to a new custodian
func (r *Registry) SetCustody(arguments *CustodyArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(r.Limiter); err != nil {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.SetCustody: %+v", arguments)

	err := r.Registrar.SetCustody(arguments.Holding, arguments.Custodian)
	if nil != err {
		return err
	}

	holding, err := r.Registrar.HoldingAccount(arguments.Holding)
	if nil != err {
		return err
	}
	reply.Holding = holding
	return nil
}

// Plugins
// -------

// PluginsArguments - arguments for RPC
type PluginsArguments struct {
	Target account.Account `json:"target"`
	Count  int             `json:"count"`
}

// PluginsReply - result from RPC
type PluginsReply struct {
	Target  account.Account   `json:"target"`
	Plugins []account.Account `json:"plugins"`
}

// Plugins - list the plugins attached to a collection or asset
func (r *Registry) Plugins(arguments *PluginsArguments, reply *PluginsReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, maximumPluginCount); err != nil {
		return err
	}

	plugins, err := r.Registrar.Plugins(arguments.Target, arguments.Count)
	if nil != err {
		return err
	}

	reply.Target = arguments.Target
	reply.Plugins = plugins
	return nil
}
