// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS for the vault daemon
//
// services:
//
//   Vault.Initialise        Vault.TransferOwnership
//   Vault.ApplyRoyalty      Vault.Release
//   Vault.AttachPlugin      Vault.Get
//   Vault.Derive
//   Ledger.Balance          Ledger.Credit
//   Registry.RegisterCollection
//   Registry.Collection
//   Registry.RegisterAsset  Registry.Asset
//   Registry.SetCustody     Registry.Plugins
//   Node.Info
package rpc
