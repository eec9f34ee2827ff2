// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - per-asset custody vault with royalty escrow
//
// A vault is a record at a derived address that follows one asset
// through its custodians.  Each royalty payment on the asset sends a
// fixed percentage into the vault escrow and the rest to the creator.
// When the asset is returned to its collection the escrow is paid to
// the last recorded owner and the record is closed.
//
// State transitions:
//
//   (none)  --Initialise-------------------> active
//   active  --TransferOwnership/ApplyRoyalty-> active
//   active  --Release-----------------------> closed
//
// Every operation runs inside one ledger transaction so that record
// changes and balance transfers are applied together or not at all.
package vault
