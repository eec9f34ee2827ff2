// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic vault addresses
//
// A vault address is a SHA3-256 digest of a fixed seed list, a bump
// byte, the owning program identifier and a domain separator.  The
// bump counts down from 255 and the first digest that does not decode
// as an Ed25519 curve point is used, so no private key can ever sign
// for the address.
//
// The seed list is ("vault", collection, asset, holding account) which
// are all immutable for the life of a vault, so an ownership change
// never moves the record.
package address
