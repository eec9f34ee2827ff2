// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// every error belongs to a class so that callers can decide how to
// react without listing each individual error, e.g. an RPC client can
// treat all NotFoundError values as "try a different address"
package fault
