// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/vaultd/command/vault-cli/rpccalls"
)

func newClient(m *metadata) (*rpccalls.Client, error) {
	connect, err := checkConnect(m.connect)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connect)
	}

	return rpccalls.NewClient(connect, m.verbose, m.e)
}
