// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/rpc"
	"github.com/bitmark-inc/vaultd/rpc/fixtures"
	"github.com/bitmark-inc/vaultd/rpc/listeners"
	"github.com/bitmark-inc/vaultd/rpc/mocks"
	"github.com/bitmark-inc/vaultd/rpc/node"
	"github.com/bitmark-inc/vaultd/rpc/server"
	"github.com/bitmark-inc/vaultd/vault"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func writeKeyPair(t *testing.T) (string, string, func()) {
	dir, err := ioutil.TempDir("", "rpc-")
	require.Nil(t, err, "temp dir")

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(certificateFile, []byte(fixtures.Certificate()), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(keyFile, []byte(fixtures.Key()), 0600), "write key")

	return certificateFile, keyFile, func() { os.RemoveAll(dir) }
}

func TestInitialiseAndFinalise(t *testing.T) {
	certificateFile, keyFile, cleanup := writeKeyPair(t)
	defer cleanup()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockEngine(ctl)
	engine.EXPECT().Configuration().Return(vault.DefaultConfiguration(fixtures.Program)).Times(1)

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}
	services := server.Services{
		Engine:    engine,
		Balances:  mocks.NewMockBalances(ctl),
		Registrar: mocks.NewMockRegistrar(ctl),
	}

	err := rpc.Initialise(&configuration, "1.0", services)
	require.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&configuration, "1.0", services)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	addresses := rpc.Addresses()
	require.Equal(t, 1, len(addresses), "wrong address count")

	conn, err := tls.Dial("tcp", addresses[0].String(), &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")

	client := jsonrpc.NewClient(conn)
	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "second Finalise")
	assert.Nil(t, rpc.Addresses(), "addresses after Finalise")
}

func TestInitialiseWhenCertificateMissing(t *testing.T) {
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}

	err := rpc.Initialise(&configuration, "1.0", server.Services{})
	assert.NotNil(t, err, "missing certificate accepted")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "initialised after failure")
}
