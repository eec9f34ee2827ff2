// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/rpc/certificate"
	"github.com/bitmark-inc/vaultd/rpc/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestGet(t *testing.T) {
	cer := fixtures.Certificate()
	key := fixtures.Key()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion, "wrong minimum version")
}

func TestGetWhenKeyInvalid(t *testing.T) {
	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		"not a key",
	)
	assert.NotNil(t, err, "invalid key accepted")
	assert.Nil(t, tlsConfig, "wrong config")
	assert.Equal(t, [32]byte{}, fingerprint, "wrong fingerprint")
}
