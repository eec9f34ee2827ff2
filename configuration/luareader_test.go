// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/configuration"
	"github.com/bitmark-inc/vaultd/fault"
)

type nested struct {
	Name  string `gluamapper:"name"`
	Count uint64 `gluamapper:"count"`
}

type testConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	FeePercentage uint64   `gluamapper:"fee_percentage"`
	Enabled       bool     `gluamapper:"enabled"`
	Listen        []string `gluamapper:"listen"`
	Nested        nested   `gluamapper:"nested"`
	Script        string   `gluamapper:"script"`
}

const testScript = `
local M = {}

M.data_directory = "/var/lib/vaultd"
M.fee_percentage = 20
M.enabled = true
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.nested = {
    name = "holding",
    count = 1000000000000,
}
M.script = arg[0]

return M
`

func writeScript(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	c := testConfiguration{
		FeePercentage: 99,
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse error")

	assert.Equal(t, "/var/lib/vaultd", c.DataDirectory, "wrong data directory")
	assert.Equal(t, uint64(20), c.FeePercentage, "wrong fee percentage")
	assert.True(t, c.Enabled, "wrong enabled")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "wrong listen")
	assert.Equal(t, "holding", c.Nested.Name, "wrong nested name")
	assert.Equal(t, uint64(1000000000000), c.Nested.Count, "wrong nested count")
	assert.Equal(t, fileName, c.Script, "wrong arg[0]")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeScript(t, "return { enabled = true }\n")
	defer cleanup()

	c := testConfiguration{
		DataDirectory: "default",
		FeePercentage: 20,
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse error")
	assert.Equal(t, "default", c.DataDirectory, "default was overwritten")
	assert.Equal(t, uint64(20), c.FeePercentage, "default was overwritten")
	assert.True(t, c.Enabled, "wrong enabled")
}

func TestParseConfigurationFileWhenNotStructPointer(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")

	err = configuration.ParseConfigurationFile(fileName, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestParseConfigurationFileWhenNoTableReturned(t *testing.T) {
	fileName, cleanup := writeScript(t, "local x = 1\n")
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestParseConfigurationFileWhenScriptInvalid(t *testing.T) {
	fileName, cleanup := writeScript(t, "return {\n")
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error not detected")
}

func TestParseConfigurationFileWhenMissing(t *testing.T) {
	c := testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/vaultd.conf", &c)
	assert.NotNil(t, err, "missing file not detected")
}
