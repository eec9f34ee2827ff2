// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
	testProgram    = "7WV8oiDTJiQynwq3KwrfUACXYjpMNQi3uy8Lvi62KcRK"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// write a configuration into a fresh directory
func writeConfiguration(t *testing.T, content string) (string, string, func()) {
	dir, err := ioutil.TempDir("", "vaultd-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "vaultd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName, func() { os.RemoveAll(dir) }
}
