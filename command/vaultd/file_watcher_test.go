// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/background"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/vault"
)

type recordingTarget struct {
	sync.Mutex
	policies []vault.Configuration
	err      error
}

func (r *recordingTarget) SetConfiguration(c vault.Configuration) error {
	r.Lock()
	defer r.Unlock()
	if nil != r.err {
		return r.err
	}
	r.policies = append(r.policies, c)
	return nil
}

func policyFile(fee string) string {
	return `return { data_directory = ".", vault = { program = "` + testProgram + `", fee_percentage = ` + fee + ` } }`
}

func TestPolicyWatcherReload(t *testing.T) {
	_, fileName, cleanup := writeConfiguration(t, policyFile("20"))
	defer cleanup()

	target := &recordingTarget{}
	w, err := newPolicyWatcher(fileName, logger.New(fileWatcherLoggerPrefix), target)
	require.Nil(t, err, "wrong newPolicyWatcher")

	w.reloaded = make(chan error, 10)
	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	err = ioutil.WriteFile(fileName, []byte(policyFile("35")), 0600)
	require.Nil(t, err, "rewrite configuration")

	// a partially written file can be seen first, wait for a good read
	timeout := time.After(5 * time.Second)
wait:
	for {
		select {
		case err := <-w.reloaded:
			if nil == err {
				break wait
			}
		case <-timeout:
			t.Fatal("no reload after file change")
		}
	}

	target.Lock()
	defer target.Unlock()
	require.NotEqual(t, 0, len(target.policies), "policy not delivered")
	assert.Equal(t, uint64(35), target.policies[len(target.policies)-1].FeePercentage, "wrong fee")
}

func TestPolicyWatcherReloadWhenInvalid(t *testing.T) {
	_, fileName, cleanup := writeConfiguration(t, policyFile("20"))
	defer cleanup()

	target := &recordingTarget{}
	w, err := newPolicyWatcher(fileName, logger.New(fileWatcherLoggerPrefix), target)
	require.Nil(t, err, "wrong newPolicyWatcher")
	defer w.watcher.Close()

	err = ioutil.WriteFile(fileName, []byte(policyFile("101")), 0600)
	require.Nil(t, err, "rewrite configuration")

	err = w.reload()
	assert.Equal(t, fault.ErrInvalidFeePercentage, err, "wrong error")
	assert.Equal(t, 0, len(target.policies), "invalid policy delivered")
}

func TestPolicyWatcherReloadWhenRejected(t *testing.T) {
	_, fileName, cleanup := writeConfiguration(t, policyFile("20"))
	defer cleanup()

	target := &recordingTarget{
		err: fault.ErrProgramChanged,
	}
	w, err := newPolicyWatcher(fileName, logger.New(fileWatcherLoggerPrefix), target)
	require.Nil(t, err, "wrong newPolicyWatcher")
	defer w.watcher.Close()

	err = w.reload()
	assert.Equal(t, fault.ErrProgramChanged, err, "wrong error")
}

func TestPolicyWatcherWhenFileMissing(t *testing.T) {
	_, err := newPolicyWatcher("/nonexistent/vaultd.conf", logger.New(fileWatcherLoggerPrefix), &recordingTarget{})
	assert.NotNil(t, err, "missing file accepted")
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "", Op: fsnotify.Write}), "empty name")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
}
