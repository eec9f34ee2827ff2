// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vaultd/vault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// policyTarget - receives a new vault policy
type policyTarget interface {
	SetConfiguration(vault.Configuration) error
}

// policyWatcher - reload the vault policy when the configuration file changes
//
// the directory is watched so that editors which replace the file
// are also detected
type policyWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	target   policyTarget
	reloaded chan error
}

func newPolicyWatcher(targetFile string, log *logger.L, target policyTarget) (*policyWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %v", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("configuration file: %q  error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %v, abort", err)
		watcher.Close()
		return nil, err
	}

	return &policyWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		target:   target,
	}, nil
}

// Run - background process to watch for changes
func (w *policyWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, current policy retained", w.filePath)
				continue loop
			}

			if watcherEventFileChange(event) {
				err := w.reload()
				w.notify(err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	w.log.Info("stopped")
}

// report a reload result without blocking
func (w *policyWatcher) notify(err error) {
	if nil == w.reloaded {
		return
	}
	select {
	case w.reloaded <- err:
	default:
	}
}

// a failed reload leaves the current policy in force
func (w *policyWatcher) reload() error {
	policy, err := readPolicy(w.filePath)
	if nil != err {
		w.log.Errorf("failed to read configuration from: %q  error: %s", w.filePath, err)
		return err
	}

	err = w.target.SetConfiguration(policy)
	if nil != err {
		w.log.Errorf("policy rejected: %s", err)
		return err
	}
	return nil
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
