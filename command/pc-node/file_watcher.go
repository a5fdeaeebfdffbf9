// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/prodcon/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - raises events when the configuration file changes
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.NotFoundError("file does not exist: " + filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// the directory is watched so that editors replacing the file by
// rename still produce events
func (w *FileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}

func (w *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if event.Op&fsnotify.Remove == fsnotify.Remove {
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}
