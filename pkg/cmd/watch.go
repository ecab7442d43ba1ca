// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchFiles invokes a given function whenever one of the given files is
// written, until the context is cancelled.  Directories are watched rather
// than the files themselves, so that editors which replace a file on save are
// still noticed.
func watchFiles(ctx context.Context, files []string, changed func(file string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	//
	defer watcher.Close()
	//
	watched := make(map[string]bool)
	//
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		//
		watched[abs] = true
		//
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	//
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			} else if watched[event.Name] && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Debugf("%s changed (%s)", event.Name, event.Op)
				changed(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			//
			log.Warnf("watch error: %s", err)
		}
	}
}
