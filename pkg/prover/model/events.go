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
package model

// ChangeListener is notified when a model changes.  Depending upon the model's
// ChangeEventMode, a listener may not be notified of every change.
type ChangeListener interface {
	ModelChanged(model *Model)
}

// DEFAULT_CHANGE_PERIOD is the number of unimportant changes between
// notifications in intermittent mode.
const DEFAULT_CHANGE_PERIOD = 1000

// ChangeEventMode decides whether a given change should be reported to
// listeners.
type ChangeEventMode struct {
	period uint
	count  uint
}

// Always reports every change.
func Always() *ChangeEventMode {
	return &ChangeEventMode{1, 0}
}

// Intermittent reports every important change, and otherwise only every nth
// change.
func Intermittent(n uint) *ChangeEventMode {
	if n == 0 {
		n = 1
	}
	//
	return &ChangeEventMode{n, 0}
}

// Report records a change, returning true if it should be reported.
func (p *ChangeEventMode) Report(important bool) bool {
	p.count++
	//
	return important || p.count%p.period == 0
}

// Period returns the number of changes between unimportant notifications.
func (p *ChangeEventMode) Period() uint {
	return p.period
}
