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

// ProofStep records a single transition of a model.  A step holds enough
// information to reverse itself, and to identify which conjuncts it relied
// upon and which it changed.
type ProofStep interface {
	// Undo this step, which must be the most recent step of the model.
	Undo(model *Model)
	// Transformation returns a description of the rule applied.
	Transformation() string
	// PrerequisiteConjuncts returns the conjuncts read by this step.
	PrerequisiteConjuncts() []Conjunct
	// AffectedConjuncts returns the conjuncts introduced, altered or removed
	// by this step.
	AffectedConjuncts() []Conjunct
	// String returns a human-readable summary.
	String() string
}
