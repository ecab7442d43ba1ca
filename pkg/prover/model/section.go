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

import "fmt"

// Section identifies one of the three areas of a proof state.
type Section uint8

const (
	// ANTECEDENTS holds the local theorems (i.e. known facts).
	ANTECEDENTS Section = iota
	// CONSEQUENTS holds the goals remaining to be proved.
	CONSEQUENTS
	// THEOREM_LIBRARY holds the read-only global theorems.
	THEOREM_LIBRARY
)

func (s Section) String() string {
	switch s {
	case ANTECEDENTS:
		return "antecedents"
	case CONSEQUENTS:
		return "consequents"
	case THEOREM_LIBRARY:
		return "library"
	}
	//
	panic(fmt.Sprintf("unknown section %d", s))
}

// InvariantError signals a programming error on the part of the caller, such as
// altering a library theorem or using a site from another model.  These are
// raised as panics rather than returned.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

func violation(format string, args ...any) {
	panic(&InvariantError{fmt.Sprintf(format, args...)})
}
