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
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Root_01(t *testing.T) {
	installed := &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}
	local := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	//
	assert.Equal(t, "v0.4.0-rc1", versionString("v0.4.0-rc1", installed, true))
	assert.Equal(t, "v0.3.1", versionString("", installed, true))
	assert.Equal(t, "devel", versionString("", local, true))
	assert.Equal(t, "devel", versionString("", nil, false))
	//
	var out bytes.Buffer
	require.NoError(t, printVersion(&out, "", installed, true))
	assert.Equal(t, "resolve v0.3.1\n", out.String())
}
