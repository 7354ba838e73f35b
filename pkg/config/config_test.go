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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/stretchr/testify/require"
)

func Test_Config_Default(t *testing.T) {
	t.Parallel()
	//
	cfg, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "c", cfg.Target)
	require.Equal(t, "pad", cfg.Alignment)
}

func Test_Config_Parse(t *testing.T) {
	t.Parallel()
	//
	cfg, err := Parse(`
namespace = "CL"
target = "go"
output = "gen/cl_autogen"
package = "clgen"
alignment = "reject"
runtime-import = "example.com/bits"
`)
	require.NoError(t, err)
	//
	options, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, "CL", options.Namespace)
	require.Equal(t, "cl_autogen", options.Base)
	require.Equal(t, "clgen", options.Package)
	require.Equal(t, "example.com/bits", options.RuntimeImport)
	require.Equal(t, layout.RejectUnaligned, options.Policy)
	require.Equal(t, "gen", cfg.Dir())
}

func Test_Config_Invalid_00(t *testing.T) {
	checkInvalid(t, `target = "java"`)
}

func Test_Config_Invalid_01(t *testing.T) {
	checkInvalid(t, `alignment = "shrink"`)
}

func Test_Config_Invalid_02(t *testing.T) {
	checkInvalid(t, `tagret = "go"`)
}

func Test_Config_Invalid_03(t *testing.T) {
	checkInvalid(t, `target = `)
}

func Test_Config_Load(t *testing.T) {
	t.Parallel()
	//
	dir := t.TempDir()
	// A missing default file is fine
	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	// Any other missing file is not
	_, err = Load(filepath.Join(dir, "other.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	//
	path := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("target = \"go\"\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "go", cfg.Target)
}

func checkInvalid(t *testing.T, text string) {
	t.Parallel()
	//
	_, err := Parse(text)
	require.Error(t, err)
}
