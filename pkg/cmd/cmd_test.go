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
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-clgen/pkg/cl"
	"github.com/consensys/go-clgen/pkg/config"
	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func Test_ParseAddress_00(t *testing.T) {
	checkParseAddress(t, "0x1000", 0x1000)
}
func Test_ParseAddress_01(t *testing.T) {
	checkParseAddress(t, "DEADBEEF", 0xdeadbeef)
}
func Test_ParseAddress_02(t *testing.T) {
	checkParseAddress(t, "0", 0)
}

func Test_ParseAddress_Invalid(t *testing.T) {
	t.Parallel()
	//
	for _, text := range []string{"", "0x", "0xg1", "100000000"} {
		_, err := parseAddress(text)
		require.Error(t, err, text)
	}
}

func Test_Export_Json(t *testing.T) {
	t.Parallel()
	//
	var infos []LayoutInfo
	//
	require.NoError(t, json.Unmarshal(export(t, "json"), &infos))
	checkExported(t, infos)
}

func Test_Export_Cbor(t *testing.T) {
	t.Parallel()
	//
	var infos []LayoutInfo
	//
	require.NoError(t, cbor.Unmarshal(export(t, "cbor"), &infos))
	checkExported(t, infos)
	// Canonical encoding is deterministic
	require.Equal(t, export(t, "cbor"), export(t, "cbor"))
}

func Test_Export_Table(t *testing.T) {
	t.Parallel()
	//
	text := string(export(t, "table"))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	// Heading plus one row per definition
	require.Len(t, lines, 45)
	require.True(t, strings.HasPrefix(lines[0], " Name "))
	require.Contains(t, text, "STATE_TILE_COORDS")
	require.NotContains(t, text, "\x1b[")
}

func Test_Export_Invalid(t *testing.T) {
	t.Parallel()
	//
	var out bytes.Buffer
	//
	require.Error(t, exportLayouts(&out, "yaml", newV3DCodec().Layouts()))
}

func Test_Generate_C(t *testing.T) {
	t.Parallel()
	//
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "out", "v3d_cl")
	//
	files, err := generateFiles(cfg)
	require.NoError(t, err)
	require.Len(t, files, 2)
	//
	header, err := os.ReadFile(files[0])
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(files[0], "v3d_cl.h"))
	require.Contains(t, string(header), "V3D_HW_INSTR_HALT")
	//
	source, err := os.ReadFile(files[1])
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(files[1], "v3d_cl.c"))
	require.Contains(t, string(source), "calc_next_ins")
}

func Test_Generate_Go(t *testing.T) {
	t.Parallel()
	//
	cfg := config.Default()
	cfg.Target = "go"
	cfg.Output = filepath.Join(t.TempDir(), "v3d_cl")
	//
	files, err := generateFiles(cfg)
	require.NoError(t, err)
	require.Len(t, files, 2)
	//
	ops, err := os.ReadFile(files[1])
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(files[1], "v3d_cl_ops.go"))
	require.Contains(t, string(ops), "package v3dcl")
	require.Contains(t, string(ops), "func NextInstruction(")
}

func Test_Generate_Go_Deterministic(t *testing.T) {
	t.Parallel()
	//
	var contents [2][]byte
	//
	for i := range contents {
		cfg := config.Default()
		cfg.Target = "go"
		cfg.Output = filepath.Join(t.TempDir(), "v3d_cl")
		//
		files, err := generateFiles(cfg)
		require.NoError(t, err)
		//
		contents[i], err = os.ReadFile(files[0])
		require.NoError(t, err)
	}
	//
	require.Equal(t, contents[0], contents[1])
	require.True(t, strings.HasPrefix(string(contents[0]), "// Copyright Consensys Software Inc.\n"))
	require.Equal(t, 1, strings.Count(string(contents[0]), "DO NOT EDIT"))
}

func Test_CommitFiles_00(t *testing.T) {
	t.Parallel()
	//
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := commitFiles(dir, []string{"a.h", "a.c"}, func(i int, path string) error {
		return os.WriteFile(path, []byte{byte('0' + i)}, 0644)
	})
	//
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.h"), filepath.Join(dir, "a.c")}, paths)
	//
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func Test_CommitFiles_01(t *testing.T) {
	t.Parallel()
	// A failure writing the second file leaves nothing behind
	dir := t.TempDir()
	_, err := commitFiles(dir, []string{"a.h", "a.c"}, func(i int, path string) error {
		if i == 1 {
			return errors.New("disk full")
		}
		//
		return os.WriteFile(path, nil, 0644)
	})
	//
	require.Error(t, err)
	//
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func Test_Generate_Invalid(t *testing.T) {
	t.Parallel()
	//
	cfg := config.Default()
	cfg.Target = "rust"
	cfg.Output = filepath.Join(t.TempDir(), "v3d_cl")
	//
	_, err := generateFiles(cfg)
	require.Error(t, err)
	// Nothing written
	_, err = os.Stat(cfg.Dir())
	require.NoError(t, err)
	entries, err := os.ReadDir(cfg.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func Test_Disassemble(t *testing.T) {
	t.Parallel()
	//
	var (
		out   bytes.Buffer
		image = cl.Image{Base: 0x1000, Bytes: []byte{v3d.HALT}}
	)
	//
	require.NoError(t, disassemble(&out, image, 0x1000, 0))
	require.Equal(t, "Disassembling CL start: 00001000 end: 00000000\n"+
		"CL buffer addr: 00001000\n------------------------\n"+
		"00001000: HALT\n\n", out.String())
}

func Test_Search_None(t *testing.T) {
	t.Parallel()
	//
	var out bytes.Buffer
	//
	printBinningLists(&out, cl.Image{Base: 0, Bytes: make([]byte, 64)})
	require.Equal(t, "No bin lists found\n", out.String())
}

func Test_Search_One(t *testing.T) {
	t.Parallel()
	//
	var (
		out  bytes.Buffer
		data = make([]byte, 32)
	)
	//
	data[4] = v3d.STATE_TILE_BINNING_MODE
	data[19] = 2<<5 | 1<<2
	data[20] = v3d.START_TILE_BINNING
	data[21] = v3d.PRIMITIVE_LIST_FORMAT
	data[22] = 2 | 1<<4
	//
	printBinningLists(&out, cl.Image{Base: 0x8000, Bytes: data})
	require.Equal(t, "Found a bin list beginning at 8004\n", out.String())
}

func Test_Stats(t *testing.T) {
	t.Parallel()
	//
	var out bytes.Buffer
	//
	unit, err := prepareV3D()
	require.NoError(t, err)
	printStats(&out, unit)
	require.Contains(t, out.String(), "instructions: 42\n")
	require.Contains(t, out.String(), "records:      2\n")
	require.Contains(t, out.String(), "largest:      SHADER_RECORD (36 bytes)\n")
}

func export(t *testing.T, format string) []byte {
	var out bytes.Buffer
	//
	require.NoError(t, exportLayouts(&out, format, newV3DCodec().Layouts()))
	//
	return out.Bytes()
}

func checkExported(t *testing.T, infos []LayoutInfo) {
	require.Len(t, infos, 44)
	// HALT
	require.Equal(t, "HALT", infos[0].Name)
	require.NotNil(t, infos[0].Opcode)
	require.Equal(t, uint8(0), *infos[0].Opcode)
	require.Equal(t, uint(1), infos[0].Size)
	require.Empty(t, infos[0].Fields)
	// Records have no opcode
	last := infos[len(infos)-1]
	require.Equal(t, v3d.ATTR_ARRAY_RECORD, last.Name)
	require.Nil(t, last.Opcode)
	require.Equal(t, uint(8), last.Size)
	require.Equal(t, FieldInfo{"array_base_addr", 32, 32, 0}, last.Fields[0])
}

func checkParseAddress(t *testing.T, text string, expected uint32) {
	t.Parallel()
	//
	addr, err := parseAddress(text)
	require.NoError(t, err)
	require.Equal(t, expected, addr)
}
