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
package v3dcl

import (
	"bytes"
	"encoding/hex"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-clgen/pkg/cl"
	"github.com/consensys/go-clgen/pkg/layout"
	"github.com/consensys/go-clgen/pkg/v3d"
	"github.com/stretchr/testify/require"
)

// generated pairs the generated operations of one definition with its name, so
// they can be checked against the runtime codec.
type generated struct {
	name        string
	emit        func(cur []byte, v []uint64) []byte
	disassemble func(ins []byte, w io.Writer) error
}

var definitions = []generated{
	{"HALT", func(cur []byte, v []uint64) []byte {
		return EmitHalt(cur)
	}, DisassembleHalt},
	{"BRANCH", func(cur []byte, v []uint64) []byte {
		return EmitBranch(cur, uint32(v[0]))
	}, DisassembleBranch},
	{"STORE_FULL", func(cur []byte, v []uint64) []byte {
		return EmitStoreFull(cur, uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3]), uint32(v[4]))
	}, DisassembleStoreFull},
	{"LOAD_GENERAL", func(cur []byte, v []uint64) []byte {
		return EmitLoadGeneral(cur, uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3]), uint8(v[4]), uint8(v[5]),
			uint8(v[6]), uint8(v[7]), uint8(v[8]), uint8(v[9]), uint32(v[10]))
	}, DisassembleLoadGeneral},
	{"INDEXED_PRIM_LIST", func(cur []byte, v []uint64) []byte {
		return EmitIndexedPrimList(cur, uint8(v[0]), uint8(v[1]), uint32(v[2]), uint32(v[3]), uint32(v[4]))
	}, DisassembleIndexedPrimList},
	{"VERTEX_PRIM_LIST", func(cur []byte, v []uint64) []byte {
		return EmitVertexPrimList(cur, uint8(v[0]), uint32(v[1]), uint32(v[2]))
	}, DisassembleVertexPrimList},
	{"GL_SHADER", func(cur []byte, v []uint64) []byte {
		return EmitGlShader(cur, uint8(v[0]), uint8(v[1]), uint32(v[2]))
	}, DisassembleGlShader},
	{"STATE_CFG", func(cur []byte, v []uint64) []byte {
		return EmitStateCfg(cur, uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3]), uint8(v[4]), uint8(v[5]),
			uint8(v[6]), uint8(v[7]), uint8(v[8]), uint8(v[9]), uint8(v[10]), uint8(v[11]), uint8(v[12]),
			uint8(v[13]), uint8(v[14]))
	}, DisassembleStateCfg},
	{"STATE_CLIP_WINDOW", func(cur []byte, v []uint64) []byte {
		return EmitStateClipWindow(cur, uint16(v[0]), uint16(v[1]), uint16(v[2]), uint16(v[3]))
	}, DisassembleStateClipWindow},
	{"STATE_TILE_BINNING_MODE", func(cur []byte, v []uint64) []byte {
		return EmitStateTileBinningMode(cur, uint32(v[0]), uint32(v[1]), uint32(v[2]), uint8(v[3]), uint8(v[4]),
			uint8(v[5]), uint8(v[6]), uint8(v[7]), uint8(v[8]), uint8(v[9]), uint8(v[10]))
	}, DisassembleStateTileBinningMode},
	{"STATE_TILE_RENDERING_MODE", func(cur []byte, v []uint64) []byte {
		return EmitStateTileRenderingMode(cur, uint32(v[0]), uint16(v[1]), uint16(v[2]), uint8(v[3]), uint8(v[4]),
			uint8(v[5]), uint8(v[6]), uint8(v[7]), uint8(v[8]), uint8(v[9]), uint8(v[10]), uint8(v[11]),
			uint8(v[12]), uint8(v[13]))
	}, DisassembleStateTileRenderingMode},
	{"STATE_CLEARCOL", func(cur []byte, v []uint64) []byte {
		return EmitStateClearcol(cur, uint32(v[0]), uint32(v[1]), uint32(v[2]), uint8(v[3]), uint8(v[4]))
	}, DisassembleStateClearcol},
	{"STATE_TILE_COORDS", func(cur []byte, v []uint64) []byte {
		return EmitStateTileCoords(cur, uint8(v[0]), uint8(v[1]))
	}, DisassembleStateTileCoords},
	{v3d.SHADER_RECORD, func(cur []byte, v []uint64) []byte {
		return EmitShaderRecord(cur, uint16(v[0]), uint8(v[1]), uint8(v[2]), uint32(v[3]), uint32(v[4]),
			uint16(v[5]), uint8(v[6]), uint8(v[7]), uint32(v[8]), uint32(v[9]), uint16(v[10]), uint8(v[11]),
			uint8(v[12]), uint32(v[13]), uint32(v[14]))
	}, DisassembleShaderRecord},
	{v3d.ATTR_ARRAY_RECORD, func(cur []byte, v []uint64) []byte {
		return EmitAttrArrayRecord(cur, uint32(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3]), uint8(v[4]))
	}, DisassembleAttrArrayRecord},
}

func Test_Generated_00(t *testing.T) {
	checkGenerated(t, 0)
}
func Test_Generated_01(t *testing.T) {
	checkGenerated(t, 1)
}
func Test_Generated_02(t *testing.T) {
	checkGenerated(t, 2)
}
func Test_Generated_03(t *testing.T) {
	checkGenerated(t, 3)
}
func Test_Generated_04(t *testing.T) {
	checkGenerated(t, 4)
}
func Test_Generated_05(t *testing.T) {
	checkGenerated(t, 5)
}
func Test_Generated_06(t *testing.T) {
	checkGenerated(t, 6)
}
func Test_Generated_07(t *testing.T) {
	checkGenerated(t, 7)
}
func Test_Generated_08(t *testing.T) {
	checkGenerated(t, 8)
}
func Test_Generated_09(t *testing.T) {
	checkGenerated(t, 9)
}
func Test_Generated_10(t *testing.T) {
	checkGenerated(t, 10)
}
func Test_Generated_11(t *testing.T) {
	checkGenerated(t, 11)
}
func Test_Generated_12(t *testing.T) {
	checkGenerated(t, 12)
}
func Test_Generated_13(t *testing.T) {
	checkGenerated(t, 13)
}
func Test_Generated_14(t *testing.T) {
	checkGenerated(t, 14)
}

func Test_Generated_Example(t *testing.T) {
	t.Parallel()
	//
	var (
		out bytes.Buffer
		buf = make([]byte, 8)
	)
	//
	rest := EmitStateTileCoords(buf, 3, 200)
	require.Equal(t, 5, len(rest))
	//
	next, err := NextInstruction(buf)
	require.NoError(t, err)
	require.Equal(t, 5, len(next))
	//
	require.NoError(t, DisassembleInstr(buf, &out))
	require.Equal(t, "STATE_TILE_COORDS\n\tcolumn: 3\n\trow: c8\n", out.String())
}

func Test_Generated_Dispatch(t *testing.T) {
	t.Parallel()
	//
	codec := newCodec(t)
	// Every opcode is recognised by both dispatchers
	for _, l := range codec.Layouts() {
		if !l.HasOpcode() {
			continue
		}
		//
		var out bytes.Buffer
		//
		buf, err := codec.Encode(l.Name(), make([]uint64, len(l.Fields()))...)
		require.NoError(t, err)
		//
		next, err := NextInstruction(buf)
		require.NoError(t, err, l.Name())
		require.Empty(t, next, l.Name())
		require.NoError(t, DisassembleInstr(buf, &out), l.Name())
		require.True(t, strings.HasPrefix(out.String(), l.Name()+"\n"))
	}
}

func Test_Generated_Unknown(t *testing.T) {
	t.Parallel()
	//
	var (
		out bytes.Buffer
		buf = []byte{255, 0, 0, 0}
	)
	//
	next, err := NextInstruction(buf)
	require.ErrorIs(t, err, ErrUnknownOpcode)
	require.Equal(t, buf, next)
	require.ErrorIs(t, DisassembleInstr(buf, &out), ErrUnknownOpcode)
	require.Zero(t, out.Len())
}

func Test_Generated_Truncated(t *testing.T) {
	t.Parallel()
	//
	_, err := NextInstruction([]byte{V3D_HW_INSTR_BRANCH, 0, 0})
	require.ErrorIs(t, err, ErrTruncated)
	//
	_, err = NextInstruction(nil)
	require.ErrorIs(t, err, ErrTruncated)
}

func Test_Generated_Digest(t *testing.T) {
	t.Parallel()
	// Generated files are regenerated whenever the registry changes
	digest := v3d.Registry().Digest()
	//
	for _, file := range []string{"v3d_cl_instr_autogen_layout.go", "v3d_cl_instr_autogen_ops.go"} {
		text, err := os.ReadFile(file)
		require.NoError(t, err)
		require.Contains(t, string(text), "// Schema digest: "+hex.EncodeToString(digest[:])+"\n", file)
	}
}

// Check the generated operations of one definition agree with the runtime
// codec on random values: identical bytes, identical text and identical length.
func checkGenerated(t *testing.T, index int) {
	t.Parallel()
	//
	var (
		def   = definitions[index]
		codec = newCodec(t)
		rng   = rand.New(rand.NewPCG(uint64(index), 2))
	)
	//
	l, ok := codec.Layout(def.name)
	require.True(t, ok, def.name)
	//
	for i := 0; i < 100; i++ {
		var (
			values   = make([]uint64, len(l.Fields()))
			buf      = make([]byte, l.Size()+4)
			text     bytes.Buffer
			expected bytes.Buffer
		)
		//
		for j := range values {
			values[j] = rng.Uint64() & l.Fields()[j].Mask()
		}
		// Emitting advances by exactly the size
		rest := def.emit(buf, values)
		require.Equal(t, 4, len(rest), def.name)
		// Bytes match the codec
		encoded, err := codec.Encode(def.name, values...)
		require.NoError(t, err)
		require.Equal(t, encoded, buf[:l.Size()], def.name)
		// Text matches the codec
		require.NoError(t, def.disassemble(buf, &text))
		require.NoError(t, codec.DisassembleRecord(def.name, buf, &expected))
		require.Equal(t, expected.String(), text.String())
		// Stepping agrees with emission
		if l.HasOpcode() {
			next, err := NextInstruction(buf)
			require.NoError(t, err)
			require.Equal(t, 4, len(next), def.name)
		}
	}
}

func newCodec(t *testing.T) *cl.Codec {
	codec, err := cl.NewCodec(v3d.Registry(), layout.PadTrailingBits)
	require.NoError(t, err)
	//
	return codec
}
